package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/exa-labs/exa-mcp-server/internal/exa"
)

// Environment variables read by Load.
const (
	EnvAPIKey   = "EXA_API_KEY"
	EnvBaseURL  = "EXA_BASE_URL"
	EnvTools    = "EXA_MCP_TOOLS"
	EnvHTTPAddr = "EXA_MCP_HTTP_ADDR"
	EnvDebug    = "EXA_MCP_DEBUG"
	EnvConfig   = "EXA_MCP_CONFIG"
)

// ErrMissingAPIKey is returned by Validate when no credential is configured.
var ErrMissingAPIKey = errors.New("EXA_API_KEY environment variable is required")

// Config is the server configuration. File values are overridden by the
// environment, which is in turn overridden by command-line flags.
type Config struct {
	APIKey         string   `toml:"api_key"`
	BaseURL        string   `toml:"base_url"`
	Tools          []string `toml:"tools"`
	Debug          bool     `toml:"debug"`
	HTTPAddr       string   `toml:"http_addr"`
	LogFile        string   `toml:"log_file"`
	TimeoutSeconds int      `toml:"timeout_seconds"`

	// FallbackAPIKey is the process-wide EXA_API_KEY, used when APIKey is empty.
	FallbackAPIKey string `toml:"-"`
	Source         string `toml:"-"`
}

func Default() Config {
	return Config{BaseURL: exa.DefaultBaseURL}
}

// Load reads the optional TOML file at path (or $EXA_MCP_CONFIG) and applies
// environment overrides. getenv is usually os.Getenv.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(getenv(EnvConfig))
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Source = path
	}

	if env := strings.TrimSpace(getenv(EnvAPIKey)); env != "" {
		cfg.FallbackAPIKey = env
	}
	if env := strings.TrimSpace(getenv(EnvBaseURL)); env != "" {
		cfg.BaseURL = env
	}
	if env := strings.TrimSpace(getenv(EnvTools)); env != "" {
		cfg.Tools = strings.Split(env, ",")
	}
	if env := strings.TrimSpace(getenv(EnvHTTPAddr)); env != "" {
		cfg.HTTPAddr = env
	}
	if env := strings.TrimSpace(getenv(EnvDebug)); env != "" {
		debug, err := strconv.ParseBool(env)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.BaseURL == "" {
		cfg.BaseURL = exa.DefaultBaseURL
	}
	return cfg, nil
}

// Validate reports configuration errors that must stop startup.
func (c Config) Validate() error {
	if c.APIKey == "" && c.FallbackAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the configured per-request timeout, or zero for the default.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
