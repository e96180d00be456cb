package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/exa-labs/exa-mcp-server/internal/config"
	"github.com/exa-labs/exa-mcp-server/internal/exa"
	"github.com/exa-labs/exa-mcp-server/internal/logging"
	"github.com/exa-labs/exa-mcp-server/internal/mcp"
	"github.com/exa-labs/exa-mcp-server/internal/resources"
	"github.com/exa-labs/exa-mcp-server/internal/tools"
	"github.com/exa-labs/exa-mcp-server/internal/version"
)

// ServerName is reported to MCP clients during initialize.
const ServerName = "exa-search-server"

// NewToolbox binds the active catalog tools to deps.
func NewToolbox(active tools.ActiveSet, deps tools.Deps) (*mcp.Toolbox, error) {
	tb, err := mcp.NewToolbox()
	if err != nil {
		return nil, err
	}
	if err := tools.RegisterActive(tb, tools.Catalog(), active, deps); err != nil {
		return nil, err
	}
	return tb, nil
}

// NewMCPServer builds a server instance from cfg. Every call yields an
// independent toolbox bound to cfg's credential.
func NewMCPServer(cfg config.Config, logger *logrus.Entry) (*mcp.Server, error) {
	client := exa.NewClient(exa.WithBaseURL(cfg.BaseURL), exa.WithLogger(logger))
	deps := tools.Deps{
		Executor:       client,
		APIKey:         cfg.APIKey,
		FallbackAPIKey: cfg.FallbackAPIKey,
		Timeout:        cfg.Timeout(),
		Logger:         logger,
	}

	tb, err := NewToolbox(tools.Select(tools.Catalog(), cfg.Tools), deps)
	if err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}
	guides, err := resources.Guides()
	if err != nil {
		return nil, err
	}
	return mcp.NewServer(mcp.Info{Name: ServerName, Version: version.Get().Version}, tb, guides...), nil
}

// Run parses args, builds the server and serves it until ctx is done. It
// returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs := flag.NewFlagSet("exa-mcp-server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	toolList := fs.String("tools", "", "Comma-separated list of tools to enable (if not specified, all enabled-by-default tools are used)")
	listTools := fs.Bool("list-tools", false, "List all available tools and exit")
	configPath := fs.String("config", "", "Path to a TOML config file")
	httpAddr := fs.String("http", "", "Serve MCP over HTTP on this address instead of stdio (e.g., :3333)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *showVersion {
		fmt.Fprintf(stdout, "exa-mcp-server %s\n", version.Get())
		return 0
	}
	if *listTools {
		PrintCatalog(stdout, tools.Catalog())
		return 0
	}

	cfg, err := config.Load(*configPath, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tools":
			cfg.Tools = tools.ParseList(*toolList)
		case "http":
			cfg.HTTPAddr = *httpAddr
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}

	logger, cleanup, err := logging.New("exa-mcp-server", logging.Options{File: cfg.LogFile, Output: stderr, Debug: cfg.Debug})
	if err != nil {
		fmt.Fprintf(stderr, "logger error: %v\n", err)
		return 1
	}
	defer cleanup()
	if cfg.Source != "" {
		logger.Debugf("loaded config from %s", cfg.Source)
	}

	server, err := NewMCPServer(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("server initialization error")
		return 1
	}
	names := server.Toolbox().Names()
	logger.Infof("Starting Exa MCP server with %d tools: %s", len(names), strings.Join(names, ", "))

	if cfg.HTTPAddr != "" {
		err = mcp.RunHTTP(ctx, server, cfg.HTTPAddr, logger)
	} else {
		logger.Info("Exa Search MCP server running on stdio")
		err = mcp.RunStdio(ctx, server)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("fatal server error")
		return 1
	}
	return 0
}

// PrintCatalog writes the human-readable tool listing.
func PrintCatalog(w io.Writer, catalog []tools.Entry) {
	fmt.Fprintln(w, "Available tools:")
	for _, e := range catalog {
		enabled := "No"
		if e.EnabledByDefault {
			enabled = "Yes"
		}
		fmt.Fprintf(w, "- %s: %s\n", e.ID, e.Name)
		fmt.Fprintf(w, "  Description: %s\n", e.Summary)
		fmt.Fprintf(w, "  Enabled by default: %s\n", enabled)
		fmt.Fprintln(w)
	}
}
