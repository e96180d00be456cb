package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/exa-labs/exa-mcp-server/internal/manifest"
	"github.com/exa-labs/exa-mcp-server/internal/tools"
	"github.com/exa-labs/exa-mcp-server/internal/version"
)

// Options captures manifest generation settings.
type Options struct {
	Name       string
	Version    string
	ReleasedAt time.Time
	OutputDir  string
	PrivKeyB64 string
}

// Result reports what Generate wrote.
type Result struct {
	ManifestPath  string
	SignaturePath string
	PublicKeyB64  string
	Raw           []byte
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	res, err := Generate(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("manifest written to %s\n", res.ManifestPath)
	if res.SignaturePath != "" {
		fmt.Printf("signature written to %s\n", res.SignaturePath)
		fmt.Printf("public key (base64): %s\n", res.PublicKeyB64)
	}
}

func parseFlags() (*Options, error) {
	var (
		ver        = flag.String("version", version.Get().Version, "version string (vX.Y.Z or X.Y.Z)")
		releasedAt = flag.String("released_at", "", "RFC3339 timestamp (default: now UTC)")
		name       = flag.String("name", "exa-mcp-server", "manifest name")
		outDir     = flag.String("output_dir", ".", "output directory for manifest files")
		privB64    = flag.String("privkey_b64", "", "ed25519 private key (base64, 64 bytes); manifest is unsigned when empty")
	)
	flag.Parse()

	ts := *releasedAt
	if ts == "" {
		ts = time.Now().UTC().Format(time.RFC3339)
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil, fmt.Errorf("invalid released_at: %w", err)
	}

	priv := *privB64
	if priv == "" {
		priv = os.Getenv("EXA_MANIFEST_ED25519_PRIVKEY_B64")
	}

	return &Options{
		Name:       *name,
		Version:    *ver,
		ReleasedAt: parsed,
		OutputDir:  *outDir,
		PrivKeyB64: priv,
	}, nil
}

// Generate writes manifest.json for the tool catalog and, when a key is
// given, manifest.json.sig next to it.
func Generate(opts Options) (Result, error) {
	var res Result
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return res, err
	}

	raw, err := manifest.Marshal(manifest.Build(opts.Name, opts.Version, opts.ReleasedAt, tools.Catalog()))
	if err != nil {
		return res, err
	}
	res.Raw = raw
	res.ManifestPath = filepath.Join(opts.OutputDir, "manifest.json")

	var sig []byte
	if opts.PrivKeyB64 != "" {
		sig, res.PublicKeyB64, err = manifest.Sign(raw, opts.PrivKeyB64)
		if err != nil {
			return res, err
		}
	}

	if err := os.WriteFile(res.ManifestPath, raw, 0o644); err != nil {
		return res, err
	}
	if sig != nil {
		res.SignaturePath = res.ManifestPath + ".sig"
		if err := os.WriteFile(res.SignaturePath, sig, 0o644); err != nil {
			return res, err
		}
	}
	return res, nil
}
