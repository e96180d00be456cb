package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/exa-labs/exa-mcp-server/internal/app"
	"github.com/exa-labs/exa-mcp-server/internal/config"
)

// mcp-server serves MCP over HTTP by default; a later --http flag wins.
func main() {
	_ = godotenv.Load()

	addr := os.Getenv(config.EnvHTTPAddr)
	if addr == "" {
		addr = ":3333"
	}
	args := append([]string{"--http", addr}, os.Args[1:]...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Run(ctx, args, os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}
