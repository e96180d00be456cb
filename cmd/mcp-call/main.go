package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/exa-labs/exa-mcp-server/internal/mcp"
)

func main() {
	_ = godotenv.Load()

	url := flag.String("url", envOr("MCP_SERVER_URL", "http://localhost:3333/"), "MCP HTTP server URL")
	tool := flag.String("tool", "", "Tool to call; lists tools when empty")
	args := flag.String("args", "{}", "Tool arguments as a JSON object")
	resource := flag.String("resource", "", "Resource URI to read")
	listResources := flag.Bool("resources", false, "List resources and exit")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := mcp.NewClient(*url)
	switch {
	case *listResources:
		list, err := client.ListResources(ctx)
		if err != nil {
			log.Fatalf("list resources: %v", err)
		}
		for _, r := range list {
			fmt.Printf("%s\t%s\n", r.URI, r.Name)
		}
	case *resource != "":
		res, err := client.ReadResource(ctx, *resource)
		if err != nil {
			log.Fatalf("read resource: %v", err)
		}
		for _, c := range res.Contents {
			fmt.Println(c.Text)
		}
	case *tool == "":
		list, err := client.ListTools(ctx)
		if err != nil {
			log.Fatalf("list tools: %v", err)
		}
		for _, t := range list {
			fmt.Printf("%s\n  %s\n", t.Name, t.Description)
		}
	default:
		if !json.Valid([]byte(*args)) {
			log.Fatalf("args must be valid JSON")
		}
		res, err := client.CallTool(ctx, *tool, json.RawMessage(*args))
		if err != nil {
			log.Fatalf("call %s: %v", *tool, err)
		}
		fmt.Println(res.Text())
		if res.IsError {
			os.Exit(1)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
