// Package resources serves the static markdown guides exposed over MCP.
package resources

import (
	"embed"
	"fmt"

	"github.com/exa-labs/exa-mcp-server/internal/mcp"
	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

//go:embed guides/*.md
var guideFS embed.FS

type guide struct {
	file        string
	uri         string
	name        string
	description string
}

var guides = []guide{
	{
		file:        "guides/overview.md",
		uri:         "guide://hallucination-detection/overview",
		name:        "Hallucination Detection Guide - Overview",
		description: "Overview of hallucination detection capabilities with Exa",
	},
	{
		file:        "guides/fact-check-guide.md",
		uri:         "guide://hallucination-detection/fact-check-guide",
		name:        "Hallucination Detection Guide - Fact Checking Process",
		description: "Learn the 3-step process for fact-checking claims using Exa",
	},
}

// Guides returns the hallucination-detection guides as MCP resources.
func Guides() ([]mcp.Resource, error) {
	out := make([]mcp.Resource, 0, len(guides))
	for _, g := range guides {
		body, err := guideFS.ReadFile(g.file)
		if err != nil {
			return nil, fmt.Errorf("read guide %s: %w", g.file, err)
		}
		out = append(out, mcp.Resource{
			ResourceDescriptor: protocol.ResourceDescriptor{
				URI:         g.uri,
				Name:        g.name,
				Description: g.description,
				MIMEType:    "text/markdown",
			},
			Text: string(body),
		})
	}
	return out, nil
}
