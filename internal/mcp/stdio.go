package mcp

import (
	"context"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

// NewSDKServer mirrors the server's tools and resources onto a go-sdk server,
// which owns the stdio handshake and session lifecycle.
func NewSDKServer(s *Server) *gomcp.Server {
	srv := gomcp.NewServer(&gomcp.Implementation{Name: s.info.Name, Version: s.info.Version}, nil)

	for _, t := range s.toolbox.Tools() {
		desc := t.Descriptor()
		name := desc.Name
		srv.AddTool(&gomcp.Tool{
			Name:        desc.Name,
			Description: desc.Description,
			InputSchema: desc.InputSchema,
		}, func(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
			result, rerr := s.toolbox.Call(ctx, name, req.Params.Arguments)
			if rerr != nil {
				return nil, &protocolError{rerr}
			}
			return toSDKResult(result), nil
		})
	}

	for _, r := range s.resources {
		res := r
		srv.AddResource(&gomcp.Resource{
			URI:         res.URI,
			Name:        res.Name,
			Description: res.Description,
			MIMEType:    res.MIMEType,
		}, func(context.Context, *gomcp.ReadResourceRequest) (*gomcp.ReadResourceResult, error) {
			return &gomcp.ReadResourceResult{Contents: []*gomcp.ResourceContents{{
				URI:      res.URI,
				MIMEType: res.MIMEType,
				Text:     res.Text,
			}}}, nil
		})
	}

	return srv
}

// RunStdio serves s over stdin/stdout until the client disconnects or ctx is done.
func RunStdio(ctx context.Context, s *Server) error {
	return NewSDKServer(s).Run(ctx, &gomcp.StdioTransport{})
}

func toSDKResult(r protocol.CallResult) *gomcp.CallToolResult {
	content := make([]gomcp.Content, 0, len(r.Content))
	for _, part := range r.Content {
		content = append(content, &gomcp.TextContent{Text: part.Text})
	}
	return &gomcp.CallToolResult{Content: content, IsError: r.IsError}
}

type protocolError struct {
	err *protocol.ResponseError
}

func (e *protocolError) Error() string { return e.err.Message }
