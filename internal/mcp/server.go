package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

const protocolVersion = "2024-11-05"

// Info identifies the server to clients.
type Info struct {
	Name    string
	Version string
}

// Resource is a static, readable document.
type Resource struct {
	protocol.ResourceDescriptor
	Text string
}

// Server handles MCP JSON-RPC requests against a toolbox.
type Server struct {
	info      Info
	toolbox   *Toolbox
	resources []Resource
}

// NewServer wires a toolbox and optional resources into an MCP server.
func NewServer(info Info, tb *Toolbox, resources ...Resource) *Server {
	return &Server{info: info, toolbox: tb, resources: resources}
}

// Info returns the server identity.
func (s *Server) Info() Info { return s.info }

// Toolbox returns the bound toolbox.
func (s *Server) Toolbox() *Toolbox { return s.toolbox }

// Resources returns the served resources.
func (s *Server) Resources() []Resource { return s.resources }

// Handle routes a single request. Notifications yield an empty response that
// transports must not send.
func (s *Server) Handle(ctx context.Context, req protocol.Request) (protocol.Response, error) {
	if err := validateJSONRPC(req); err != nil {
		return protocol.Response{JSONRPC: "2.0", ID: normalizeID(req.ID), Error: err}, nil
	}

	if req.IsNotification() && strings.HasPrefix(req.Method, "notifications/") {
		return protocol.Response{}, nil
	}

	switch req.Method {
	case "initialize":
		capabilities := map[string]any{
			"tools": map[string]any{},
		}
		if len(s.resources) > 0 {
			capabilities["resources"] = map[string]any{}
		}
		return s.result(req, map[string]any{
			"protocolVersion": protocolVersion,
			"serverInfo": map[string]string{
				"name":    s.info.Name,
				"version": s.info.Version,
			},
			"capabilities": capabilities,
		}), nil
	case "ping":
		return s.result(req, map[string]any{}), nil
	case "tools/list":
		return s.result(req, protocol.ListResult{Tools: s.toolbox.Describe()}), nil
	case "tools/call":
		var params protocol.CallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return s.failure(req, protocol.CodeInvalidParams, "invalid params"), nil
		}
		if params.Name == "" {
			return s.failure(req, protocol.CodeInvalidParams, "tool name required"), nil
		}
		result, toolErr := s.toolbox.Call(ctx, params.Name, params.Args)
		if toolErr != nil {
			return protocol.Response{JSONRPC: "2.0", ID: normalizeID(req.ID), Error: toolErr}, nil
		}
		return s.result(req, result), nil
	case "resources/list":
		list := make([]protocol.ResourceDescriptor, 0, len(s.resources))
		for _, r := range s.resources {
			list = append(list, r.ResourceDescriptor)
		}
		return s.result(req, protocol.ResourceListResult{Resources: list}), nil
	case "resources/read":
		var params protocol.ReadResourceParams
		if err := json.Unmarshal(req.Params, &params); err != nil || params.URI == "" {
			return s.failure(req, protocol.CodeInvalidParams, "resource uri required"), nil
		}
		for _, r := range s.resources {
			if r.URI == params.URI {
				return s.result(req, protocol.ReadResourceResult{Contents: []protocol.ResourceContents{{
					URI:      r.URI,
					MIMEType: r.MIMEType,
					Text:     r.Text,
				}}}), nil
			}
		}
		return s.failure(req, protocol.CodeInvalidParams, fmt.Sprintf("resource not found: %s", params.URI)), nil
	default:
		return s.failure(req, protocol.CodeMethodNotFound, "method not found"), nil
	}
}

func (s *Server) result(req protocol.Request, v any) protocol.Response {
	return protocol.Response{JSONRPC: "2.0", ID: normalizeID(req.ID), Result: v}
}

func (s *Server) failure(req protocol.Request, code int, message string) protocol.Response {
	return protocol.Response{JSONRPC: "2.0", ID: normalizeID(req.ID), Error: &protocol.ResponseError{Code: code, Message: message}}
}

// WriteError builds a response with an error and wraps encode issues.
func WriteError(id any, code int, message string, err error) protocol.Response {
	detail := message
	if err != nil {
		detail = fmt.Sprintf("%s: %v", message, err)
	}
	return protocol.Response{JSONRPC: "2.0", ID: normalizeID(id), Error: &protocol.ResponseError{Code: code, Message: detail}}
}

func validateJSONRPC(req protocol.Request) *protocol.ResponseError {
	if req.JSONRPC != "" && req.JSONRPC != "2.0" {
		return &protocol.ResponseError{Code: protocol.CodeInvalidRequest, Message: "invalid jsonrpc version"}
	}
	if req.Method == "" {
		return &protocol.ResponseError{Code: protocol.CodeInvalidRequest, Message: "method required"}
	}
	return nil
}

func normalizeID(id any) any {
	if id == nil {
		return "0"
	}
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return v
	case int, int32, int64, uint32, uint64:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
