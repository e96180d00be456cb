package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	tb, err := NewToolbox(echoTool{name: "echo"})
	if err != nil {
		t.Fatalf("new toolbox: %v", err)
	}
	return NewServer(Info{Name: "exa-search-server", Version: "test"}, tb, Resource{
		ResourceDescriptor: protocol.ResourceDescriptor{URI: "guide://x", Name: "X", MIMEType: "text/markdown"},
		Text:               "# X",
	})
}

func handle(t *testing.T, s *Server, method string, params any) protocol.Response {
	t.Helper()
	raw, _ := json.Marshal(params)
	resp, err := s.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: float64(7), Method: method, Params: raw})
	if err != nil {
		t.Fatalf("handle %s: %v", method, err)
	}
	return resp
}

func TestHandleInitialize(t *testing.T) {
	resp := handle(t, newTestServer(t), "initialize", map[string]any{})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result := resp.Result.(map[string]any)
	info := result["serverInfo"].(map[string]string)
	if info["name"] != "exa-search-server" || info["version"] != "test" {
		t.Fatalf("unexpected server info: %v", info)
	}
	caps := result["capabilities"].(map[string]any)
	if _, ok := caps["resources"]; !ok {
		t.Fatalf("expected resources capability")
	}
	if resp.ID != float64(7) {
		t.Fatalf("expected id to round-trip, got %v", resp.ID)
	}
}

func TestHandleToolsListAndCall(t *testing.T) {
	s := newTestServer(t)

	resp := handle(t, s, "tools/list", map[string]any{})
	list := resp.Result.(protocol.ListResult)
	if len(list.Tools) != 1 || list.Tools[0].Name != "echo" {
		t.Fatalf("unexpected tools: %+v", list.Tools)
	}

	resp = handle(t, s, "tools/call", map[string]any{"name": "echo", "arguments": map[string]any{"query": "x"}})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	if got := resp.Result.(protocol.CallResult).Text(); got != `{"query":"x"}` {
		t.Fatalf("unexpected result text: %s", got)
	}

	resp = handle(t, s, "tools/call", map[string]any{"name": "nope"})
	if resp.Error == nil || resp.Error.Code != protocol.CodeMethodNotFound {
		t.Fatalf("expected tool not found, got %+v", resp)
	}

	resp = handle(t, s, "tools/call", map[string]any{})
	if resp.Error == nil || resp.Error.Code != protocol.CodeInvalidParams {
		t.Fatalf("expected invalid params, got %+v", resp)
	}
}

func TestHandleResources(t *testing.T) {
	s := newTestServer(t)

	resp := handle(t, s, "resources/list", map[string]any{})
	list := resp.Result.(protocol.ResourceListResult)
	if len(list.Resources) != 1 || list.Resources[0].URI != "guide://x" {
		t.Fatalf("unexpected resources: %+v", list)
	}

	resp = handle(t, s, "resources/read", map[string]any{"uri": "guide://x"})
	read := resp.Result.(protocol.ReadResourceResult)
	if len(read.Contents) != 1 || read.Contents[0].Text != "# X" {
		t.Fatalf("unexpected contents: %+v", read)
	}

	resp = handle(t, s, "resources/read", map[string]any{"uri": "guide://missing"})
	if resp.Error == nil {
		t.Fatalf("expected error for missing resource")
	}
}

func TestHandleNotificationAndUnknown(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", Method: "notifications/initialized"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if resp.Result != nil || resp.Error != nil {
		t.Fatalf("notifications must not produce a response: %+v", resp)
	}

	if resp := handle(t, s, "bogus", nil); resp.Error == nil || resp.Error.Code != protocol.CodeMethodNotFound {
		t.Fatalf("expected method not found, got %+v", resp)
	}

	resp, _ = s.Handle(context.Background(), protocol.Request{JSONRPC: "1.0", ID: "a", Method: "ping"})
	if resp.Error == nil || resp.Error.Code != protocol.CodeInvalidRequest {
		t.Fatalf("expected invalid request, got %+v", resp)
	}
}
