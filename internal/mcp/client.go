package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

// Client issues JSON-RPC calls to an MCP server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	counter    uint64
}

// NewClient builds a client whose timeout outlasts the server's outbound
// call budget.
func NewClient(baseURL string) *Client {
	trimmed := baseURL
	if !strings.HasSuffix(trimmed, "/") {
		trimmed += "/"
	}
	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) nextID() any {
	return atomic.AddUint64(&c.counter, 1)
}

func (c *Client) do(ctx context.Context, method string, params any, out any) error {
	payload := protocol.Request{
		JSONRPC: "2.0",
		ID:      c.nextID(),
		Method:  method,
		Params:  mustRaw(params),
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call mcp server: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return fmt.Errorf("mcp server returned status %d", httpResp.StatusCode)
	}

	var resp struct {
		Result json.RawMessage         `json:"result"`
		Error  *protocol.ResponseError `json:"error"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.Error != nil {
		return errors.New(resp.Error.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("unmarshal %s result: %w", method, err)
	}
	return nil
}

// Ping checks that the server answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", map[string]any{}, nil)
}

// ListTools fetches the advertised tools from the MCP server.
func (c *Client) ListTools(ctx context.Context) ([]protocol.ToolDescriptor, error) {
	var result protocol.ListResult
	if err := c.do(ctx, "tools/list", map[string]any{}, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a tool and returns the structured result.
func (c *Client) CallTool(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, error) {
	var result protocol.CallResult
	if err := c.do(ctx, "tools/call", protocol.CallParams{Name: name, Args: args}, &result); err != nil {
		return protocol.CallResult{}, err
	}
	return result, nil
}

// ListResources fetches the advertised resources.
func (c *Client) ListResources(ctx context.Context) ([]protocol.ResourceDescriptor, error) {
	var result protocol.ResourceListResult
	if err := c.do(ctx, "resources/list", map[string]any{}, &result); err != nil {
		return nil, err
	}
	return result.Resources, nil
}

// ReadResource fetches one resource body.
func (c *Client) ReadResource(ctx context.Context, uri string) (protocol.ReadResourceResult, error) {
	var result protocol.ReadResourceResult
	if err := c.do(ctx, "resources/read", protocol.ReadResourceParams{URI: uri}, &result); err != nil {
		return protocol.ReadResourceResult{}, err
	}
	return result, nil
}

func mustRaw(v any) json.RawMessage {
	if v == nil {
		return json.RawMessage(`null`)
	}
	b, _ := json.Marshal(v)
	return json.RawMessage(b)
}
