package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool. Invoke reports tool-level
// failures through CallResult.IsError and never returns a protocol error.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult
}

// Toolbox stores and dispatches tools by name, preserving registration order.
type Toolbox struct {
	tools map[string]Tool
	order []string
}

// NewToolbox constructs a toolbox with the provided tools.
func NewToolbox(tools ...Tool) (*Toolbox, error) {
	tb := &Toolbox{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if err := tb.Register(t); err != nil {
			return nil, err
		}
	}
	return tb, nil
}

// Register binds t under its descriptor name. A name may be bound once.
func (tb *Toolbox) Register(t Tool) error {
	name := t.Descriptor().Name
	if name == "" {
		return fmt.Errorf("register tool: empty name")
	}
	if _, dup := tb.tools[name]; dup {
		return fmt.Errorf("register tool %q: already registered", name)
	}
	tb.tools[name] = t
	tb.order = append(tb.order, name)
	return nil
}

// Names returns the registered tool names in registration order.
func (tb *Toolbox) Names() []string {
	return append([]string(nil), tb.order...)
}

// Tools returns the registered tools in registration order.
func (tb *Toolbox) Tools() []Tool {
	list := make([]Tool, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name])
	}
	return list
}

// Describe returns all tool descriptors.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (result protocol.CallResult, rerr *protocol.ResponseError) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, &protocol.ResponseError{Code: protocol.CodeMethodNotFound, Message: "tool not found"}
	}
	defer func() {
		if r := recover(); r != nil {
			result, rerr = protocol.ErrorResult(fmt.Sprintf("%s: internal error: %v", name, r)), nil
		}
	}()
	return tool.Invoke(ctx, args), nil
}
