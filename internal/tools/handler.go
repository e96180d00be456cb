package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"

	"github.com/exa-labs/exa-mcp-server/internal/exa"
	"github.com/exa-labs/exa-mcp-server/internal/logging"
	"github.com/exa-labs/exa-mcp-server/internal/mcp"
	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

// Definition describes one tool: its schema, how a request is built from
// decoded arguments, and how outcomes are worded.
type Definition[A any] struct {
	ID          string
	Description string
	Schema      *jsonschema.Schema
	// Label prefixes failure messages, e.g. "LinkedIn search".
	Label string
	// Empty is returned when the API answers without results.
	Empty   string
	Subject func(A) string
	Build   func(A) exa.Request
}

func (d Definition[A]) descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{Name: d.ID, Description: d.Description, InputSchema: d.Schema}
}

func (d Definition[A]) bind(deps Deps) (mcp.Tool, error) {
	if deps.Executor == nil {
		return nil, fmt.Errorf("bind %s: executor is required", d.ID)
	}
	resolved, err := d.Schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("bind %s: resolve schema: %w", d.ID, err)
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	return &handler[A]{def: d, schema: resolved, deps: deps}, nil
}

type handler[A any] struct {
	def    Definition[A]
	schema *jsonschema.Resolved
	deps   Deps
}

func (h *handler[A]) Descriptor() protocol.ToolDescriptor {
	return h.def.descriptor()
}

func (h *handler[A]) Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult {
	args, err := h.decode(raw)
	if err != nil {
		return protocol.ErrorResult(fmt.Sprintf("%s error: invalid arguments: %v", h.def.Label, err))
	}

	log := logging.NewRequestLogger(h.deps.Logger, newRequestID(h.def.ID), h.def.ID)
	log.Start(h.def.Subject(args))

	req := h.def.Build(args)
	if h.deps.Timeout > 0 {
		req.Timeout = h.deps.Timeout
	}
	if err := req.Validate(); err != nil {
		log.Error(err)
		return protocol.ErrorResult(fmt.Sprintf("%s error: %v", h.def.Label, err))
	}

	log.Log("sending request to Exa API")
	resp, execErr := h.deps.Executor.Execute(ctx, req, h.deps.apiKey())
	if execErr != nil {
		log.Error(execErr)
		return protocol.ErrorResult(fmt.Sprintf("%s error (%s): %s", h.def.Label, execErr.Status(), execErr.Message))
	}
	log.Log("received response from Exa API")

	if resp.Empty() {
		log.Log("empty or invalid response from Exa API")
		log.Complete()
		return protocol.TextResult(h.def.Empty)
	}

	pretty, err := json.MarshalIndent(resp.Body, "", "  ")
	if err != nil {
		log.Error(err)
		return protocol.ErrorResult(fmt.Sprintf("%s error: format response: %v", h.def.Label, err))
	}
	log.Log(fmt.Sprintf("found %d results", resp.Results))
	log.Complete()
	return protocol.TextResult(string(pretty))
}

// decode validates raw against the tool schema, then decodes it into A.
func (h *handler[A]) decode(raw json.RawMessage) (A, error) {
	var args A
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}

	var instance any
	if err := json.Unmarshal(trimmed, &instance); err != nil {
		return args, errors.New("arguments must be a JSON object")
	}
	if err := h.schema.Validate(instance); err != nil {
		return args, err
	}
	if err := json.Unmarshal(trimmed, &args); err != nil {
		return args, err
	}
	return args, nil
}

// newRequestID returns "<tool>-<unix millis>-<5 random chars>".
func newRequestID(tool string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return fmt.Sprintf("%s-%d-%s", tool, time.Now().UnixMilli(), suffix)
}
