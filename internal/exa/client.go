package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 32 << 20

// Executor performs a single outbound call. Implementations must not retry.
type Executor interface {
	Execute(ctx context.Context, req Request, apiKey string) (Response, *Error)
}

// Response is a decoded 2xx reply.
type Response struct {
	Body    json.RawMessage
	Results int
}

// Empty reports a soft-empty reply: results missing, null or [].
func (r Response) Empty() bool {
	return r.Results == 0
}

// Client talks to the Exa API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Entry
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if b := strings.TrimSuffix(strings.TrimSpace(base), "/"); b != "" {
			c.baseURL = b
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a client. The HTTP client is shared across calls and never
// carries credentials; the API key travels with each request.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		logger:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute sends req once, bounded by req.Timeout.
func (c *Client) Execute(ctx context.Context, req Request, apiKey string) (Response, *Error) {
	if err := req.Validate(); err != nil {
		return Response{}, &Error{Message: fmt.Sprintf("invalid request: %v", err)}
	}

	body, err := json.Marshal(req.Body)
	if err != nil {
		return Response{}, &Error{Message: fmt.Sprintf("encode request: %v", err)}
	}

	callCtx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, req.Method, c.baseURL+req.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, &Error{Message: fmt.Sprintf("build request: %v", err)}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)

	c.logger.WithField("endpoint", req.Endpoint).Debug("sending request to Exa API")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, transportError(callCtx, req, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, transportError(callCtx, req, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &Error{StatusCode: resp.StatusCode, Message: remoteMessage(raw, resp.StatusCode)}
	}

	if !json.Valid(raw) {
		return Response{}, &Error{Message: "decode response: invalid JSON"}
	}
	c.logger.WithField("endpoint", req.Endpoint).Debug("received response from Exa API")
	return Response{Body: json.RawMessage(raw), Results: countResults(raw)}, nil
}

func transportError(ctx context.Context, req Request, err error) *Error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{Message: fmt.Sprintf("request timed out after %s", req.Timeout), Timeout: true}
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Message: "request canceled"}
	}
	return &Error{Message: err.Error()}
}

// remoteMessage prefers the API's own message over a generic one.
func remoteMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if m := strings.TrimSpace(body.Message); m != "" {
			return m
		}
		if s, ok := body.Error.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fmt.Sprintf("request failed with status code %d", status)
}

func countResults(raw []byte) int {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return 0
	}
	field, ok := top["results"]
	if !ok {
		return 0
	}
	var items []json.RawMessage
	if err := json.Unmarshal(field, &items); err != nil {
		return 0
	}
	return len(items)
}
