package exa

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// API defaults.
const (
	DefaultBaseURL       = "https://api.exa.ai"
	SearchEndpoint       = "/search"
	ContentsEndpoint     = "/contents"
	DefaultTimeout       = 25 * time.Second
	DefaultNumResults    = 5
	DefaultMaxCharacters = 3000
)

// SearchType selects the Exa retrieval model.
type SearchType string

const (
	SearchNeural SearchType = "neural"
	SearchAuto   SearchType = "auto"
)

// Livecrawl controls crawl freshness.
type Livecrawl string

const (
	LivecrawlPreferred Livecrawl = "preferred"
	LivecrawlAlways    Livecrawl = "always"
)

// TextOptions caps the extracted page text.
type TextOptions struct {
	MaxCharacters int `json:"maxCharacters"`
}

// Contents describes which page contents the API should return.
type Contents struct {
	Text      TextOptions `json:"text"`
	Livecrawl Livecrawl   `json:"livecrawl"`
}

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query          string     `json:"query"`
	Type           SearchType `json:"type"`
	NumResults     int        `json:"numResults"`
	Contents       Contents   `json:"contents"`
	IncludeDomains []string   `json:"includeDomains,omitempty"`
}

// ContentsRequest is the body of POST /contents.
type ContentsRequest struct {
	IDs      []string `json:"ids"`
	Contents Contents `json:"contents"`
}

// Request is a fully built outbound call.
type Request struct {
	Endpoint string
	Method   string
	Body     any
	Timeout  time.Duration
}

// Search builds a /search request with the default timeout.
func Search(body SearchRequest) Request {
	return Request{Endpoint: SearchEndpoint, Method: http.MethodPost, Body: body, Timeout: DefaultTimeout}
}

// Fetch builds a /contents request with the default timeout.
func Fetch(body ContentsRequest) Request {
	return Request{Endpoint: ContentsEndpoint, Method: http.MethodPost, Body: body, Timeout: DefaultTimeout}
}

// Validate rejects requests that cannot be sent.
func (r Request) Validate() error {
	if !strings.HasPrefix(r.Endpoint, "/") {
		return fmt.Errorf("endpoint %q must start with /", r.Endpoint)
	}
	if r.Method != http.MethodPost {
		return fmt.Errorf("method %q not supported", r.Method)
	}
	if r.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	switch b := r.Body.(type) {
	case SearchRequest:
		return b.validate()
	case ContentsRequest:
		return b.validate()
	case nil:
		return errors.New("body is required")
	default:
		return fmt.Errorf("unsupported body type %T", r.Body)
	}
}

func (b SearchRequest) validate() error {
	if strings.TrimSpace(b.Query) == "" {
		return errors.New("query is required")
	}
	if b.Type != SearchNeural && b.Type != SearchAuto {
		return fmt.Errorf("invalid search type %q", b.Type)
	}
	if b.NumResults <= 0 {
		return errors.New("numResults must be positive")
	}
	return b.Contents.validate()
}

func (b ContentsRequest) validate() error {
	if len(b.IDs) == 0 {
		return errors.New("at least one id is required")
	}
	for _, id := range b.IDs {
		if strings.TrimSpace(id) == "" {
			return errors.New("ids must not be empty")
		}
	}
	return b.Contents.validate()
}

func (c Contents) validate() error {
	if c.Text.MaxCharacters <= 0 {
		return errors.New("maxCharacters must be positive")
	}
	if c.Livecrawl != LivecrawlPreferred && c.Livecrawl != LivecrawlAlways {
		return fmt.Errorf("invalid livecrawl mode %q", c.Livecrawl)
	}
	return nil
}
