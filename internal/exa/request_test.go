package exa

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidate(t *testing.T) {
	contents := Contents{Text: TextOptions{MaxCharacters: 100}, Livecrawl: LivecrawlAlways}

	cases := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"search ok", Search(SearchRequest{Query: "q", Type: SearchNeural, NumResults: 1, Contents: contents}), false},
		{"fetch ok", Fetch(ContentsRequest{IDs: []string{"https://example.com"}, Contents: contents}), false},
		{"empty query", Search(SearchRequest{Type: SearchNeural, NumResults: 1, Contents: contents}), true},
		{"bad type", Search(SearchRequest{Query: "q", Type: "keyword", NumResults: 1, Contents: contents}), true},
		{"zero results", Search(SearchRequest{Query: "q", Type: SearchAuto, Contents: contents}), true},
		{"bad livecrawl", Search(SearchRequest{Query: "q", Type: SearchAuto, NumResults: 1, Contents: Contents{Text: TextOptions{MaxCharacters: 1}, Livecrawl: "never"}}), true},
		{"no ids", Fetch(ContentsRequest{Contents: contents}), true},
		{"nil body", Request{Endpoint: "/search", Method: http.MethodPost, Timeout: DefaultTimeout}, true},
		{"get method", Request{Endpoint: "/search", Method: http.MethodGet, Body: SearchRequest{}, Timeout: DefaultTimeout}, true},
		{"relative endpoint", Request{Endpoint: "search", Method: http.MethodPost, Timeout: DefaultTimeout}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchRequestOmitsEmptyDomains(t *testing.T) {
	raw, err := json.Marshal(SearchRequest{Query: "q", Type: SearchAuto, NumResults: 5})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "includeDomains")
}
