package tools

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/exa-labs/exa-mcp-server/internal/exa"
)

func objectSchema(required []string, props map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: props, Required: required}
}

func requiredString(desc string) *jsonschema.Schema {
	minLen := 1
	return &jsonschema.Schema{Type: "string", Description: desc, MinLength: &minLen}
}

func optionalString(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func positiveNumber(desc string) *jsonschema.Schema {
	lowest := 1.0
	return &jsonschema.Schema{Type: "number", Description: desc, Minimum: &lowest}
}

func stringEnum(desc string, values ...string) *jsonschema.Schema {
	enum := make([]any, 0, len(values))
	for _, v := range values {
		enum = append(enum, v)
	}
	return &jsonschema.Schema{Type: "string", Description: desc, Enum: enum}
}

// queryArgs is the argument shape shared by the plain search tools.
type queryArgs struct {
	Query      string  `json:"query"`
	NumResults float64 `json:"numResults"`
}

// scopedQueryArgs adds a content-type filter to queryArgs.
type scopedQueryArgs struct {
	Query      string  `json:"query"`
	SearchType string  `json:"searchType"`
	NumResults float64 `json:"numResults"`
}

func querySchema(queryDesc, countDesc string) *jsonschema.Schema {
	return objectSchema([]string{"query"}, map[string]*jsonschema.Schema{
		"query":      requiredString(queryDesc),
		"numResults": positiveNumber(countDesc),
	})
}

func resultCount(n float64) int {
	if n < 1 {
		return exa.DefaultNumResults
	}
	return int(n)
}

func maxCharacters(n float64) int {
	if n < 1 {
		return exa.DefaultMaxCharacters
	}
	return int(n)
}

func textContents(maxChars int, mode exa.Livecrawl) exa.Contents {
	return exa.Contents{Text: exa.TextOptions{MaxCharacters: maxChars}, Livecrawl: mode}
}
