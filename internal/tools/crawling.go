package tools

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/exa-labs/exa-mcp-server/internal/exa"
)

type crawlArgs struct {
	URL           string  `json:"url"`
	MaxCharacters float64 `json:"maxCharacters"`
}

func crawling() Definition[crawlArgs] {
	return Definition[crawlArgs]{
		ID:          CrawlingID,
		Description: "Extract and crawl content from specific URLs using Exa AI - retrieves full text content, metadata, and structured information from web pages. Ideal for extracting detailed content from known URLs.",
		Schema: objectSchema([]string{"url"}, map[string]*jsonschema.Schema{
			"url":           requiredString("URL to crawl and extract content from"),
			"maxCharacters": positiveNumber("Maximum characters to extract (default: 3000)"),
		}),
		Label:   "Crawling",
		Empty:   "No content found for the provided URL.",
		Subject: func(a crawlArgs) string { return a.URL },
		Build: func(a crawlArgs) exa.Request {
			return exa.Fetch(exa.ContentsRequest{
				IDs:      []string{a.URL},
				Contents: textContents(maxCharacters(a.MaxCharacters), exa.LivecrawlPreferred),
			})
		},
	}
}
