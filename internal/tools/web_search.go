package tools

import "github.com/exa-labs/exa-mcp-server/internal/exa"

func webSearch() Definition[queryArgs] {
	return Definition[queryArgs]{
		ID:          WebSearchID,
		Description: "Search the web using Exa AI - performs real-time web searches and can scrape content from specific URLs. Supports configurable result counts and returns the content from the most relevant websites.",
		Schema:      querySchema("Search query", "Number of search results to return (default: 5)"),
		Label:       "Search",
		Empty:       "No search results found. Please try a different query.",
		Subject:     func(a queryArgs) string { return a.Query },
		Build: func(a queryArgs) exa.Request {
			return exa.Search(exa.SearchRequest{
				Query:      a.Query,
				Type:       exa.SearchAuto,
				NumResults: resultCount(a.NumResults),
				Contents:   textContents(exa.DefaultMaxCharacters, exa.LivecrawlPreferred),
			})
		},
	}
}
