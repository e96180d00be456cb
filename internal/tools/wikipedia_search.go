package tools

import "github.com/exa-labs/exa-mcp-server/internal/exa"

func wikipediaSearch() Definition[queryArgs] {
	return Definition[queryArgs]{
		ID:          WikipediaSearchID,
		Description: "Search Wikipedia articles using Exa AI - finds comprehensive, factual information from Wikipedia entries. Ideal for research, fact-checking, and getting authoritative information on various topics.",
		Schema:      querySchema("Wikipedia search query (topic, person, place, concept, etc.)", "Number of Wikipedia articles to return (default: 5)"),
		Label:       "Wikipedia search",
		Empty:       "No Wikipedia articles found. Please try a different query.",
		Subject:     func(a queryArgs) string { return a.Query },
		Build: func(a queryArgs) exa.Request {
			return exa.Search(exa.SearchRequest{
				Query:          a.Query + " Wikipedia",
				Type:           exa.SearchNeural,
				NumResults:     resultCount(a.NumResults),
				Contents:       textContents(exa.DefaultMaxCharacters, exa.LivecrawlPreferred),
				IncludeDomains: []string{"wikipedia.org"},
			})
		},
	}
}
