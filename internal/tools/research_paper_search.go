package tools

import "github.com/exa-labs/exa-mcp-server/internal/exa"

var researchDomains = []string{
	"arxiv.org",
	"scholar.google.com",
	"researchgate.net",
	"pubmed.ncbi.nlm.nih.gov",
	"ieee.org",
	"acm.org",
}

func researchPaperSearch() Definition[queryArgs] {
	return Definition[queryArgs]{
		ID:          ResearchPaperSearchID,
		Description: "Search for academic papers and research using Exa AI - specializes in finding scholarly articles, research papers, and academic content. Returns detailed information about research findings and academic sources.",
		Schema:      querySchema("Research paper search query", "Number of research papers to return (default: 5)"),
		Label:       "Research paper search",
		Empty:       "No research papers found. Please try a different query.",
		Subject:     func(a queryArgs) string { return a.Query },
		Build: func(a queryArgs) exa.Request {
			return exa.Search(exa.SearchRequest{
				Query:          a.Query + " academic paper research study",
				Type:           exa.SearchNeural,
				NumResults:     resultCount(a.NumResults),
				Contents:       textContents(exa.DefaultMaxCharacters, exa.LivecrawlAlways),
				IncludeDomains: researchDomains,
			})
		},
	}
}
