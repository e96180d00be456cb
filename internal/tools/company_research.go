package tools

import "github.com/exa-labs/exa-mcp-server/internal/exa"

var companyDomains = []string{
	"bloomberg.com",
	"reuters.com",
	"crunchbase.com",
	"sec.gov",
	"linkedin.com",
	"forbes.com",
	"businessinsider.com",
	"techcrunch.com",
}

func companyResearch() Definition[queryArgs] {
	return Definition[queryArgs]{
		ID:          CompanyResearchID,
		Description: "Research companies using Exa AI - finds comprehensive information about businesses, organizations, and corporations. Provides insights into company operations, news, financial information, and industry analysis.",
		Schema:      querySchema("Company name or research query", "Number of search results to return (default: 5)"),
		Label:       "Company research",
		Empty:       "No company information found. Please try a different company name.",
		Subject:     func(a queryArgs) string { return a.Query },
		Build: func(a queryArgs) exa.Request {
			return exa.Search(exa.SearchRequest{
				Query:          a.Query + " company business corporation information news financial",
				Type:           exa.SearchNeural,
				NumResults:     resultCount(a.NumResults),
				Contents:       textContents(exa.DefaultMaxCharacters, exa.LivecrawlAlways),
				IncludeDomains: companyDomains,
			})
		},
	}
}
