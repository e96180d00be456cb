package tools

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/exa-labs/exa-mcp-server/internal/exa"
)

var competitorDomains = []string{
	"crunchbase.com",
	"bloomberg.com",
	"techcrunch.com",
	"forbes.com",
	"businessinsider.com",
	"reuters.com",
	"linkedin.com",
}

type competitorArgs struct {
	CompanyName string  `json:"companyName"`
	Industry    string  `json:"industry"`
	NumResults  float64 `json:"numResults"`
}

func competitorQuery(a competitorArgs) string {
	if a.Industry != "" {
		return fmt.Sprintf("%s competitors similar companies %s industry competitive landscape", a.CompanyName, a.Industry)
	}
	return a.CompanyName + " competitors similar companies competitive landscape market"
}

func competitorFinder() Definition[competitorArgs] {
	return Definition[competitorArgs]{
		ID:          CompetitorFinderID,
		Description: "Find competitors for a business using Exa AI - identifies similar companies, competitive landscape analysis, and market positioning. Helps discover direct and indirect competitors in any industry.",
		Schema: objectSchema([]string{"companyName"}, map[string]*jsonschema.Schema{
			"companyName": requiredString("Name of the company to find competitors for"),
			"industry":    optionalString("Industry sector (optional, helps narrow search)"),
			"numResults":  positiveNumber("Number of competitors to find (default: 5)"),
		}),
		Label: "Competitor finder",
		Empty: "No competitor information found. Please try a different company name or industry.",
		Subject: func(a competitorArgs) string {
			industry := a.Industry
			if industry == "" {
				industry = "any industry"
			}
			return fmt.Sprintf("%s (%s)", a.CompanyName, industry)
		},
		Build: func(a competitorArgs) exa.Request {
			return exa.Search(exa.SearchRequest{
				Query:          competitorQuery(a),
				Type:           exa.SearchNeural,
				NumResults:     resultCount(a.NumResults),
				Contents:       textContents(exa.DefaultMaxCharacters, exa.LivecrawlPreferred),
				IncludeDomains: competitorDomains,
			})
		},
	}
}
