package tools

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/exa-labs/exa-mcp-server/internal/exa"
)

func linkedInQuery(a scopedQueryArgs) string {
	switch a.SearchType {
	case "profiles":
		return a.Query + " LinkedIn profile"
	case "companies":
		return a.Query + " LinkedIn company"
	default:
		return a.Query + " LinkedIn"
	}
}

func linkedInSearch() Definition[scopedQueryArgs] {
	return Definition[scopedQueryArgs]{
		ID:          LinkedInSearchID,
		Description: "Search LinkedIn profiles and companies using Exa AI - finds professional profiles, company pages, and business-related content on LinkedIn. Useful for networking, recruitment, and business research.",
		Schema: objectSchema([]string{"query"}, map[string]*jsonschema.Schema{
			"query":      requiredString("LinkedIn search query (e.g., person name, company, job title)"),
			"searchType": stringEnum("Type of LinkedIn content to search (default: all)", "profiles", "companies", "all"),
			"numResults": positiveNumber("Number of LinkedIn results to return (default: 5)"),
		}),
		Label:   "LinkedIn search",
		Empty:   "No LinkedIn content found. Please try a different query.",
		Subject: func(a scopedQueryArgs) string { return fmt.Sprintf("%s (%s)", a.Query, scopeOrAll(a.SearchType)) },
		Build: func(a scopedQueryArgs) exa.Request {
			return exa.Search(exa.SearchRequest{
				Query:          linkedInQuery(a),
				Type:           exa.SearchNeural,
				NumResults:     resultCount(a.NumResults),
				Contents:       textContents(exa.DefaultMaxCharacters, exa.LivecrawlAlways),
				IncludeDomains: []string{"linkedin.com"},
			})
		},
	}
}

func scopeOrAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
