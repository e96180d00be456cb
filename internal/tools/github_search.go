package tools

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/exa-labs/exa-mcp-server/internal/exa"
)

func gitHubQuery(a scopedQueryArgs) string {
	switch a.SearchType {
	case "repositories":
		return a.Query + " GitHub repository"
	case "code":
		return a.Query + " GitHub code"
	case "users":
		return a.Query + " GitHub user profile"
	default:
		return a.Query + " GitHub"
	}
}

func gitHubSearch() Definition[scopedQueryArgs] {
	return Definition[scopedQueryArgs]{
		ID:          GitHubSearchID,
		Description: "Search GitHub repositories and code using Exa AI - finds repositories, code snippets, documentation, and developer profiles on GitHub. Useful for finding open source projects, code examples, and technical resources.",
		Schema: objectSchema([]string{"query"}, map[string]*jsonschema.Schema{
			"query":      requiredString("GitHub search query (repository name, programming language, username, etc.)"),
			"searchType": stringEnum("Type of GitHub content to search (default: all)", "repositories", "code", "users", "all"),
			"numResults": positiveNumber("Number of GitHub results to return (default: 5)"),
		}),
		Label:   "GitHub search",
		Empty:   "No GitHub content found. Please try a different query.",
		Subject: func(a scopedQueryArgs) string { return fmt.Sprintf("%s (%s)", a.Query, scopeOrAll(a.SearchType)) },
		Build: func(a scopedQueryArgs) exa.Request {
			return exa.Search(exa.SearchRequest{
				Query:          gitHubQuery(a),
				Type:           exa.SearchNeural,
				NumResults:     resultCount(a.NumResults),
				Contents:       textContents(exa.DefaultMaxCharacters, exa.LivecrawlPreferred),
				IncludeDomains: []string{"github.com"},
			})
		},
	}
}
