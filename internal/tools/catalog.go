package tools

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/exa-labs/exa-mcp-server/internal/exa"
	"github.com/exa-labs/exa-mcp-server/internal/mcp"
	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

// Tool identifiers exposed to MCP clients.
const (
	WebSearchID           = "web_search_exa"
	ResearchPaperSearchID = "research_paper_search_exa"
	CompanyResearchID     = "company_research_exa"
	CrawlingID            = "crawling_exa"
	CompetitorFinderID    = "competitor_finder_exa"
	LinkedInSearchID      = "linkedin_search_exa"
	WikipediaSearchID     = "wikipedia_search_exa"
	GitHubSearchID        = "github_search_exa"
)

// Deps are the collaborators every tool handler is bound to.
type Deps struct {
	Executor exa.Executor
	// APIKey is the key configured for this server instance.
	APIKey string
	// FallbackAPIKey is the process-wide key, used when APIKey is empty.
	FallbackAPIKey string
	// Timeout overrides the per-request timeout when positive.
	Timeout time.Duration
	Logger  *logrus.Entry
}

func (d Deps) apiKey() string {
	if d.APIKey != "" {
		return d.APIKey
	}
	return d.FallbackAPIKey
}

// Entry is one tool in the catalog.
type Entry struct {
	ID               string
	Name             string
	Summary          string
	EnabledByDefault bool

	spec toolSpec
}

type toolSpec interface {
	descriptor() protocol.ToolDescriptor
	bind(Deps) (mcp.Tool, error)
}

// Descriptor returns the tool's MCP descriptor without binding a handler.
func (e Entry) Descriptor() protocol.ToolDescriptor {
	return e.spec.descriptor()
}

// New binds the tool's handler to deps.
func (e Entry) New(deps Deps) (mcp.Tool, error) {
	return e.spec.bind(deps)
}

// Catalog lists every tool in a fixed order.
func Catalog() []Entry {
	return []Entry{
		{ID: WebSearchID, Name: "Web Search (Exa)", Summary: "Real-time web search using Exa AI", EnabledByDefault: true, spec: webSearch()},
		{ID: ResearchPaperSearchID, Name: "Research Paper Search", Summary: "Search academic papers and research", EnabledByDefault: true, spec: researchPaperSearch()},
		{ID: CompanyResearchID, Name: "Company Research", Summary: "Research companies and organizations", EnabledByDefault: true, spec: companyResearch()},
		{ID: CrawlingID, Name: "Web Crawling", Summary: "Extract content from specific URLs", EnabledByDefault: true, spec: crawling()},
		{ID: CompetitorFinderID, Name: "Competitor Finder", Summary: "Find business competitors", EnabledByDefault: true, spec: competitorFinder()},
		{ID: LinkedInSearchID, Name: "LinkedIn Search", Summary: "Search LinkedIn profiles and companies", EnabledByDefault: true, spec: linkedInSearch()},
		{ID: WikipediaSearchID, Name: "Wikipedia Search", Summary: "Search Wikipedia articles", EnabledByDefault: true, spec: wikipediaSearch()},
		{ID: GitHubSearchID, Name: "GitHub Search", Summary: "Search GitHub repositories and code", EnabledByDefault: true, spec: gitHubSearch()},
	}
}

// RegisterActive binds every active catalog entry onto tb in catalog order.
func RegisterActive(tb *mcp.Toolbox, catalog []Entry, active ActiveSet, deps Deps) error {
	for _, e := range catalog {
		if !active.Contains(e.ID) {
			continue
		}
		tool, err := e.New(deps)
		if err != nil {
			return err
		}
		if err := tb.Register(tool); err != nil {
			return err
		}
	}
	return nil
}
