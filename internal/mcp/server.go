package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/research-mcp/internal/research"
)

// Server wraps the MCP server with dependencies.
type Server struct {
	server  *mcp.Server
	service *research.Service
}

// Config holds server dependencies.
type Config struct {
	Service *research.Service
}

// NewServer creates a configured MCP server with tools, resources, and
// prompts registered.
func NewServer(cfg *Config) *Server {
	impl := &mcp.Implementation{
		Name:    "research-papers-server",
		Version: "v0.1.0",
	}

	server := mcp.NewServer(impl, nil)
	store := cfg.Service.Store()

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_papers",
		Description: "Search arXiv for papers on a topic and store their information in the topic cache. Enhanced for pharmaceutical research with focus on active ingredients. Returns the paper IDs found.",
	}, makeSearchHandler(cfg.Service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_info",
		Description: "Look up a specific paper by ID across all cached topics. Returns the paper record as JSON, or a not-found message.",
	}, makeExtractHandler(cfg.Service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "research_active_ingredient",
		Description: "Research a specific active ingredient with focus on pharmaceutical properties. Searches papers and fills in known safety, efficacy, and contraindication data.",
	}, makeResearchHandler(cfg.Service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_drug_interactions",
		Description: "Analyze potential interactions between multiple active ingredients. Returns interactions, warnings, and recommendations.",
	}, makeInteractionsHandler(cfg.Service))

	server.AddResource(&mcp.Resource{
		URI:         foldersURI,
		Name:        "Available Topics",
		Description: "List of all available topic folders in the papers cache.",
		MIMEType:    "text/markdown",
	}, makeFoldersHandler(store))

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: topicURIPrefix + "{topic}",
		Name:        "Topic Papers",
		Description: "Detailed information about the cached papers on a specific topic.",
		MIMEType:    "text/markdown",
	}, makeTopicHandler(store))

	server.AddPrompt(&mcp.Prompt{
		Name:        "generate_search_prompt",
		Description: "Generate a prompt for finding and discussing academic papers on a specific topic.",
		Arguments: []*mcp.PromptArgument{
			{Name: "topic", Description: "The research topic", Required: true},
			{Name: "num_papers", Description: "Number of papers to search for (default 5)"},
		},
	}, searchPromptHandler)

	server.AddPrompt(&mcp.Prompt{
		Name:        "pharmaceutical_analysis_prompt",
		Description: "Generate a prompt for comprehensive pharmaceutical analysis of active ingredients for a specific condition.",
		Arguments: []*mcp.PromptArgument{
			{Name: "active_ingredients", Description: "Comma-separated active ingredient names", Required: true},
			{Name: "condition", Description: "The condition being treated", Required: true},
		},
	}, analysisPromptHandler)

	return &Server{
		server:  server,
		service: cfg.Service,
	}
}

// Run starts the server with stdio transport (blocks until client disconnects).
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
