package mcp

import (
	"context"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/research-mcp/internal/prompts"
)

const defaultNumPapers = 5

// searchPromptHandler serves the generate_search_prompt prompt.
// Arguments arrive as strings per the MCP prompt contract; num_papers
// falls back to the default when absent or unparsable.
func searchPromptHandler(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := req.Params.Arguments["topic"]

	numPapers := defaultNumPapers
	if raw := req.Params.Arguments["num_papers"]; raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			numPapers = n
		}
	}

	return &mcp.GetPromptResult{
		Description: "Search and discuss academic papers on a topic",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: prompts.SearchPrompt(topic, numPapers)},
			},
		},
	}, nil
}

// analysisPromptHandler serves the pharmaceutical_analysis_prompt prompt.
// active_ingredients is a comma-separated list.
func analysisPromptHandler(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	condition := req.Params.Arguments["condition"]

	var ingredients []string
	for _, part := range strings.Split(req.Params.Arguments["active_ingredients"], ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}

	return &mcp.GetPromptResult{
		Description: "Comprehensive pharmaceutical analysis of active ingredients",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: prompts.PharmaceuticalAnalysisPrompt(ingredients, condition)},
			},
		},
	}, nil
}
