package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/research-mcp/internal/research"
)

const defaultMaxResults = 5

// makeSearchHandler creates the search_papers tool handler.
// Search flow:
// 1. Augment the topic with the fixed pharmacological keyword disjunction
// 2. Query arXiv sorted by relevance, bounded to max_results
// 3. Merge every result into the topic's cache file
// 4. Return IDs in provider-relevance order
func makeSearchHandler(svc *research.Service) func(
	context.Context, *mcp.CallToolRequest, SearchPapersInput,
) (*mcp.CallToolResult, SearchPapersOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchPapersInput) (
		*mcp.CallToolResult, SearchPapersOutput, error,
	) {
		maxResults := input.MaxResults
		if maxResults == 0 {
			maxResults = defaultMaxResults
		}

		ids, err := svc.SearchPapers(ctx, input.Topic, maxResults)
		if err != nil {
			return nil, SearchPapersOutput{}, fmt.Errorf("search failed: %w", err)
		}

		if len(ids) == 0 {
			return nil, SearchPapersOutput{
				PaperIDs: []string{},
				Message:  "No papers found. Try broader search terms.",
			}, nil
		}

		return nil, SearchPapersOutput{PaperIDs: ids, Count: len(ids)}, nil
	}
}

// makeExtractHandler creates the extract_info tool handler.
// The not-found case is a sentinel string, not an error: an absent paper
// is a normal outcome for the calling agent.
func makeExtractHandler(svc *research.Service) func(
	context.Context, *mcp.CallToolRequest, ExtractInfoInput,
) (*mcp.CallToolResult, ExtractInfoOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExtractInfoInput) (
		*mcp.CallToolResult, ExtractInfoOutput, error,
	) {
		return nil, ExtractInfoOutput{Info: svc.ExtractInfo(input.PaperID)}, nil
	}
}

// makeResearchHandler creates the research_active_ingredient tool handler.
func makeResearchHandler(svc *research.Service) func(
	context.Context, *mcp.CallToolRequest, ResearchIngredientInput,
) (*mcp.CallToolResult, research.IngredientReport, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ResearchIngredientInput) (
		*mcp.CallToolResult, research.IngredientReport, error,
	) {
		report, err := svc.ResearchIngredient(ctx, input.IngredientName, input.ResearchFocus)
		if err != nil {
			return nil, research.IngredientReport{}, fmt.Errorf("research failed: %w", err)
		}
		return nil, report, nil
	}
}

// makeInteractionsHandler creates the analyze_drug_interactions tool
// handler. Unknown ingredients are never rejected; they simply match no
// rule.
func makeInteractionsHandler(svc *research.Service) func(
	context.Context, *mcp.CallToolRequest, AnalyzeInteractionsInput,
) (*mcp.CallToolResult, AnalyzeInteractionsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInteractionsInput) (
		*mcp.CallToolResult, AnalyzeInteractionsOutput, error,
	) {
		return nil, svc.AnalyzeInteractions(input.Ingredients), nil
	}
}
