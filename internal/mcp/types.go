// Package mcp provides the MCP server surface for pharmaceutical paper
// research: tools, cache-backed resources, and prompt templates.
package mcp

import "github.com/bull/research-mcp/internal/pharma"

// SearchPapersInput defines the input parameters for the search_papers tool.
type SearchPapersInput struct {
	// Topic is the subject to search for (drug name, active ingredient, or condition).
	Topic string `json:"topic" jsonschema:"required,description=The topic to search for (drug name, active ingredient, or condition)"`
	// MaxResults is the maximum number of results to retrieve.
	MaxResults int `json:"max_results,omitempty" jsonschema:"minimum=1,maximum=20,default=5,description=Maximum number of results to retrieve"`
}

// SearchPapersOutput contains the IDs of papers found and cached.
type SearchPapersOutput struct {
	// PaperIDs lists the arXiv IDs in provider-relevance order.
	PaperIDs []string `json:"paper_ids"`
	// Count is the number of papers found.
	Count int `json:"count"`
	// Message provides informational context (e.g. "No papers found").
	Message string `json:"message,omitempty"`
}

// ExtractInfoInput defines the input parameters for the extract_info tool.
type ExtractInfoInput struct {
	// PaperID is the arXiv ID of the paper to look for.
	PaperID string `json:"paper_id" jsonschema:"required,description=The ID of the paper to look for"`
}

// ExtractInfoOutput contains the paper record or a not-found message.
type ExtractInfoOutput struct {
	// Info is the JSON-serialized paper record, or the not-found sentinel.
	Info string `json:"info"`
}

// ResearchIngredientInput defines the input for research_active_ingredient.
type ResearchIngredientInput struct {
	// IngredientName names the active ingredient (e.g. "acetaminophen").
	IngredientName string `json:"ingredient_name" jsonschema:"required,description=Name of the active ingredient (e.g. acetaminophen or ibuprofen)"`
	// ResearchFocus is the aspect to research (safety, efficacy, interactions, ...).
	ResearchFocus string `json:"research_focus,omitempty" jsonschema:"default=safety and efficacy,description=Specific aspect to research (safety, efficacy, interactions, etc.)"`
}

// AnalyzeInteractionsInput defines the input for analyze_drug_interactions.
type AnalyzeInteractionsInput struct {
	// Ingredients lists active ingredient names to check for interactions.
	Ingredients []string `json:"ingredients" jsonschema:"required,description=List of active ingredient names to check for interactions"`
}

// AnalyzeInteractionsOutput is the interaction analysis.
type AnalyzeInteractionsOutput = pharma.Analysis
