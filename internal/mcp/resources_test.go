package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bull/research-mcp/internal/papers"
)

func TestFoldersResource(t *testing.T) {
	store := papers.NewStore(t.TempDir())
	require.NoError(t, store.Save("pain relief", map[string]papers.Paper{
		"2301.00001v1": {Title: "A", Authors: []string{"X"}},
	}))

	handler := makeFoldersHandler(store)
	result, err := handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: foldersURI},
	})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	content := result.Contents[0]
	assert.Equal(t, foldersURI, content.URI)
	assert.Equal(t, "text/markdown", content.MIMEType)
	assert.Contains(t, content.Text, "- pain_relief")
}

func TestTopicResource(t *testing.T) {
	store := papers.NewStore(t.TempDir())
	require.NoError(t, store.Save("pain relief", map[string]papers.Paper{
		"2301.00001v1": {
			Title:     "Analgesic Study",
			Authors:   []string{"X"},
			Summary:   "s",
			PDFURL:    "http://arxiv.org/pdf/2301.00001v1",
			Published: "2023-01-01",
		},
	}))

	handler := makeTopicHandler(store)
	result, err := handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "papers://pain relief"},
	})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, "# Papers on Pain Relief")
	assert.Contains(t, result.Contents[0].Text, "## Analgesic Study")
}

func TestTopicResourceMissing(t *testing.T) {
	store := papers.NewStore(t.TempDir())

	handler := makeTopicHandler(store)
	result, err := handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "papers://unseen"},
	})
	require.NoError(t, err, "missing topics must render, not fail")
	assert.Contains(t, result.Contents[0].Text, "Try searching for papers on this topic first.")
}

func TestSearchPromptHandler(t *testing.T) {
	result, err := searchPromptHandler(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      "generate_search_prompt",
			Arguments: map[string]string{"topic": "drug interactions", "num_papers": "3"},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Messages, 1)

	text := result.Messages[0].Content.(*mcp.TextContent).Text
	assert.Contains(t, text, "Search for 3 academic papers about 'drug interactions'")
}

func TestSearchPromptHandlerDefaultCount(t *testing.T) {
	result, err := searchPromptHandler(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      "generate_search_prompt",
			Arguments: map[string]string{"topic": "ibuprofen", "num_papers": "not-a-number"},
		},
	})
	require.NoError(t, err)

	text := result.Messages[0].Content.(*mcp.TextContent).Text
	assert.Contains(t, text, "Search for 5 academic papers")
}

func TestAnalysisPromptHandler(t *testing.T) {
	result, err := analysisPromptHandler(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name: "pharmaceutical_analysis_prompt",
			Arguments: map[string]string{
				"active_ingredients": "ibuprofen, acetaminophen",
				"condition":          "headache",
			},
		},
	})
	require.NoError(t, err)

	text := result.Messages[0].Content.(*mcp.TextContent).Text
	assert.Contains(t, text, "Active Ingredients to Research: ibuprofen, acetaminophen")
	assert.Contains(t, text, "for treating headache:")
}
