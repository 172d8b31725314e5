package mcp

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bull/research-mcp/internal/arxiv"
	"github.com/bull/research-mcp/internal/papers"
	"github.com/bull/research-mcp/internal/pharma"
	"github.com/bull/research-mcp/internal/research"
)

type stubSearcher struct {
	results []arxiv.Result
	err     error
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ int) ([]arxiv.Result, error) {
	return s.results, s.err
}

func testService(t *testing.T, searcher research.Searcher) *research.Service {
	t.Helper()
	return research.NewService(&research.Config{
		Store:     papers.NewStore(t.TempDir()),
		Searcher:  searcher,
		Knowledge: pharma.DefaultKnowledge(),
		Rules:     pharma.DefaultRules(),
		Logger:    slog.New(slog.DiscardHandler),
	})
}

func stubResult(id string) arxiv.Result {
	return arxiv.Result{
		ID: id,
		Paper: papers.Paper{
			Title:     "Paper " + id,
			Authors:   []string{"A. Author"},
			Summary:   "Summary",
			PDFURL:    "http://arxiv.org/pdf/" + id,
			Published: "2023-01-01",
		},
	}
}

func TestSearchHandler(t *testing.T) {
	svc := testService(t, &stubSearcher{results: []arxiv.Result{stubResult("2301.00001v1")}})
	handler := makeSearchHandler(svc)

	_, out, err := handler(context.Background(), nil, SearchPapersInput{Topic: "pain relief"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2301.00001v1"}, out.PaperIDs)
	assert.Equal(t, 1, out.Count)
	assert.Empty(t, out.Message)
}

func TestSearchHandlerNoResults(t *testing.T) {
	svc := testService(t, &stubSearcher{})
	handler := makeSearchHandler(svc)

	_, out, err := handler(context.Background(), nil, SearchPapersInput{Topic: "nothing here"})
	require.NoError(t, err)
	assert.Empty(t, out.PaperIDs)
	assert.Contains(t, out.Message, "No papers found")
}

func TestSearchHandlerProviderError(t *testing.T) {
	svc := testService(t, &stubSearcher{err: errors.New("boom")})
	handler := makeSearchHandler(svc)

	_, _, err := handler(context.Background(), nil, SearchPapersInput{Topic: "anything"})
	require.Error(t, err)
}

func TestExtractHandler(t *testing.T) {
	svc := testService(t, &stubSearcher{results: []arxiv.Result{stubResult("2301.00001v1")}})
	_, err := svc.SearchPapers(context.Background(), "some topic", 5)
	require.NoError(t, err)

	handler := makeExtractHandler(svc)

	_, out, err := handler(context.Background(), nil, ExtractInfoInput{PaperID: "2301.00001v1"})
	require.NoError(t, err)
	assert.Contains(t, out.Info, `"title": "Paper 2301.00001v1"`)

	_, out, err = handler(context.Background(), nil, ExtractInfoInput{PaperID: "missing"})
	require.NoError(t, err)
	assert.Equal(t, "There's no saved information related to paper missing.", out.Info)
}

func TestResearchHandler(t *testing.T) {
	svc := testService(t, &stubSearcher{results: []arxiv.Result{stubResult("2301.00001v1")}})
	handler := makeResearchHandler(svc)

	_, report, err := handler(context.Background(), nil, ResearchIngredientInput{
		IngredientName: "loratadine",
	})
	require.NoError(t, err)
	assert.Equal(t, "loratadine", report.Ingredient)
	assert.Equal(t, "safety and efficacy", report.ResearchFocus)
	assert.NotEmpty(t, report.SafetyProfile)
	assert.Equal(t, []string{"Known hypersensitivity"}, report.Contraindications)
}

func TestInteractionsHandler(t *testing.T) {
	svc := testService(t, &stubSearcher{})
	handler := makeInteractionsHandler(svc)

	_, analysis, err := handler(context.Background(), nil, AnalyzeInteractionsInput{
		Ingredients: []string{"ibuprofen", "naproxen"},
	})
	require.NoError(t, err)
	assert.Len(t, analysis.PotentialInteractions, 1)
	assert.Equal(t, "Increased NSAID exposure", analysis.PotentialInteractions[0].Type)
}
