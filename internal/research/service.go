// Package research orchestrates the paper search, cache, and knowledge
// lookups shared by the MCP handlers and the CLI.
package research

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bull/research-mcp/internal/arxiv"
	"github.com/bull/research-mcp/internal/papers"
	"github.com/bull/research-mcp/internal/pharma"
)

// queryKeywords is the fixed disjunction appended to every topic to bias
// results toward pharmacological relevance.
const queryKeywords = "(efficacy OR safety OR clinical OR pharmacology OR therapeutic OR adverse OR side effects)"

// ingredientSearchResults bounds the search performed inside
// ResearchIngredient.
const ingredientSearchResults = 3

// Searcher is the external paper search dependency.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]arxiv.Result, error)
}

// FindingsGenerator is the optional key-findings dependency.
type FindingsGenerator interface {
	Generate(ctx context.Context, ingredient, focus string, records []papers.Paper) ([]string, error)
}

// IngredientReport is the structured result of ResearchIngredient.
type IngredientReport struct {
	Ingredient        string   `json:"ingredient"`
	ResearchFocus     string   `json:"research_focus"`
	PapersFound       int      `json:"papers_found"`
	PaperIDs          []string `json:"paper_ids"`
	KeyFindings       []string `json:"key_findings"`
	SafetyProfile     string   `json:"safety_profile"`
	EfficacyData      string   `json:"efficacy_data"`
	Contraindications []string `json:"contraindications"`
}

// Service ties the cache store, search client, and knowledge tables
// together. One operation performs at most one cache read/write.
type Service struct {
	store     *papers.Store
	searcher  Searcher
	knowledge pharma.KnowledgeTable
	rules     pharma.RuleSet
	findings  FindingsGenerator
	logger    *slog.Logger
}

// Config holds service dependencies. Findings may be nil; key findings
// then stay empty.
type Config struct {
	Store     *papers.Store
	Searcher  Searcher
	Knowledge pharma.KnowledgeTable
	Rules     pharma.RuleSet
	Findings  FindingsGenerator
	Logger    *slog.Logger
}

// NewService creates the research service.
func NewService(cfg *Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:     cfg.Store,
		searcher:  cfg.Searcher,
		knowledge: cfg.Knowledge,
		rules:     cfg.Rules,
		findings:  cfg.Findings,
		logger:    logger,
	}
}

// Store exposes the underlying cache store for resource rendering.
func (s *Service) Store() *papers.Store {
	return s.store
}

// SearchPapers searches arXiv for a topic with the fixed pharmacological
// keyword augmentation and merges every result into the topic cache.
// Existing entries for other IDs are preserved; a result with an existing
// ID overwrites that entry. Returns IDs in provider-relevance order.
// maxResults <= 0 yields an empty list with no cache mutation.
func (s *Service) SearchPapers(ctx context.Context, topic string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		return []string{}, nil
	}

	query := fmt.Sprintf("%s AND %s", topic, queryKeywords)
	results, err := s.searcher.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", topic, err)
	}

	info, _ := s.store.Load(topic)

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
		info[r.ID] = r.Paper
	}

	if err := s.store.Save(topic, info); err != nil {
		return nil, err
	}

	s.logger.Info("search complete",
		"topic", topic,
		"results", len(ids),
		"cached", len(info))
	return ids, nil
}

// ExtractInfo returns the cached record for a paper ID as indented JSON
// text, or the not-found sentinel.
func (s *Service) ExtractInfo(paperID string) string {
	return s.store.ExtractInfo(paperID)
}

// ResearchIngredient searches for papers about an ingredient, then fills
// the profile fields from the static knowledge table. An unknown
// ingredient leaves the fields empty while papers_found may still be
// nonzero: search success and knowledge availability are independent.
func (s *Service) ResearchIngredient(ctx context.Context, name, focus string) (IngredientReport, error) {
	if focus == "" {
		focus = "safety and efficacy"
	}

	topic := fmt.Sprintf("%s %s", name, focus)
	paperIDs, err := s.SearchPapers(ctx, topic, ingredientSearchResults)
	if err != nil {
		return IngredientReport{}, err
	}

	report := IngredientReport{
		Ingredient:        name,
		ResearchFocus:     focus,
		PapersFound:       len(paperIDs),
		PaperIDs:          paperIDs,
		KeyFindings:       []string{},
		Contraindications: []string{},
	}

	if entry, ok := s.knowledge.Lookup(name); ok {
		report.SafetyProfile = entry.SafetyProfile
		report.EfficacyData = entry.EfficacyData
		report.Contraindications = entry.Contraindications
	}

	if s.findings != nil && len(paperIDs) > 0 {
		info, _ := s.store.Load(topic)
		records := make([]papers.Paper, 0, len(paperIDs))
		for _, id := range paperIDs {
			if paper, ok := info[id]; ok {
				records = append(records, paper)
			}
		}
		keyFindings, err := s.findings.Generate(ctx, name, focus, records)
		if err != nil {
			// Findings are supplemental: degrade to empty, keep the report.
			s.logger.Warn("key findings generation failed", "ingredient", name, "error", err)
		} else {
			report.KeyFindings = keyFindings
		}
	}

	return report, nil
}

// AnalyzeInteractions evaluates the static interaction rule set over the
// given ingredient names.
func (s *Service) AnalyzeInteractions(names []string) pharma.Analysis {
	return s.rules.Evaluate(names)
}
