package pharma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownIngredients(t *testing.T) {
	table := DefaultKnowledge()

	tests := []struct {
		name      string
		wantMatch string
	}{
		{"acetaminophen", "acetaminophen"},
		{"Acetaminophen Extra Strength", "acetaminophen"},
		{"IBUPROFEN", "ibuprofen"},
		{"children's loratadine", "loratadine"},
	}
	for _, tt := range tests {
		entry, ok := table.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q): no match", tt.name)
			continue
		}
		if entry.Match != tt.wantMatch {
			t.Errorf("Lookup(%q) matched %q, want %q", tt.name, entry.Match, tt.wantMatch)
		}
		if entry.SafetyProfile == "" || entry.EfficacyData == "" {
			t.Errorf("Lookup(%q): profile fields must be populated", tt.name)
		}
	}
}

func TestLookupUnknownIngredient(t *testing.T) {
	entry, ok := DefaultKnowledge().Lookup("unknown-compound-x")
	assert.False(t, ok)
	assert.Empty(t, entry.SafetyProfile)
	assert.Empty(t, entry.Contraindications)
}

func TestLookupPriorityOrder(t *testing.T) {
	// A name containing two table keys resolves to the earlier entry.
	entry, ok := DefaultKnowledge().Lookup("acetaminophen-ibuprofen combo")
	assert.True(t, ok)
	assert.Equal(t, "acetaminophen", entry.Match)
}

func TestEvaluateNSAIDPair(t *testing.T) {
	analysis := DefaultRules().Evaluate([]string{"ibuprofen", "naproxen"})

	assert.Len(t, analysis.PotentialInteractions, 1)
	assert.Equal(t, "Increased NSAID exposure", analysis.PotentialInteractions[0].Type)
	assert.Equal(t, "Moderate to High", analysis.PotentialInteractions[0].Severity)
	assert.Contains(t, analysis.Warnings, "Avoid combining multiple NSAIDs")
	assert.Empty(t, analysis.Recommendations)
}

func TestEvaluateSingleNSAIDNoInteraction(t *testing.T) {
	analysis := DefaultRules().Evaluate([]string{"ibuprofen"})

	assert.Empty(t, analysis.PotentialInteractions)
	assert.Empty(t, analysis.Warnings)
	assert.Equal(t, []string{"No major interactions identified between these ingredients"},
		analysis.Recommendations)
}

func TestEvaluateNoInteractions(t *testing.T) {
	analysis := DefaultRules().Evaluate([]string{"loratadine"})

	assert.Empty(t, analysis.PotentialInteractions)
	assert.Empty(t, analysis.Warnings)
	assert.Equal(t, []string{"No major interactions identified between these ingredients"},
		analysis.Recommendations)
}

func TestEvaluateRulesAreIndependent(t *testing.T) {
	// NSAID pair, acetaminophen, and a sedating antihistamine together:
	// all three rules fire, none short-circuits the others.
	analysis := DefaultRules().Evaluate([]string{"Ibuprofen", "ASPIRIN", "acetaminophen", "doxylamine"})

	assert.Len(t, analysis.PotentialInteractions, 1)
	assert.Equal(t, []string{
		"Avoid combining multiple NSAIDs",
		"Limit alcohol consumption - increases liver toxicity risk",
		"May cause drowsiness - avoid driving or operating machinery",
	}, analysis.Warnings)
	assert.Empty(t, analysis.Recommendations)
}

func TestEvaluateEmptyInput(t *testing.T) {
	analysis := DefaultRules().Evaluate(nil)

	assert.Empty(t, analysis.PotentialInteractions)
	assert.Equal(t, []string{"No major interactions identified between these ingredients"},
		analysis.Recommendations)
}
