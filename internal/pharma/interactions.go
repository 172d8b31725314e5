package pharma

import "strings"

// Interaction describes one matched ingredient interaction.
type Interaction struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// Analysis accumulates the outcome of evaluating the rule set against a
// list of ingredient names.
type Analysis struct {
	IngredientsAnalyzed   []string      `json:"ingredients_analyzed"`
	PotentialInteractions []Interaction `json:"potential_interactions"`
	Warnings              []string      `json:"warnings"`
	Recommendations       []string      `json:"recommendations"`
}

// Rule is a fixed predicate over a set of lower-cased ingredient names.
// A rule matches when at least MinMatches of its Ingredients are present.
// A matched rule contributes its Warning and, when set, its Interaction.
type Rule struct {
	Name        string
	Ingredients []string
	MinMatches  int
	Interaction *Interaction
	Warning     string
}

// matches counts rule ingredients present in the given set.
func (r Rule) matches(present map[string]bool) bool {
	count := 0
	for _, ing := range r.Ingredients {
		if present[ing] {
			count++
		}
	}
	return count >= r.MinMatches
}

// RuleSet is an ordered list of interaction rules. Rules are independent:
// evaluation never short-circuits, every rule always runs.
type RuleSet []Rule

// Evaluate lower-cases the names into a set and runs every rule. If no
// rule produced an interaction, a single generic recommendation is added.
func (rs RuleSet) Evaluate(names []string) Analysis {
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[strings.ToLower(name)] = true
	}

	analysis := Analysis{
		IngredientsAnalyzed:   names,
		PotentialInteractions: []Interaction{},
		Warnings:              []string{},
		Recommendations:       []string{},
	}

	for _, rule := range rs {
		if !rule.matches(present) {
			continue
		}
		if rule.Interaction != nil {
			analysis.PotentialInteractions = append(analysis.PotentialInteractions, *rule.Interaction)
		}
		if rule.Warning != "" {
			analysis.Warnings = append(analysis.Warnings, rule.Warning)
		}
	}

	if len(analysis.PotentialInteractions) == 0 {
		analysis.Recommendations = append(analysis.Recommendations,
			"No major interactions identified between these ingredients")
	}
	return analysis
}

// DefaultRules returns the built-in interaction rule set.
func DefaultRules() RuleSet {
	return RuleSet{
		{
			Name:        "multiple NSAIDs",
			Ingredients: []string{"ibuprofen", "naproxen", "aspirin", "diclofenac"},
			MinMatches:  2,
			Interaction: &Interaction{
				Type:        "Increased NSAID exposure",
				Severity:    "Moderate to High",
				Description: "Multiple NSAIDs increase risk of GI bleeding and kidney damage",
			},
			Warning: "Avoid combining multiple NSAIDs",
		},
		{
			Name:        "acetaminophen with alcohol",
			Ingredients: []string{"acetaminophen"},
			MinMatches:  1,
			Warning:     "Limit alcohol consumption - increases liver toxicity risk",
		},
		{
			Name:        "sedating antihistamines",
			Ingredients: []string{"diphenhydramine", "chlorpheniramine", "doxylamine"},
			MinMatches:  1,
			Warning:     "May cause drowsiness - avoid driving or operating machinery",
		},
	}
}
