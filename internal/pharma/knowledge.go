// Package pharma holds the compiled-in pharmacological knowledge: a small
// ingredient profile table and a fixed set of interaction rules. Both are
// modeled as data so tests can swap tables without touching lookup logic.
// The texts are literal constants, not a medical knowledge base.
package pharma

import "strings"

// KnowledgeEntry maps an ingredient-name substring to its fixed profile.
type KnowledgeEntry struct {
	// Match is the lower-case substring tested against the ingredient name.
	Match string

	SafetyProfile     string
	EfficacyData      string
	Contraindications []string
}

// KnowledgeTable is an ordered table of ingredient knowledge. Order is the
// lookup priority: the first matching entry wins.
type KnowledgeTable []KnowledgeEntry

// Lookup performs a case-insensitive substring match of name against the
// table. Unknown ingredients return ok=false; callers fill empty fields.
func (t KnowledgeTable) Lookup(name string) (KnowledgeEntry, bool) {
	lower := strings.ToLower(name)
	for _, entry := range t {
		if strings.Contains(lower, entry.Match) {
			return entry, true
		}
	}
	return KnowledgeEntry{}, false
}

// DefaultKnowledge returns the built-in ingredient table.
func DefaultKnowledge() KnowledgeTable {
	return KnowledgeTable{
		{
			Match:             "acetaminophen",
			SafetyProfile:     "Generally safe when used as directed. Maximum daily dose: 3000-4000mg. Hepatotoxic in overdose.",
			EfficacyData:      "Effective analgesic and antipyretic. Onset: 30-60 minutes. Duration: 4-6 hours.",
			Contraindications: []string{"Severe liver disease", "Alcohol dependence"},
		},
		{
			Match:             "ibuprofen",
			SafetyProfile:     "NSAID with anti-inflammatory properties. GI and cardiovascular risks with long-term use.",
			EfficacyData:      "Effective for pain, inflammation, and fever. Onset: 20-30 minutes. Duration: 4-6 hours.",
			Contraindications: []string{"Active GI bleeding", "Severe heart failure", "Third trimester pregnancy"},
		},
		{
			Match:             "loratadine",
			SafetyProfile:     "Non-sedating antihistamine. Minimal side effects. Safe for long-term use.",
			EfficacyData:      "Effective for allergic rhinitis and urticaria. Onset: 1-3 hours. Duration: 24 hours.",
			Contraindications: []string{"Known hypersensitivity"},
		},
	}
}
