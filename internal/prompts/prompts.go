// Package prompts generates instructional text for a calling agent by
// substituting arguments into fixed templates. Pure string formatting:
// no I/O, no error conditions.
package prompts

import (
	"fmt"
	"strings"
)

// SearchPrompt builds a prompt directing the agent to find and discuss
// academic papers on a topic using the search_papers tool.
func SearchPrompt(topic string, numPapers int) string {
	return fmt.Sprintf(`Search for %d academic papers about '%s' using the search_papers tool.

Follow these instructions:
1. First, search for papers using search_papers(topic='%s', max_results=%d)
2. For each paper found, extract and organize the following information:
   - Paper title
   - Authors
   - Publication date
   - Brief summary of the key findings
   - Main contributions or innovations
   - Methodologies used
   - Relevance to the topic '%s'

3. Provide a comprehensive summary that includes:
   - Overview of the current state of research in '%s'
   - Common themes and trends across the papers
   - Key research gaps or areas for future investigation
   - Most impactful or influential papers in this area

4. Organize your findings in a clear, structured format with headings and bullet points for easy readability.

Please present both detailed information about each paper and a high-level synthesis of the research landscape in %s.`,
		numPapers, topic, topic, numPapers, topic, topic, topic)
}

// PharmaceuticalAnalysisPrompt builds a prompt for a comprehensive
// analysis of active ingredients for a condition. An empty ingredient
// list still yields valid text with an empty substituted section.
func PharmaceuticalAnalysisPrompt(activeIngredients []string, condition string) string {
	ingredients := strings.Join(activeIngredients, ", ")

	return fmt.Sprintf(`As a pharmaceutical research assistant, conduct a comprehensive analysis of the following active ingredients for treating %s:

Active Ingredients to Research: %s

Please follow this systematic approach:

1. **Individual Ingredient Analysis**
   For each ingredient (%s):
   - Use research_active_ingredient() to gather safety and efficacy data
   - Summarize mechanism of action
   - Identify optimal dosing and duration
   - Note contraindications and warnings

2. **Comparative Effectiveness**
   - Compare efficacy profiles for treating %s
   - Identify which ingredients work best for specific symptoms
   - Note onset and duration differences

3. **Safety Assessment**
   - Use analyze_drug_interactions() to check for interactions between ingredients
   - Identify patient populations who should avoid each ingredient
   - Highlight important safety warnings

4. **Evidence-Based Recommendations**
   - Rank ingredients by strength of evidence for %s
   - Provide clear recommendations with rationale
   - Include when to recommend seeking professional medical care

5. **Patient Education Points**
   - Key points patients should know about each ingredient
   - Proper usage instructions
   - When to discontinue use

Present your analysis in a professional, evidence-based format suitable for patient counseling.`,
		condition, ingredients, ingredients, condition, condition)
}
