package papers

import (
	"fmt"
	"sort"
	"strings"
)

// summaryLimit is the maximum number of summary characters included in a
// rendered topic document. The ellipsis marker is always appended.
const summaryLimit = 500

// RenderTopicList renders the available topics as a markdown document.
func (s *Store) RenderTopicList() string {
	topics := s.Topics()

	var b strings.Builder
	b.WriteString("# Available Topics\n\n")
	if len(topics) == 0 {
		b.WriteString("No topics found.\n")
		return b.String()
	}

	for _, topic := range topics {
		fmt.Fprintf(&b, "- %s\n", topic)
	}
	fmt.Fprintf(&b, "\nUse @%s to access papers in that topic.\n", topics[len(topics)-1])
	return b.String()
}

// RenderTopic renders one topic's cached papers as a markdown document.
// A missing cache yields a "try searching first" document and a corrupt
// cache an "error reading" document; neither is an error.
func (s *Store) RenderTopic(topic string) string {
	info, state := s.Load(topic)
	switch state {
	case CacheMissing:
		return fmt.Sprintf("# No papers found for topic: %s\n\nTry searching for papers on this topic first.", topic)
	case CacheCorrupt:
		return fmt.Sprintf("# Error reading papers data for %s\n\nThe papers data file is corrupted.", topic)
	}

	ids := make([]string, 0, len(info))
	for id := range info {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	fmt.Fprintf(&b, "# Papers on %s\n\n", topicTitle(topic))
	fmt.Fprintf(&b, "Total papers: %d\n\n", len(info))

	for _, id := range ids {
		paper := info[id]
		fmt.Fprintf(&b, "## %s\n", paper.Title)
		fmt.Fprintf(&b, "- **Paper ID**: %s\n", id)
		fmt.Fprintf(&b, "- **Authors**: %s\n", strings.Join(paper.Authors, ", "))
		fmt.Fprintf(&b, "- **Published**: %s\n", paper.Published)
		fmt.Fprintf(&b, "- **PDF URL**: [%s](%s)\n\n", paper.PDFURL, paper.PDFURL)
		fmt.Fprintf(&b, "### Summary\n%s...\n\n", truncateSummary(paper.Summary))
		b.WriteString("---\n\n")
	}
	return b.String()
}

// truncateSummary returns at most summaryLimit characters. Counted in
// runes so multi-byte abstracts never split mid-character.
func truncateSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) > summaryLimit {
		runes = runes[:summaryLimit]
	}
	return string(runes)
}

// topicTitle turns a normalized topic key back into a display title
// ("machine_learning" -> "Machine Learning").
func topicTitle(topic string) string {
	words := strings.Split(strings.ReplaceAll(topic, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
