// Package markdown renders topic documents to HTML and extracts section
// outlines for CLI display.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// OutlineItem is one heading in a rendered topic document.
type OutlineItem struct {
	Depth int    // 1 for H1, 2 for H2, ...
	Title string
}

// Renderer converts generated markdown documents for terminal-adjacent
// output formats.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer configured with a goldmark parser.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Renderer{md: md}
}

// ToHTML converts a markdown document to HTML.
func (r *Renderer) ToHTML(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Outline extracts the H1-H3 heading hierarchy of a markdown document.
// Topic documents use H1 for the title, H2 per paper, H3 for summaries.
func (r *Renderer) Outline(source []byte) ([]OutlineItem, error) {
	reader := text.NewReader(source)
	doc := r.md.Parser().Parse(reader)

	tree, err := toc.Inspect(doc, source,
		toc.MinDepth(1),
		toc.MaxDepth(3),
		toc.Compact(true),
	)
	if err != nil {
		return nil, fmt.Errorf("inspect TOC: %w", err)
	}

	var items []OutlineItem
	collectItems(tree.Items, 1, &items)
	return items, nil
}

// collectItems walks the TOC tree depth-first.
func collectItems(items toc.Items, depth int, out *[]OutlineItem) {
	for _, item := range items {
		title := strings.TrimSpace(string(item.Title))
		if title != "" {
			*out = append(*out, OutlineItem{Depth: depth, Title: title})
		}
		collectItems(item.Items, depth+1, out)
	}
}
