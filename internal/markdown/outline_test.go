package markdown

import (
	"strings"
	"testing"
)

const topicDoc = `# Papers on Pain Relief

Total papers: 2

## Analgesic Study
- **Paper ID**: 2301.00001v1

### Summary
Short summary...

---

## NSAID Review
- **Paper ID**: 2301.00002v1

### Summary
Another summary...
`

func TestToHTML(t *testing.T) {
	r := NewRenderer()
	html, err := r.ToHTML([]byte(topicDoc))
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Papers on Pain Relief") {
		t.Errorf("missing H1 in output:\n%s", html)
	}
	if !strings.Contains(html, "<h2") {
		t.Errorf("missing H2 in output")
	}
}

func TestOutline(t *testing.T) {
	r := NewRenderer()
	items, err := r.Outline([]byte(topicDoc))
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if len(items) == 0 {
		t.Fatal("empty outline")
	}
	if items[0].Depth != 1 || items[0].Title != "Papers on Pain Relief" {
		t.Errorf("item 0 = %+v, want depth 1 title 'Papers on Pain Relief'", items[0])
	}

	var h2 []string
	for _, item := range items {
		if item.Depth == 2 {
			h2 = append(h2, item.Title)
		}
	}
	if len(h2) != 2 || h2[0] != "Analgesic Study" || h2[1] != "NSAID Review" {
		t.Errorf("H2 titles = %v", h2)
	}
}

func TestOutlineNoHeadings(t *testing.T) {
	r := NewRenderer()
	items, err := r.Outline([]byte("plain text, no structure"))
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty outline, got %v", items)
	}
}
