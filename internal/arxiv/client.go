// Package arxiv queries the arXiv Atom API and maps results into cached
// paper records.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bull/research-mcp/internal/papers"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// DefaultUserAgent identifies this client to the arXiv API.
const DefaultUserAgent = "research-mcp/0.1"

// Result pairs an arXiv short ID with its paper record. Results carry the
// provider's relevance order, which is not the cache's storage order.
type Result struct {
	ID    string
	Paper papers.Paper
}

// Client is a thin HTTP client for the arXiv API. Provider faults
// propagate unhandled: no retry, no backoff.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates an arXiv client. A nil httpClient uses a default with
// a 30s timeout.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		userAgent:  DefaultUserAgent,
	}
}

// Search issues a relevance-sorted query bounded to maxResults and returns
// the parsed results in provider order.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", maxResults))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var results []Result
	for _, entry := range feed.Entries {
		id := shortID(entry.ID)
		if id == "" {
			continue
		}

		paper := papers.Paper{
			Title:   strings.TrimSpace(entry.Title),
			Summary: strings.TrimSpace(entry.Summary),
			PDFURL:  entry.pdfURL(),
		}
		for _, a := range entry.Authors {
			paper.Authors = append(paper.Authors, strings.TrimSpace(a.Name))
		}
		if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
			paper.Published = t.Format("2006-01-02")
		}

		results = append(results, Result{ID: id, Paper: paper})
	}
	return results, nil
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string     `xml:"id"`
	Title     string     `xml:"title"`
	Summary   string     `xml:"summary"`
	Published string     `xml:"published"`
	Authors   []atomAuthor `xml:"author"`
	Links     []atomLink `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// pdfURL returns the entry's PDF link, falling back to rewriting the
// abstract URL when the feed omits one.
func (e atomEntry) pdfURL() string {
	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	return strings.Replace(e.ID, "/abs/", "/pdf/", 1)
}

// shortID pulls the arXiv short ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" -> "2301.07041v1").
// The version suffix is kept; it is part of the provider-native ID.
func shortID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return idURL[idx+len(prefix):]
}
