package papers

// Paper is the cached representation of one arXiv search result.
// Records are immutable once fetched; a re-fetch under the same
// identifier overwrites the entry wholesale.
type Paper struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Summary   string   `json:"summary"`
	PDFURL    string   `json:"pdf_url"`
	Published string   `json:"published"` // YYYY-MM-DD
}

// CacheFileName is the per-topic cache file inside each topic directory.
const CacheFileName = "papers_info.json"
