// Package papers implements the on-disk topic cache: one pretty-printed
// JSON document per normalized topic, mapping arXiv paper IDs to records.
package papers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CacheState reports what Load found on disk.
type CacheState int

const (
	// CacheOK means the cache file existed and parsed.
	CacheOK CacheState = iota
	// CacheMissing means no cache file exists for the topic.
	CacheMissing
	// CacheCorrupt means the file exists but is not a valid JSON object.
	// Readers treat it the same as missing; the next Save replaces it.
	CacheCorrupt
)

// Store reads and writes per-topic paper caches under a single root
// directory. The root is injected so tests can point it at a temp dir.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on first Save; a missing root just means no topics exist yet.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the cache root directory.
func (s *Store) Root() string {
	return s.root
}

// NormalizeTopic derives the filesystem-safe directory name for a topic:
// lower-cased with spaces replaced by underscores. Two topics that
// normalize identically share a cache; that collision is accepted.
func NormalizeTopic(topic string) string {
	return strings.ReplaceAll(strings.ToLower(topic), " ", "_")
}

// cachePath returns the papers_info.json path for a normalized topic.
func (s *Store) cachePath(topic string) string {
	return filepath.Join(s.root, NormalizeTopic(topic), CacheFileName)
}

// Load returns the persisted paper mapping for a topic. A missing or
// unparsable cache file degrades to an empty map and is reported via the
// CacheState; it is never surfaced as an error.
func (s *Store) Load(topic string) (map[string]Paper, CacheState) {
	data, err := os.ReadFile(s.cachePath(topic))
	if err != nil {
		return map[string]Paper{}, CacheMissing
	}

	var info map[string]Paper
	if err := json.Unmarshal(data, &info); err != nil || info == nil {
		return map[string]Paper{}, CacheCorrupt
	}
	return info, CacheOK
}

// Save writes the full mapping for a topic, replacing any existing file.
// Unlike reads, write failures propagate: a failed persist after a
// successful fetch is an environment fault, not a normal state.
func (s *Store) Save(topic string, info map[string]Paper) error {
	dir := filepath.Join(s.root, NormalizeTopic(topic))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create topic directory: %w", err)
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("encode papers info: %w", err)
	}

	path := filepath.Join(dir, CacheFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Topics lists the topic directories that contain a cache file, in
// directory enumeration order.
func (s *Store) Topics() []string {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil
	}

	var topics []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cache := filepath.Join(s.root, entry.Name(), CacheFileName)
		if _, err := os.Stat(cache); err == nil {
			topics = append(topics, entry.Name())
		}
	}
	return topics
}

// ExtractInfo scans every topic cache for a paper ID and returns the
// record as indented JSON, or the not-found sentinel. The first topic
// containing the ID wins; duplicates across topics are not reconciled
// beyond enumeration order.
func (s *Store) ExtractInfo(paperID string) string {
	for _, topic := range s.Topics() {
		info, state := s.Load(topic)
		if state != CacheOK {
			continue
		}
		if paper, ok := info[paperID]; ok {
			data, err := json.MarshalIndent(paper, "", "  ")
			if err != nil {
				continue
			}
			return string(data)
		}
	}
	return fmt.Sprintf("There's no saved information related to paper %s.", paperID)
}

// Health verifies the cache root is usable, creating it if absent.
// Used by the /health endpoint.
func (s *Store) Health(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("cache root unavailable: %w", err)
	}
	return nil
}
