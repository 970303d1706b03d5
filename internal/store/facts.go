// ABOUTME: File-backed fact store for persona core memories
// ABOUTME: Newest-first list, deduplicated, capped, lenient on corrupt reads

package store

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"
)

// FactStore persists the persona's fact list as a single JSON document.
// Reads never fail: a missing or unparseable file yields the empty default
// document so the prompt pipeline keeps working.
type FactStore struct {
	mu   sync.Mutex
	path string

	// now is swappable for tests
	now func() time.Time
}

// NewFactStore creates a fact store backed by the JSON document at path.
func NewFactStore(path string) *FactStore {
	return &FactStore{path: path, now: time.Now}
}

// Snapshot returns the current facts document. Missing or corrupt files
// yield the empty default rather than an error.
func (s *FactStore) Snapshot(ctx context.Context) FactsDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Replace normalizes the candidate list and persists it wholesale: entries
// are trimmed, empties dropped, duplicates removed keeping the first
// occurrence, and the result truncated to MaxFacts in input order.
func (s *FactStore) Replace(ctx context.Context, facts []string) (FactsDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(facts)
}

// Add prepends a fact. An empty (post-trim) fact is a no-op; a fact already
// present verbatim leaves the order untouched. Because new facts go to the
// front, the cap evicts from the tail: the oldest-positioned entries fall
// off when the list is full.
func (s *FactStore) Add(ctx context.Context, fact string) (FactsDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	f := strings.TrimSpace(fact)
	if f == "" {
		return doc, nil
	}

	for _, existing := range doc.Facts {
		if existing == f {
			return s.replaceLocked(doc.Facts)
		}
	}

	return s.replaceLocked(append([]string{f}, doc.Facts...))
}

// Remove drops every entry exactly equal to the trimmed fact text.
func (s *FactStore) Remove(ctx context.Context, fact string) (FactsDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	f := strings.TrimSpace(fact)

	kept := make([]string, 0, len(doc.Facts))
	for _, existing := range doc.Facts {
		if existing != f {
			kept = append(kept, existing)
		}
	}

	return s.replaceLocked(kept)
}

// replaceLocked is the sole mutation primitive. Caller must hold s.mu.
func (s *FactStore) replaceLocked(facts []string) (FactsDocument, error) {
	cleaned := make([]string, 0, len(facts))
	seen := make(map[string]struct{}, len(facts))
	for _, f := range facts {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		cleaned = append(cleaned, f)
		if len(cleaned) == MaxFacts {
			break
		}
	}

	doc := FactsDocument{
		Version:   1,
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
		Facts:     cleaned,
	}

	if err := writeJSONAtomic(s.path, doc); err != nil {
		return FactsDocument{}, err
	}
	return doc, nil
}

// read loads the document leniently. Caller must hold s.mu.
func (s *FactStore) read() FactsDocument {
	def := FactsDocument{Version: 1, UpdatedAt: "", Facts: []string{}}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return def
	}

	var doc FactsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return def
	}

	if doc.Version == 0 {
		doc.Version = 1
	}
	if doc.Facts == nil {
		doc.Facts = []string{}
	}
	return doc
}
