// ABOUTME: File-backed phrase-usage store biasing casual-mode style
// ABOUTME: Frequency table with ordered keys, lenient reads, atomic writes

package store

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultTopPhrases is how many phrases a snapshot surfaces by default
const DefaultTopPhrases = 8

// PhraseStore persists the persona's phrase-usage counts as a single JSON
// document. Like the fact store it reads leniently: missing or corrupt
// files become the empty document. Counts only reset when the file is
// deleted out-of-band; there is no deletion path in the API.
type PhraseStore struct {
	mu   sync.Mutex
	path string

	now func() time.Time
}

// NewPhraseStore creates a phrase store backed by the JSON document at path.
func NewPhraseStore(path string) *PhraseStore {
	return &PhraseStore{path: path, now: time.Now}
}

// RecordUsage increments the counter for each phrase in the input, once per
// occurrence: duplicates in the list count multiple times. One persist per
// call.
func (s *PhraseStore) RecordUsage(ctx context.Context, phrases []string) error {
	if len(phrases) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()
	for _, p := range phrases {
		count, _ := doc.PhraseUsage.Get(p)
		doc.PhraseUsage.Set(p, count+1)
	}
	doc.LastUpdated = s.now().UTC().Format(time.RFC3339)

	return writeJSONAtomic(s.path, doc)
}

// TopSnapshot returns up to n phrases ordered by descending count, ties
// ranked by the order each phrase first entered the document. n <= 0 uses
// DefaultTopPhrases.
func (s *PhraseStore) TopSnapshot(ctx context.Context, n int) MemorySnapshot {
	if n <= 0 {
		n = DefaultTopPhrases
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read()

	type entry struct {
		phrase string
		count  int
	}
	entries := make([]entry, 0, doc.PhraseUsage.Len())
	for pair := doc.PhraseUsage.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, entry{phrase: pair.Key, count: pair.Value})
	}

	// Stable sort keeps first-seen order among equal counts
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	top := make([]string, len(entries))
	for i, e := range entries {
		top[i] = e.phrase
	}

	return MemorySnapshot{TopPhrases: top, LastUpdated: doc.LastUpdated}
}

// read loads the document leniently. Caller must hold s.mu.
func (s *PhraseStore) read() PhraseMemoryDocument {
	def := PhraseMemoryDocument{
		PhraseUsage: orderedmap.New[string, int](),
		LastUpdated: "",
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return def
	}

	var doc PhraseMemoryDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return def
	}
	if doc.PhraseUsage == nil {
		doc.PhraseUsage = orderedmap.New[string, int]()
	}
	return doc
}
