// ABOUTME: Shared data types and errors for persona-gateway persistence
// ABOUTME: Defines User, FactsDocument, PhraseMemoryDocument and store errors

package store

import (
	"errors"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when appending a user whose email is already taken
var ErrDuplicateEmail = errors.New("email already registered")

// ErrCorrupt is returned when the users document exists but cannot be parsed.
// Facts and phrase memory deliberately do NOT use this error; they recover to
// an empty document instead so a bad file never locks the persona out of its
// style data.
var ErrCorrupt = errors.New("store document corrupt")

// User is a registered account. Records are append-only: never mutated or
// deleted once written.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MaxFacts caps the fact list to keep prompts bounded
const MaxFacts = 100

// FactsDocument is the persisted persona fact list. Facts are ordered
// newest-first, unique by exact text, non-empty, and capped at MaxFacts.
type FactsDocument struct {
	Version   int      `json:"version"`
	UpdatedAt string   `json:"updatedAt"`
	Facts     []string `json:"facts"`
}

// PhraseMemoryDocument is the persisted phrase-usage frequency table. The
// usage map keeps insertion order so count ties rank by first-seen phrase.
type PhraseMemoryDocument struct {
	PhraseUsage *orderedmap.OrderedMap[string, int] `json:"phrase_usage"`
	LastUpdated string                              `json:"last_updated"`
}

// MemorySnapshot is the read-side view of phrase memory handed to prompt
// assembly: the most-used phrases in descending count order.
type MemorySnapshot struct {
	TopPhrases  []string `json:"top_phrases"`
	LastUpdated string   `json:"last_updated"`
}
