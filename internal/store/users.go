// ABOUTME: File-backed credential store with serialized check-then-append
// ABOUTME: Guards the email-uniqueness invariant under concurrent registration

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// UserStore persists registered users as a single JSON array document.
//
// Unlike the facts and phrase-memory stores, reads here are strict: a
// users file that exists but cannot be parsed surfaces ErrCorrupt rather
// than being treated as empty. Treating corruption as "no users" would let
// anyone re-register existing emails.
type UserStore struct {
	mu   sync.Mutex
	path string
}

// NewUserStore creates a user store backed by the JSON document at path.
// The document is created lazily on first write.
func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// FindByEmail returns the user with the given email, matched
// case-insensitively. Returns ErrNotFound if no user matches.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return nil, err
	}

	return findByEmail(users, email)
}

// AppendIfAbsent adds the user to the store unless a user with the same
// email (case-insensitive) already exists, in which case it returns
// ErrDuplicateEmail. The existence check and the append happen under one
// lock so two concurrent registrations for the same email cannot both
// succeed.
func (s *UserStore) AppendIfAbsent(ctx context.Context, user *User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return err
	}

	if _, err := findByEmail(users, user.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	users = append(users, *user)
	return writeJSONAtomic(s.path, users)
}

// readAll loads the full user list. A missing file initializes to an empty
// list; any other read or parse failure is surfaced. Caller must hold s.mu.
func (s *UserStore) readAll() ([]User, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("reading users: %w", err)
	}

	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("%w: users: %v", ErrCorrupt, err)
	}
	return users, nil
}

func findByEmail(users []User, email string) (*User, error) {
	needle := strings.ToLower(email)
	for i := range users {
		if strings.ToLower(users[i].Email) == needle {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
