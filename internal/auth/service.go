// ABOUTME: Registration and login flows built on the user store and token service
// ABOUTME: Validates input, hashes passwords with bcrypt, issues bearer tokens

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/2389/persona-gateway/internal/store"
)

// Flow errors
var (
	ErrInvalidInput  = errors.New("invalid email or password")
	ErrAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// bcryptCost matches the work factor the rest of the deployment was
// provisioned for.
const bcryptCost = 10

// Service orchestrates registration and login.
type Service struct {
	users  *store.UserStore
	tokens *TokenService
}

// NewService creates an auth service over the given user store and token
// service.
func NewService(users *store.UserStore, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a new account and returns a signed token for it.
// Fails with ErrInvalidInput on a malformed email or short password, and
// ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	if !validEmail(email) || len(password) < 6 {
		return "", ErrInvalidInput
	}

	user := &store.User{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(email),
		IsAdmin:   false,
		CreatedAt: time.Now().UTC(),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	user.PasswordHash = string(hash)

	// Uniqueness check and append are one serialized store operation; a
	// lookup-then-append here would race with concurrent registrations.
	if err := s.users.AppendIfAbsent(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return "", ErrAlreadyExists
		}
		return "", err
	}

	return s.tokens.Issue(user)
}

// Login verifies credentials and returns a signed token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if !validEmail(email) || password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user)
}

func validEmail(email string) bool {
	return strings.Contains(email, "@")
}
