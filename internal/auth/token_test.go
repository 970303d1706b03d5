// ABOUTME: Unit tests for JWT issuance and verification
// ABOUTME: Covers round-trips, wrong secrets, expiry, and missing configuration

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/2389/persona-gateway/internal/store"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret-key-for-jwt-signing")

	user := &store.User{ID: "user-123", Email: "alice@example.com", IsAdmin: true}
	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if identity.ID != user.ID {
		t.Errorf("identity.ID = %q, want %q", identity.ID, user.ID)
	}
	if identity.Email != user.Email {
		t.Errorf("identity.Email = %q, want %q", identity.Email, user.Email)
	}
	if !identity.IsAdmin {
		t.Error("identity.IsAdmin = false, want true")
	}
}

func TestTokenService_NonAdminRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret-key-for-jwt-signing")

	token, err := svc.Issue(&store.User{ID: "user-456", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity.IsAdmin {
		t.Error("identity.IsAdmin = true, want false")
	}
}

func TestTokenService_InvalidTokens(t *testing.T) {
	svc := NewTokenService("test-secret-key-for-jwt-signing")

	otherSvc := NewTokenService("a-completely-different-secret")
	foreignToken, err := otherSvc.Issue(&store.User{ID: "user-123", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-jwt-token"},
		{name: "malformed JWT", token: "header.payload.signature"},
		{name: "wrong secret", token: foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			if err == nil {
				t.Fatal("Verify() should have returned an error")
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	secret := "test-secret-key-for-jwt-signing"
	svc := NewTokenService(secret)

	// Hand-craft a token that expired an hour ago
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   "user-123",
		"email": "alice@example.com",
		"admin": false,
		"iat":   now.Add(-8 * 24 * time.Hour).Unix(),
		"exp":   now.Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	_, err = svc.Verify(expired)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestTokenService_MissingSubClaim(t *testing.T) {
	secret := "test-secret-key-for-jwt-signing"
	svc := NewTokenService(secret)

	claims := jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrMissingClaim) {
		t.Errorf("Verify() error = %v, want ErrMissingClaim", err)
	}
}

func TestTokenService_NoSecret(t *testing.T) {
	svc := NewTokenService("")

	_, err := svc.Issue(&store.User{ID: "u", Email: "a@b.c"})
	if !errors.Is(err, ErrNoSecret) {
		t.Errorf("Issue() error = %v, want ErrNoSecret", err)
	}

	_, err = svc.Verify("anything")
	if !errors.Is(err, ErrNoSecret) {
		t.Errorf("Verify() error = %v, want ErrNoSecret", err)
	}
}
