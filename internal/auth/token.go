// ABOUTME: JWT issuance and verification for persona-gateway users
// ABOUTME: HS256 tokens carrying subject id, email, and admin flag

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/2389/persona-gateway/internal/store"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")

	// ErrNoSecret means the server has no signing secret configured. This is
	// a deployment problem, not a caller problem: handlers map it to 500.
	ErrNoSecret = errors.New("jwt secret not configured")
)

// TokenTTL is how long issued tokens stay valid. There is no server-side
// revocation; a logged-out client simply discards its token.
const TokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service signing with the given secret.
// An empty secret is allowed at construction so the server can still boot
// and serve unauthenticated routes; Issue and Verify fail with ErrNoSecret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue creates a signed token for the user, valid for TokenTTL.
func (s *TokenService) Issue(user *store.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"admin": user.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the token and extracts the caller's identity. Malformed
// tokens, bad signatures, and wrong algorithms all come back as
// ErrInvalidToken; elapsed expiry as ErrExpiredToken.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingClaim)
	}
	isAdmin, _ := claims["admin"].(bool)

	return &Identity{ID: sub, Email: email, IsAdmin: isAdmin}, nil
}
