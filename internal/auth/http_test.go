// ABOUTME: Tests for the RequireAuth and RequireAdmin HTTP middleware
// ABOUTME: Covers header parsing, identity propagation, and gate ordering

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/persona-gateway/internal/store"
)

func okHandler(t *testing.T, wantIdentity bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantIdentity && FromContext(r.Context()) == nil {
			t.Error("handler reached without identity in context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := NewTokenService("test-secret-key-for-jwt-signing")
	token, err := tokens.Issue(&store.User{ID: "u1", Email: "alice@example.com", IsAdmin: true})
	require.NoError(t, err)

	var captured *Identity
	handler := RequireAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "u1", captured.ID)
	assert.Equal(t, "alice@example.com", captured.Email)
	assert.True(t, captured.IsAdmin)
}

func TestRequireAuth_Rejections(t *testing.T) {
	tokens := NewTokenService("test-secret-key-for-jwt-signing")
	handler := RequireAuth(tokens)(okHandler(t, true))

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer this-is-not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestRequireAuth_NoSecretIs500(t *testing.T) {
	tokens := NewTokenService("")
	handler := RequireAuth(tokens)(okHandler(t, true))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	tokens := NewTokenService("test-secret-key-for-jwt-signing")
	token, err := tokens.Issue(&store.User{ID: "u1", Email: "admin@example.com", IsAdmin: true})
	require.NoError(t, err)

	handler := RequireAuth(tokens)(RequireAdmin()(okHandler(t, true)))

	req := httptest.NewRequest(http.MethodGet, "/facts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	tokens := NewTokenService("test-secret-key-for-jwt-signing")
	token, err := tokens.Issue(&store.User{ID: "u1", Email: "user@example.com", IsAdmin: false})
	require.NoError(t, err)

	handler := RequireAuth(tokens)(RequireAdmin()(okHandler(t, true)))

	req := httptest.NewRequest(http.MethodGet, "/facts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_WithoutAuthGate(t *testing.T) {
	// Misordered stack: RequireAdmin with no identity must 401, never panic
	handler := RequireAdmin()(okHandler(t, false))

	req := httptest.NewRequest(http.MethodGet, "/facts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
