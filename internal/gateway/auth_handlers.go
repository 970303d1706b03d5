// ABOUTME: HTTP handlers for registration, login, and identity lookup
// ABOUTME: Maps auth flow errors onto the stable status-code contract

package gateway

import (
	"errors"
	"net/http"

	"github.com/2389/persona-gateway/internal/auth"
)

// CredentialsRequest is the JSON request body for register and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the JSON response carrying a fresh bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MeResponse is the JSON response for GET /auth/me.
type MeResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func (g *Gateway) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := g.authSvc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid email or password")
		case errors.Is(err, auth.ErrAlreadyExists):
			writeError(w, http.StatusConflict, "user already exists")
		default:
			g.logger.Error("register failed", "error", err)
			writeError(w, http.StatusInternalServerError, "register failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (g *Gateway) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := g.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "invalid email or password")
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			g.logger.Error("login failed", "error", err)
			writeError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (g *Gateway) handleMe(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, MeResponse{
		ID:      identity.ID,
		Email:   identity.Email,
		IsAdmin: identity.IsAdmin,
	})
}
