// ABOUTME: HTTP server assembly for persona-gateway
// ABOUTME: Wires stores, auth gates, and model client into routes

package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/2389/persona-gateway/internal/auth"
	"github.com/2389/persona-gateway/internal/config"
	"github.com/2389/persona-gateway/internal/persona"
	"github.com/2389/persona-gateway/internal/store"
)

// ModelClient is the model-side dependency of the gateway. Satisfied by
// *llm.Client; handler tests substitute a stub.
type ModelClient interface {
	Answer(ctx context.Context, instructions, input string) (string, error)
	Structured(ctx context.Context, instructions, input, schemaName string, schema map[string]any) (string, error)
}

// Gateway owns the HTTP surface: auth routes, fact administration, and the
// model-backed ask/interpret endpoints.
type Gateway struct {
	cfg     *config.Config
	logger  *slog.Logger
	tokens  *auth.TokenService
	authSvc *auth.Service
	facts   *store.FactStore
	phrases *store.PhraseStore
	model   ModelClient
	profile *persona.Profile
}

// New creates a gateway over the given stores and model client.
func New(cfg *config.Config, logger *slog.Logger, users *store.UserStore, facts *store.FactStore, phrases *store.PhraseStore, model ModelClient) *Gateway {
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)
	return &Gateway{
		cfg:     cfg,
		logger:  logger.With("component", "gateway"),
		tokens:  tokens,
		authSvc: auth.NewService(users, tokens),
		facts:   facts,
		phrases: phrases,
		model:   model,
		profile: &persona.Default,
	}
}

// Handler builds the route table. Every store-touching route sits behind
// RequireAuth; fact mutation additionally behind RequireAdmin.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()

	requireAuth := auth.RequireAuth(g.tokens)
	requireAdmin := func(h http.HandlerFunc) http.Handler {
		return requireAuth(auth.RequireAdmin()(h))
	}

	mux.HandleFunc("GET /{$}", g.handleRoot)

	mux.HandleFunc("POST /auth/register", g.handleRegister)
	mux.HandleFunc("POST /auth/login", g.handleLogin)
	mux.Handle("GET /auth/me", requireAuth(http.HandlerFunc(g.handleMe)))

	mux.Handle("GET /facts", requireAdmin(g.handleFactsGet))
	mux.Handle("PUT /facts", requireAdmin(g.handleFactsReplace))
	mux.Handle("POST /facts", requireAdmin(g.handleFactsAdd))
	mux.Handle("DELETE /facts", requireAdmin(g.handleFactsRemove))

	mux.Handle("POST /ask", requireAuth(http.HandlerFunc(g.handleAsk)))
	mux.Handle("POST /interpret", requireAuth(http.HandlerFunc(g.handleInterpret)))

	return mux
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (g *Gateway) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              g.cfg.Server.HTTPAddr,
		Handler:           g.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		g.logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	g.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (g *Gateway) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("persona-gateway backend is running\n"))
}
