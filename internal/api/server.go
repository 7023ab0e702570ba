// Copyright (c) 2026 Linkstash. All rights reserved.

/*
Package api assembles the HTTP surface of the Linkstash server.

It owns the router, the middleware chain, and the http.Server lifecycle.
Domain handlers are injected fully constructed; this package only decides
where they are mounted and which guards stand in front of them.

Route Map:

	POST   /auth/signup      public
	POST   /auth/login       public
	GET    /users/me         authenticated
	PATCH  /users            authenticated
	GET    /bookmarks        authenticated
	POST   /bookmarks        authenticated
	GET    /bookmarks/{id}   authenticated
	PATCH  /bookmarks/{id}   authenticated
	DELETE /bookmarks/{id}   authenticated
	GET    /health           public
	GET    /ready            public
*/
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tdvu/linkstash/internal/core/bookmark"
	"github.com/tdvu/linkstash/internal/platform/config"
	"github.com/tdvu/linkstash/internal/platform/constants"
	"github.com/tdvu/linkstash/internal/platform/middleware"
	"github.com/tdvu/linkstash/internal/users/account"
	"github.com/tdvu/linkstash/internal/users/auth"
)

// Handlers groups the domain handlers the server mounts.
type Handlers struct {
	Auth     *auth.Handler
	Account  *account.Handler
	Bookmark *bookmark.Handler
}

// Server wraps the http.Server with its router and lifecycle management.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the fully wired HTTP server.
//
// # Parameters
//   - ctx: Application-lifetime context; cancelling it stops background
//     middleware goroutines.
//   - cfg: Runtime configuration.
//   - verifier: Token verifier backing the authentication guard.
//   - handlers: Constructed domain handlers.
//   - health: Liveness/readiness handler.
//   - logger: Root structured logger.
func NewServer(
	ctx context.Context,
	cfg *config.Config,
	verifier middleware.TokenVerifier,
	handlers Handlers,
	health *HealthHandler,
	logger *slog.Logger,
) *Server {
	router := chi.NewRouter()

	// ── 1. Cross-cutting middleware, outermost first ──────────────────────
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimiddleware.CleanPath)
	router.Use(chimiddleware.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(ctx))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Authenticate(verifier))

	// ── 2. Public surface ─────────────────────────────────────────────────
	router.Get("/health", health.Liveness)
	router.Get("/ready", health.Readiness)
	router.Mount("/auth", handlers.Auth.Routes())

	// ── 3. Authenticated surface ──────────────────────────────────────────
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Mount("/users", handlers.Account.Routes())
		protected.Mount("/bookmarks", handlers.Bookmark.Routes())
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
		},
		logger: logger,
	}
}

// Start begins serving and blocks until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("http_server_started", slog.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, constants.ShutdownTimeout)
	defer cancel()

	s.logger.Info("http_server_stopping",
		slog.Duration("grace_period", constants.ShutdownTimeout))

	return s.httpServer.Shutdown(shutdownCtx)
}

// Handler exposes the underlying router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
