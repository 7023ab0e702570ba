// Copyright (c) 2026 Linkstash. All rights reserved.

// Command api runs the Linkstash HTTP server.
//
// Startup order matters: configuration, storage, migrations, token service,
// then the HTTP surface. Any failure before the listener opens aborts the
// process with a non-zero exit.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tdvu/linkstash/internal/api"
	"github.com/tdvu/linkstash/internal/core/bookmark"
	"github.com/tdvu/linkstash/internal/platform/config"
	"github.com/tdvu/linkstash/internal/platform/constants"
	"github.com/tdvu/linkstash/internal/platform/migration"
	"github.com/tdvu/linkstash/internal/platform/postgres"
	redisplatform "github.com/tdvu/linkstash/internal/platform/redis"
	"github.com/tdvu/linkstash/internal/platform/sec"
	"github.com/tdvu/linkstash/internal/users/account"
	"github.com/tdvu/linkstash/internal/users/auth"
)

func main() {
	// ── 1. Logging ────────────────────────────────────────────────────────
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(logger)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fatal(logger, "config_load_failed", err)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})).With(slog.String("app", constants.AppName))
		slog.SetDefault(logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 3. Storage ────────────────────────────────────────────────────────
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		fatal(logger, "postgres_connect_failed", err)
	}
	defer pool.Close()

	redisClient, err := redisplatform.NewClient(ctx, cfg.RedisURL, logger)
	if err != nil {
		fatal(logger, "redis_connect_failed", err)
	}
	defer func() { _ = redisClient.Close() }()

	// ── 4. Schema migrations ──────────────────────────────────────────────
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		fatal(logger, "migration_failed", err)
	}

	// ── 5. Token service ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	if err != nil {
		fatal(logger, "token_service_init_failed", err)
	}

	// ── 6. Domain wiring ──────────────────────────────────────────────────
	authService := auth.NewService(
		auth.NewPostgresAccountRepository(pool),
		auth.NewRedisLoginThrottle(redisClient),
		tokens,
	)
	accountService := account.NewService(account.NewPostgresRepository(pool))
	bookmarkService := bookmark.NewService(bookmark.NewPostgresRepository(pool))

	handlers := api.Handlers{
		Auth:     auth.NewHandler(authService),
		Account:  account.NewHandler(accountService),
		Bookmark: bookmark.NewHandler(bookmarkService),
	}

	health := api.NewHealthHandler(map[string]api.DependencyCheck{
		"postgres": func(ctx context.Context) error { return postgres.Ping(ctx, pool) },
		"redis":    func(ctx context.Context) error { return redisplatform.Ping(ctx, redisClient) },
	})

	// ── 7. HTTP server ────────────────────────────────────────────────────
	server := api.NewServer(ctx, cfg, tokens, handlers, health, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// ── 8. Wait for shutdown signal or server failure ─────────────────────
	select {
	case err := <-serverErrors:
		if err != nil {
			fatal(logger, "http_server_failed", err)
		}
	case <-ctx.Done():
		stop()
		if err := server.Shutdown(context.Background()); err != nil {
			fatal(logger, "http_server_shutdown_failed", err)
		}
	}

	logger.Info("server_stopped")
}

// fatal logs the error and exits. Deferred cleanups do not run; at this point
// nothing has been served yet or the process is beyond saving.
func fatal(logger *slog.Logger, event string, err error) {
	logger.Error(event, slog.Any("error", err))
	os.Exit(1)
}
