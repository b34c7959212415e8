package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/hazelbrook/bookshelf-api/internal/config"
	"github.com/hazelbrook/bookshelf-api/internal/platform/postgres"
	"github.com/hazelbrook/bookshelf-api/internal/service/auth"
	"github.com/hazelbrook/bookshelf-api/internal/store"
)

// application bundles the wired dependencies of a running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	bookStore     store.BookStore
	userStore     store.UserStore
	favoriteStore store.FavoriteStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication establishes the database connection, runs migrations,
// and wires stores and services together.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*application, error) {
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		bookStore:        postgres.NewPostgresBookStore(db, logger),
		userStore:        postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger),
		favoriteStore:    postgres.NewPostgresFavoriteStore(db, logger),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// tokenLifetime returns the configured session token lifetime.
func (app *application) tokenLifetime() time.Duration {
	return time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", "error", err)
	}
}
