package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/platform/logger"
	"github.com/hazelbrook/bookshelf-api/internal/store"
)

// PostgresFavoriteStore implements the store.FavoriteStore interface
// using a PostgreSQL database as the storage backend.
//
// Every statement is scoped by user_id so one user's operations can
// never observe or modify another user's favorites.
type PostgresFavoriteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFavoriteStore creates a new PostgreSQL implementation of
// the FavoriteStore interface. If logger is nil, the default logger is
// used.
func NewPostgresFavoriteStore(db store.DBTX, log *slog.Logger) *PostgresFavoriteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresFavoriteStore{
		db:     db,
		logger: log.With(slog.String("component", "favorite_store")),
	}
}

// Ensure PostgresFavoriteStore implements store.FavoriteStore interface
var _ store.FavoriteStore = (*PostgresFavoriteStore)(nil)

// ListByUser implements store.FavoriteStore.ListByUser
// It returns the user's favorites inner-joined with books, ordered by
// book title ascending.
func (s *PostgresFavoriteStore) ListByUser(
	ctx context.Context,
	userID int64,
) ([]domain.FavoriteBook, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT f.id, f.user_id, f.book_id,
		       b.title, b.author, b.genre, b.description, b.cover_url
		FROM favorites f
		INNER JOIN books b ON b.id = f.book_id
		WHERE f.user_id = $1
		ORDER BY b.title ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list favorites",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var favorites []domain.FavoriteBook
	for rows.Next() {
		var fav domain.FavoriteBook
		err := rows.Scan(
			&fav.ID,
			&fav.UserID,
			&fav.BookID,
			&fav.Title,
			&fav.Author,
			&fav.Genre,
			&fav.Description,
			&fav.CoverURL,
		)
		if err != nil {
			log.Error("failed to scan favorite row", slog.String("error", err.Error()))
			return nil, err
		}
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if favorites == nil {
		favorites = []domain.FavoriteBook{}
	}

	log.Debug("listed favorites",
		slog.Int64("user_id", userID),
		slog.Int("count", len(favorites)))
	return favorites, nil
}

// Exists implements store.FavoriteStore.Exists
// It reports whether a favorite exists for the (user, book) pair.
func (s *PostgresFavoriteStore) Exists(ctx context.Context, userID, bookID int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND book_id = $2)`,
		userID, bookID,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check favorite existence",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("book_id", bookID))
		return false, MapError(err)
	}

	return exists, nil
}

// Create implements store.FavoriteStore.Create
// The unique constraint on (user_id, book_id) is the authoritative
// duplicate check. Returns store.ErrFavoriteExists when the pair is
// already favorited and store.ErrInvalidEntity when the referenced
// book or user does not exist.
func (s *PostgresFavoriteStore) Create(ctx context.Context, favorite *domain.Favorite) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := favorite.Validate(); err != nil {
		log.Warn("favorite validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO favorites (user_id, book_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, favorite.UserID, favorite.BookID).
		Scan(&favorite.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("favorite already exists",
				slog.Int64("user_id", favorite.UserID),
				slog.Int64("book_id", favorite.BookID))
			return fmt.Errorf("%w: %v", store.ErrFavoriteExists, err)
		}
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during favorite creation",
				slog.Int64("user_id", favorite.UserID),
				slog.Int64("book_id", favorite.BookID))
			return fmt.Errorf("%w: book with ID %d not found",
				store.ErrInvalidEntity, favorite.BookID)
		}
		log.Error("failed to create favorite",
			slog.String("error", err.Error()),
			slog.Int64("user_id", favorite.UserID),
			slog.Int64("book_id", favorite.BookID))
		return MapError(err)
	}

	log.Info("favorite created",
		slog.Int64("favorite_id", favorite.ID),
		slog.Int64("user_id", favorite.UserID),
		slog.Int64("book_id", favorite.BookID))
	return nil
}

// Delete implements store.FavoriteStore.Delete
// It removes exactly the one row matching (userID, bookID) and returns
// the removed record. Returns store.ErrFavoriteNotFound if no such
// favorite exists.
func (s *PostgresFavoriteStore) Delete(
	ctx context.Context,
	userID, bookID int64,
) (*domain.Favorite, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND book_id = $2
		RETURNING id, user_id, book_id
	`

	var favorite domain.Favorite
	err := s.db.QueryRowContext(ctx, query, userID, bookID).Scan(
		&favorite.ID,
		&favorite.UserID,
		&favorite.BookID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("favorite not found for delete",
				slog.Int64("user_id", userID),
				slog.Int64("book_id", bookID))
			return nil, store.ErrFavoriteNotFound
		}
		log.Error("failed to delete favorite",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("book_id", bookID))
		return nil, MapError(err)
	}

	log.Info("favorite deleted",
		slog.Int64("favorite_id", favorite.ID),
		slog.Int64("user_id", userID),
		slog.Int64("book_id", bookID))
	return &favorite, nil
}
