package store

import (
	"context"

	"github.com/hazelbrook/bookshelf-api/internal/domain"
)

// FavoriteStore defines the interface for favorites persistence.
// The userID argument of every method is the authenticated identity
// extracted from the verified token; implementations scope all reads
// and writes to that user.
type FavoriteStore interface {
	// ListByUser returns all favorites belonging to the user, joined
	// with their books, ordered by book title ascending.
	ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteBook, error)

	// Exists reports whether a favorite exists for the (user, book) pair.
	Exists(ctx context.Context, userID, bookID int64) (bool, error)

	// Create inserts a new favorite and assigns its ID.
	// Returns ErrFavoriteExists if the pair is already favorited.
	// Returns ErrInvalidEntity if the referenced book or user is absent.
	Create(ctx context.Context, favorite *domain.Favorite) error

	// Delete removes exactly the one favorite matching the pair and
	// returns the removed record. Other users' favorites are never
	// touched. Returns ErrFavoriteNotFound if no such favorite exists.
	Delete(ctx context.Context, userID, bookID int64) (*domain.Favorite, error)
}
