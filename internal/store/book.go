package store

import (
	"context"

	"github.com/hazelbrook/bookshelf-api/internal/domain"
)

// BookStore defines the interface for catalog persistence.
type BookStore interface {
	// List returns all books ordered by title ascending.
	// Returns an empty slice when the catalog is empty.
	List(ctx context.Context) ([]domain.Book, error)

	// GetByID retrieves a single book by its ID.
	// Returns ErrBookNotFound if no book matches.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// Create validates and inserts a new book, assigning its ID.
	// Returns a domain validation error if any attribute is blank.
	Create(ctx context.Context, book *domain.Book) error

	// Update applies a partial update to an existing book and returns
	// the updated row. Only non-empty patch fields replace stored
	// values. Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error)

	// Delete removes a book by ID and returns the record that existed.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id int64) (*domain.Book, error)
}
