package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/platform/logger"
	"github.com/hazelbrook/bookshelf-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface using a
// PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the
// BookStore interface. It accepts a database connection or transaction
// managed by the caller. If logger is nil, the default logger is used.
func NewPostgresBookStore(db store.DBTX, log *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: log.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// List implements store.BookStore.List
// It returns all books ordered by title ascending.
func (s *PostgresBookStore) List(ctx context.Context) ([]domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, genre, description, cover_url
		FROM books
		ORDER BY title ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list books", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var books []domain.Book
	for rows.Next() {
		var book domain.Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Genre,
			&book.Description,
			&book.CoverURL,
		)
		if err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil when the catalog is empty
	if books == nil {
		books = []domain.Book{}
	}

	log.Debug("listed books", slog.Int("count", len(books)))
	return books, nil
}

// GetByID implements store.BookStore.GetByID
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, genre, description, cover_url
		FROM books
		WHERE id = $1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Genre,
		&book.Description,
		&book.CoverURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return nil, err
	}

	return &book, nil
}

// Create implements store.BookStore.Create
// It validates the book and inserts it, assigning the store ID.
// Returns validation errors from the domain Book if data is invalid.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO books (title, author, genre, description, cover_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.Genre,
		book.Description,
		book.CoverURL,
	).Scan(&book.ID)
	if err != nil {
		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("title", book.Title))
		return MapError(err)
	}

	log.Info("book created",
		slog.Int64("book_id", book.ID),
		slog.String("title", book.Title))
	return nil
}

// Update implements store.BookStore.Update
// It loads the current row, merges the non-empty patch fields into it,
// and writes the result back. An empty patch field leaves the stored
// value unchanged. Returns store.ErrBookNotFound if the book is absent.
func (s *PostgresBookStore) Update(
	ctx context.Context,
	id int64,
	patch domain.BookPatch,
) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(book)

	query := `
		UPDATE books
		SET title = $1, author = $2, genre = $3, description = $4, cover_url = $5
		WHERE id = $6
		RETURNING id, title, author, genre, description, cover_url
	`

	var updated domain.Book
	err = s.db.QueryRowContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.Genre,
		book.Description,
		book.CoverURL,
		id,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Author,
		&updated.Genre,
		&updated.Description,
		&updated.CoverURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Deleted between the read and the write.
			log.Debug("book not found for update", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return nil, MapError(err)
	}

	log.Info("book updated", slog.Int64("book_id", id))
	return &updated, nil
}

// Delete implements store.BookStore.Delete
// It removes the book and returns the record that existed.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM books
		WHERE id = $1
		RETURNING id, title, author, genre, description, cover_url
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Genre,
		&book.Description,
		&book.CoverURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found for delete", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return nil, MapError(err)
	}

	log.Info("book deleted", slog.Int64("book_id", id))
	return &book, nil
}
