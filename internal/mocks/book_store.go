package mocks

import (
	"context"
	"sort"

	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/store"
)

// MockBookStore implements store.BookStore for testing.
type MockBookStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]domain.Book, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Book, error)
	CreateFn  func(ctx context.Context, book *domain.Book) error
	UpdateFn  func(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error)
	DeleteFn  func(ctx context.Context, id int64) (*domain.Book, error)

	// Data for the default implementation
	Books  map[int64]*domain.Book
	NextID int64
}

// Ensure MockBookStore implements store.BookStore interface
var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates a new mock store with initialized defaults.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		Books:  make(map[int64]*domain.Book),
		NextID: 1,
	}
}

// List implements the BookStore interface.
func (m *MockBookStore) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	books := make([]domain.Book, 0, len(m.Books))
	for _, b := range m.Books {
		books = append(books, *b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}

// GetByID implements the BookStore interface.
func (m *MockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	book, ok := m.Books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	copied := *book
	return &copied, nil
}

// Create implements the BookStore interface.
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}

	if err := book.Validate(); err != nil {
		return err
	}

	book.ID = m.NextID
	m.NextID++
	copied := *book
	m.Books[book.ID] = &copied
	return nil
}

// Update implements the BookStore interface.
func (m *MockBookStore) Update(
	ctx context.Context,
	id int64,
	patch domain.BookPatch,
) (*domain.Book, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	book, ok := m.Books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	patch.Apply(book)
	copied := *book
	return &copied, nil
}

// Delete implements the BookStore interface.
func (m *MockBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	book, ok := m.Books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	delete(m.Books, id)
	return book, nil
}
