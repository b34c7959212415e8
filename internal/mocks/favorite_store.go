package mocks

import (
	"context"
	"sort"

	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/store"
)

// pair identifies a favorite by its owning user and book.
type pair struct {
	userID int64
	bookID int64
}

// MockFavoriteStore implements store.FavoriteStore for testing.
type MockFavoriteStore struct {
	// Function fields for customizable behavior
	ListByUserFn func(ctx context.Context, userID int64) ([]domain.FavoriteBook, error)
	ExistsFn     func(ctx context.Context, userID, bookID int64) (bool, error)
	CreateFn     func(ctx context.Context, favorite *domain.Favorite) error
	DeleteFn     func(ctx context.Context, userID, bookID int64) (*domain.Favorite, error)

	// Data for the default implementation
	Favorites map[pair]*domain.Favorite
	Books     map[int64]*domain.Book
	NextID    int64

	// Calls records which methods were invoked, for asserting that the
	// auth gate short-circuits before any store access.
	Calls []string
}

// Ensure MockFavoriteStore implements store.FavoriteStore interface
var _ store.FavoriteStore = (*MockFavoriteStore)(nil)

// NewMockFavoriteStore creates a new mock store with initialized defaults.
func NewMockFavoriteStore() *MockFavoriteStore {
	return &MockFavoriteStore{
		Favorites: make(map[pair]*domain.Favorite),
		Books:     make(map[int64]*domain.Book),
		NextID:    1,
	}
}

// ListByUser implements the FavoriteStore interface.
func (m *MockFavoriteStore) ListByUser(
	ctx context.Context,
	userID int64,
) ([]domain.FavoriteBook, error) {
	m.Calls = append(m.Calls, "ListByUser")
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	favorites := []domain.FavoriteBook{}
	for p, fav := range m.Favorites {
		if p.userID != userID {
			continue
		}
		entry := domain.FavoriteBook{
			ID:     fav.ID,
			UserID: fav.UserID,
			BookID: fav.BookID,
		}
		if book, ok := m.Books[fav.BookID]; ok {
			entry.Title = book.Title
			entry.Author = book.Author
			entry.Genre = book.Genre
			entry.Description = book.Description
			entry.CoverURL = book.CoverURL
		}
		favorites = append(favorites, entry)
	}
	sort.Slice(favorites, func(i, j int) bool { return favorites[i].Title < favorites[j].Title })
	return favorites, nil
}

// Exists implements the FavoriteStore interface.
func (m *MockFavoriteStore) Exists(ctx context.Context, userID, bookID int64) (bool, error) {
	m.Calls = append(m.Calls, "Exists")
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, userID, bookID)
	}

	_, ok := m.Favorites[pair{userID, bookID}]
	return ok, nil
}

// Create implements the FavoriteStore interface.
func (m *MockFavoriteStore) Create(ctx context.Context, favorite *domain.Favorite) error {
	m.Calls = append(m.Calls, "Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, favorite)
	}

	if err := favorite.Validate(); err != nil {
		return err
	}

	key := pair{favorite.UserID, favorite.BookID}
	if _, exists := m.Favorites[key]; exists {
		return store.ErrFavoriteExists
	}

	favorite.ID = m.NextID
	m.NextID++
	copied := *favorite
	m.Favorites[key] = &copied
	return nil
}

// Delete implements the FavoriteStore interface.
func (m *MockFavoriteStore) Delete(
	ctx context.Context,
	userID, bookID int64,
) (*domain.Favorite, error) {
	m.Calls = append(m.Calls, "Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, bookID)
	}

	key := pair{userID, bookID}
	favorite, ok := m.Favorites[key]
	if !ok {
		return nil, store.ErrFavoriteNotFound
	}
	delete(m.Favorites, key)
	return favorite, nil
}
