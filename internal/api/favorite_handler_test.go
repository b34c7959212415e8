package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazelbrook/bookshelf-api/internal/api/middleware"
	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/mocks"
)

// newFavoriteRouter mounts the favorites handlers behind the real auth
// gate, backed by the mock token service.
func newFavoriteRouter(favoriteStore *mocks.MockFavoriteStore) http.Handler {
	handler := NewFavoriteHandler(favoriteStore, nil)
	gate := middleware.NewAuthMiddleware(mocks.NewMockJWTService())

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(gate.Authenticate)
		r.Get("/favorites", handler.ListFavorites)
		r.Get("/favorites/check", handler.CheckFavorite)
		r.Post("/favorites", handler.AddFavorite)
		r.Delete("/favorites", handler.RemoveFavorite)
	})
	return r
}

// asUser attaches a session cookie for the given user ID.
func asUser(userID int64) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{
			Name:  middleware.TokenCookieName,
			Value: fmt.Sprintf("mock-token-%d", userID),
		})
	}
}

func seedFavorite(t *testing.T, favoriteStore *mocks.MockFavoriteStore, userID, bookID int64) {
	t.Helper()
	require.NoError(t, favoriteStore.Create(context.Background(), &domain.Favorite{
		UserID: userID,
		BookID: bookID,
	}))
}

func TestFavoritesRequireAuthentication(t *testing.T) {
	routes := []struct {
		method string
		target string
		body   interface{}
	}{
		{http.MethodGet, "/favorites", nil},
		{http.MethodGet, "/favorites/check?bookId=1", nil},
		{http.MethodPost, "/favorites", FavoriteRequest{BookID: 1}},
		{http.MethodDelete, "/favorites", FavoriteRequest{BookID: 1}},
	}

	for _, route := range routes {
		t.Run(route.method+"_"+route.target, func(t *testing.T) {
			favoriteStore := mocks.NewMockFavoriteStore()
			router := newFavoriteRouter(favoriteStore)

			rec := doRequest(t, router, route.method, route.target, route.body)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Unauthorized", errorMessage(t, rec))
			// The gate must reject before any store access.
			assert.Empty(t, favoriteStore.Calls)
		})
	}

	t.Run("garbage_token_is_rejected_before_store", func(t *testing.T) {
		favoriteStore := mocks.NewMockFavoriteStore()
		router := newFavoriteRouter(favoriteStore)

		rec := doRequest(t, router, http.MethodGet, "/favorites", nil, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: "garbage"})
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", errorMessage(t, rec))
		assert.Empty(t, favoriteStore.Calls)
	})
}

func TestListFavorites(t *testing.T) {
	favoriteStore := mocks.NewMockFavoriteStore()
	favoriteStore.Books[3] = &domain.Book{
		ID:          3,
		Title:       "Dune",
		Author:      "Frank Herbert",
		Genre:       "SciFi",
		Description: "A desert planet",
		CoverURL:    "http://example.com/cover.jpg",
	}
	seedFavorite(t, favoriteStore, 1, 3)
	seedFavorite(t, favoriteStore, 2, 3)
	router := newFavoriteRouter(favoriteStore)

	rec := doRequest(t, router, http.MethodGet, "/favorites", nil, asUser(1))

	require.Equal(t, http.StatusOK, rec.Code)
	var favorites []domain.FavoriteBook
	decodeBody(t, rec, &favorites)

	// Only the requesting user's favorites, joined with book attributes.
	require.Len(t, favorites, 1)
	assert.Equal(t, int64(1), favorites[0].UserID)
	assert.Equal(t, int64(3), favorites[0].BookID)
	assert.Equal(t, "Dune", favorites[0].Title)
	assert.Equal(t, "Frank Herbert", favorites[0].Author)
}

func TestCheckFavorite(t *testing.T) {
	favoriteStore := mocks.NewMockFavoriteStore()
	seedFavorite(t, favoriteStore, 1, 5)
	router := newFavoriteRouter(favoriteStore)

	t.Run("favorited_book_returns_true", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/favorites/check?bookId=5", nil, asUser(1))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true\n", rec.Body.String())
	})

	t.Run("unfavorited_book_returns_false", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/favorites/check?bookId=6", nil, asUser(1))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "false\n", rec.Body.String())
	})

	t.Run("another_users_favorite_is_not_visible", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/favorites/check?bookId=5", nil, asUser(2))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "false\n", rec.Body.String())
	})

	t.Run("non_integer_book_id_returns_400", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/favorites/check?bookId=abc", nil, asUser(1))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Book ID must be an integer", errorMessage(t, rec))
	})
}

func TestAddFavorite(t *testing.T) {
	t.Run("creates_favorite_for_authenticated_user", func(t *testing.T) {
		favoriteStore := mocks.NewMockFavoriteStore()
		router := newFavoriteRouter(favoriteStore)

		rec := doRequest(t, router, http.MethodPost, "/favorites", FavoriteRequest{BookID: 3}, asUser(1))

		require.Equal(t, http.StatusOK, rec.Code)
		var favorite domain.Favorite
		decodeBody(t, rec, &favorite)
		assert.Equal(t, int64(1), favorite.ID)
		assert.Equal(t, int64(1), favorite.UserID)
		assert.Equal(t, int64(3), favorite.BookID)
	})

	t.Run("user_identity_comes_from_token_not_payload", func(t *testing.T) {
		favoriteStore := mocks.NewMockFavoriteStore()
		router := newFavoriteRouter(favoriteStore)

		rec := doRequest(t, router, http.MethodPost, "/favorites",
			`{"userId": 999, "bookId": 3}`, asUser(1))

		require.Equal(t, http.StatusOK, rec.Code)
		var favorite domain.Favorite
		decodeBody(t, rec, &favorite)
		assert.Equal(t, int64(1), favorite.UserID)
	})

	t.Run("duplicate_favorite_returns_409", func(t *testing.T) {
		favoriteStore := mocks.NewMockFavoriteStore()
		seedFavorite(t, favoriteStore, 1, 3)
		router := newFavoriteRouter(favoriteStore)

		rec := doRequest(t, router, http.MethodPost, "/favorites", FavoriteRequest{BookID: 3}, asUser(1))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Favorite already exists", errorMessage(t, rec))
	})

	t.Run("malformed_body_returns_400", func(t *testing.T) {
		router := newFavoriteRouter(mocks.NewMockFavoriteStore())

		rec := doRequest(t, router, http.MethodPost, "/favorites", `{"bookId": "three"}`, asUser(1))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Book ID must be an integer", errorMessage(t, rec))
	})
}

func TestRemoveFavorite(t *testing.T) {
	t.Run("removes_and_returns_the_favorite", func(t *testing.T) {
		favoriteStore := mocks.NewMockFavoriteStore()
		seedFavorite(t, favoriteStore, 1, 3)
		router := newFavoriteRouter(favoriteStore)

		rec := doRequest(t, router, http.MethodDelete, "/favorites", FavoriteRequest{BookID: 3}, asUser(1))

		require.Equal(t, http.StatusOK, rec.Code)
		var favorite domain.Favorite
		decodeBody(t, rec, &favorite)
		assert.Equal(t, int64(1), favorite.UserID)
		assert.Equal(t, int64(3), favorite.BookID)

		exists, err := favoriteStore.Exists(context.Background(), 1, 3)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("removal_is_scoped_to_the_owner", func(t *testing.T) {
		favoriteStore := mocks.NewMockFavoriteStore()
		seedFavorite(t, favoriteStore, 1, 3)
		seedFavorite(t, favoriteStore, 2, 3)
		router := newFavoriteRouter(favoriteStore)

		rec := doRequest(t, router, http.MethodDelete, "/favorites", FavoriteRequest{BookID: 3}, asUser(1))
		require.Equal(t, http.StatusOK, rec.Code)

		// The other user's favorite of the same book survives.
		exists, err := favoriteStore.Exists(context.Background(), 2, 3)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing_favorite_returns_404", func(t *testing.T) {
		favoriteStore := mocks.NewMockFavoriteStore()
		seedFavorite(t, favoriteStore, 2, 3)
		router := newFavoriteRouter(favoriteStore)

		// User 1 never favorited book 3; user 2's record is not theirs
		// to remove.
		rec := doRequest(t, router, http.MethodDelete, "/favorites", FavoriteRequest{BookID: 3}, asUser(1))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Favorite not found", errorMessage(t, rec))
	})
}
