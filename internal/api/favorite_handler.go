package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hazelbrook/bookshelf-api/internal/api/middleware"
	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/store"
)

// FavoriteHandler handles favorites API requests. Every handler sources
// the user ID exclusively from the verified token claim placed in the
// request context by the auth gate; client-supplied user IDs are never
// accepted.
type FavoriteHandler struct {
	favoriteStore store.FavoriteStore
	logger        *slog.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler with the given dependencies.
func NewFavoriteHandler(favoriteStore store.FavoriteStore, log *slog.Logger) *FavoriteHandler {
	if log == nil {
		log = slog.Default()
	}
	return &FavoriteHandler{
		favoriteStore: favoriteStore,
		logger:        log.With(slog.String("component", "favorite_handler")),
	}
}

// ListFavorites handles GET /favorites.
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	favorites, err := h.favoriteStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list favorites")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, favorites)
}

// CheckFavorite handles GET /favorites/check?bookId=N. It responds with
// a bare boolean: whether the book is favorited by the requesting user.
func (h *FavoriteHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	bookID, err := strconv.ParseInt(r.URL.Query().Get("bookId"), 10, 64)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Book ID must be an integer")
		return
	}

	exists, err := h.favoriteStore.Exists(r.Context(), userID, bookID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check favorite")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, exists)
}

// AddFavorite handles POST /favorites.
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req FavoriteRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Book ID must be an integer")
		return
	}

	favorite := &domain.Favorite{
		UserID: userID,
		BookID: req.BookID,
	}

	if err := h.favoriteStore.Create(r.Context(), favorite); err != nil {
		HandleAPIError(w, r, err, "Failed to add favorite")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, favorite)
}

// RemoveFavorite handles DELETE /favorites. It removes exactly the one
// favorite matching (authenticated user, bookId) and returns the
// removed record.
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req FavoriteRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Book ID must be an integer")
		return
	}

	favorite, err := h.favoriteStore.Delete(r.Context(), userID, req.BookID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to remove favorite")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, favorite)
}
