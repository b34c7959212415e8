package api

import (
	"log/slog"
	"net/http"

	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/store"
)

// BookHandler handles catalog API requests.
type BookHandler struct {
	bookStore store.BookStore
	logger    *slog.Logger
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(bookStore store.BookStore, log *slog.Logger) *BookHandler {
	if log == nil {
		log = slog.Default()
	}
	return &BookHandler{
		bookStore: bookStore,
		logger:    log.With(slog.String("component", "book_handler")),
	}
}

// ListBooks handles GET /books.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list books")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, books)
}

// GetBook handles GET /books/{id}.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		// A non-integer id can never match a book.
		HandleAPIError(w, r, store.ErrBookNotFound, "")
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get book")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, book)
}

// CreateBook handles POST /books.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	book := &domain.Book{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	}

	if err := h.bookStore.Create(r.Context(), book); err != nil {
		HandleAPIError(w, r, err, "Failed to create book")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, book)
}

// UpdateBook handles PATCH /books/{id}. Only supplied, non-empty fields
// replace stored values.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, store.ErrBookNotFound, "")
		return
	}

	var req UpdateBookRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	book, err := h.bookStore.Update(r.Context(), id, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update book")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, book)
}

// DeleteBook handles DELETE /books/{id}. The deleted record is returned
// with its id stripped.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, store.ErrBookNotFound, "")
		return
	}

	book, err := h.bookStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete book")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, DeletedBookResponse{
		Title:       book.Title,
		Author:      book.Author,
		Genre:       book.Genre,
		Description: book.Description,
		CoverURL:    book.CoverURL,
	})
}
