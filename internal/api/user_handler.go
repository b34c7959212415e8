package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/store"
)

// UserHandler handles account registration requests.
type UserHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /users. Validation happens in a fixed order
// (firstName, lastName, email, password length) and fails fast before
// any store write. The response never contains the password hash.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := domain.NewUser(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			HandleAPIError(w, r, err, "")
			return
		}
		h.logger.Error("failed to create user", "error", err)
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}
