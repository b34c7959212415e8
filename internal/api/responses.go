package api

import (
	"net/http"

	"github.com/hazelbrook/bookshelf-api/internal/api/shared"
)

// Thin wrappers over the shared response helpers so handlers in this
// package stay terse.

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	shared.RespondWithJSON(w, r, status, data)
}

// RespondWithError writes a JSON error response with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithError(w, r, status, message)
}
