// Package middleware contains the HTTP middleware applied around
// handlers: the authorization gate and trace-ID propagation.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hazelbrook/bookshelf-api/internal/api/shared"
	"github.com/hazelbrook/bookshelf-api/internal/redact"
	"github.com/hazelbrook/bookshelf-api/internal/service/auth"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// AuthMiddleware is the authorization gate for protected routes. It
// verifies the signed session token and injects the authenticated user
// ID into the request context. Requests that fail verification are
// rejected before any store operation runs.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the session token from the token cookie
// (falling back to an Authorization: Bearer header) and adds the user
// ID to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case auth.ErrInvalidToken, auth.ErrTokenNotYetValid:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		// The verified claim is the only source of identity for
		// downstream operations; client-supplied user IDs are ignored.
		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads the credential from the token cookie, falling back
// to the Authorization header for non-browser clients.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// GetUserID extracts the authenticated user ID from the request context.
// Returns the user ID and a boolean indicating if a valid one was found.
func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
