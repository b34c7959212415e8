// Package auth provides the token and password services behind the
// authorization gate: HMAC-signed session tokens and bcrypt password
// verification.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing signed session tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, malformed,
	// bad signature).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a session token.
type Claims struct {
	// UserID is the authenticated identity the token was issued for.
	UserID int64 `json:"userId"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
