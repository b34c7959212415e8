package mocks

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/hazelbrook/bookshelf-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing. The default
// behavior issues transparent "mock-token-<userID>" strings so tests
// can mint credentials without real signing.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID int64) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Ensure MockJWTService implements auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)

// NewMockJWTService creates a new mock JWT service.
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{}
}

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return "mock-token-" + strconv.FormatInt(userID, 10), nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}

	suffix, ok := strings.CutPrefix(tokenString, "mock-token-")
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	userID, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || userID <= 0 {
		return nil, auth.ErrInvalidToken
	}

	now := time.Now().UTC()
	return &auth.Claims{
		UserID:    userID,
		Subject:   suffix,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}, nil
}
