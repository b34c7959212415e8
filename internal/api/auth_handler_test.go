package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazelbrook/bookshelf-api/internal/api/middleware"
	"github.com/hazelbrook/bookshelf-api/internal/domain"
	"github.com/hazelbrook/bookshelf-api/internal/mocks"
	"github.com/hazelbrook/bookshelf-api/internal/service/auth"
)

// fakePasswordVerifier matches MockUserStore's fake "hashed:" prefix
// instead of running bcrypt.
type fakePasswordVerifier struct{}

func (fakePasswordVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return auth.ErrInvalidCredentials
	}
	return nil
}

func newAuthRouter(userStore *mocks.MockUserStore) http.Handler {
	handler := NewAuthHandler(
		userStore,
		mocks.NewMockJWTService(),
		fakePasswordVerifier{},
		time.Hour,
		nil,
	)

	r := chi.NewRouter()
	r.Post("/auth/login", handler.Login)
	r.Delete("/auth/logout", handler.Logout)
	return r
}

func registerUser(t *testing.T, userStore *mocks.MockUserStore, email, password string) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Ada", "Lovelace", email, password)
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestLogin(t *testing.T) {
	t.Run("valid_credentials_issue_token_and_cookie", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		registerUser(t, userStore, "ada@example.com", "password1")
		router := newAuthRouter(userStore)

		rec := doRequest(t, router, http.MethodPost, "/auth/login", LoginRequest{
			Email:    "ada@example.com",
			Password: "password1",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "mock-token-1", resp.Token)
		assert.Equal(t, "ada@example.com", resp.User.Email)

		cookie := sessionCookie(t, rec)
		assert.Equal(t, resp.Token, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("unknown_email_returns_401", func(t *testing.T) {
		router := newAuthRouter(mocks.NewMockUserStore())

		rec := doRequest(t, router, http.MethodPost, "/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "password1",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", errorMessage(t, rec))
	})

	t.Run("wrong_password_returns_401", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		registerUser(t, userStore, "ada@example.com", "password1")
		router := newAuthRouter(userStore)

		rec := doRequest(t, router, http.MethodPost, "/auth/login", LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong-password",
		})

		// Indistinguishable from an unknown email.
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", errorMessage(t, rec))
	})

	t.Run("missing_fields_return_400", func(t *testing.T) {
		router := newAuthRouter(mocks.NewMockUserStore())

		rec := doRequest(t, router, http.MethodPost, "/auth/login", LoginRequest{
			Email: "ada@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email and password are required", errorMessage(t, rec))
	})
}

func TestLogout(t *testing.T) {
	router := newAuthRouter(mocks.NewMockUserStore())

	rec := doRequest(t, router, http.MethodDelete, "/auth/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
