package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid_input_succeeds", func(t *testing.T) {
		user, err := NewUser("Ada", "Lovelace", "ada@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", user.FirstName)
		assert.Equal(t, "Lovelace", user.LastName)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "password1", user.Password)
		assert.Empty(t, user.HashedPassword)
	})

	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
		wantField string
	}{
		{"blank_first_name", "", "Lovelace", "ada@example.com", "password1", "firstName"},
		{"blank_last_name", "Ada", "  ", "ada@example.com", "password1", "lastName"},
		{"blank_email", "Ada", "Lovelace", "", "password1", "email"},
		{"short_password", "Ada", "Lovelace", "ada@example.com", "seven77", "password"},
		{"checks_first_name_before_password", "", "", "", "x", "firstName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.firstName, tt.lastName, tt.email, tt.password)
			require.Error(t, err)
			assert.Nil(t, user)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}

	t.Run("password_boundary_lengths", func(t *testing.T) {
		// 7 characters fails, 8 succeeds.
		_, err := NewUser("Ada", "Lovelace", "ada@example.com", strings.Repeat("a", 7))
		assert.ErrorIs(t, err, ErrPasswordTooShort)

		_, err = NewUser("Ada", "Lovelace", "ada@example.com", strings.Repeat("a", 8))
		assert.NoError(t, err)

		// bcrypt's practical limit of 72 bytes is enforced as well.
		_, err = NewUser("Ada", "Lovelace", "ada@example.com", strings.Repeat("a", 72))
		assert.NoError(t, err)

		_, err = NewUser("Ada", "Lovelace", "ada@example.com", strings.Repeat("a", 73))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("multibyte_passwords_count_characters_not_bytes", func(t *testing.T) {
		// 7 characters, 21 bytes: still too short.
		_, err := NewUser("Ada", "Lovelace", "ada@example.com", strings.Repeat("ん", 7))
		assert.ErrorIs(t, err, ErrPasswordTooShort)

		// 8 characters, 24 bytes: fine.
		_, err = NewUser("Ada", "Lovelace", "ada@example.com", strings.Repeat("ん", 8))
		assert.NoError(t, err)

		// 25 characters, 75 bytes: past bcrypt's byte limit.
		_, err = NewUser("Ada", "Lovelace", "ada@example.com", strings.Repeat("ん", 25))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})
}

func TestUserValidateStoredUser(t *testing.T) {
	// Users loaded from the store carry only the hash.
	user := &User{
		ID:             1,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		HashedPassword: "$2a$12$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.Error(t, user.Validate())
}

func TestFavoriteValidate(t *testing.T) {
	tests := []struct {
		name    string
		fav     Favorite
		wantErr bool
	}{
		{"valid", Favorite{UserID: 1, BookID: 2}, false},
		{"zero_user", Favorite{UserID: 0, BookID: 2}, true},
		{"zero_book", Favorite{UserID: 1, BookID: 0}, true},
		{"negative_book", Favorite{UserID: 1, BookID: -4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fav.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
