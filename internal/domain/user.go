package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Password length bounds. The upper bound is bcrypt's practical input
// limit of 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// Common user validation errors.
var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
)

// User represents a registered account.
// It contains essential user information and authentication details.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	// Password holds the plaintext password only during registration;
	// the store hashes it and must never persist or expose it.
	Password string `json:"-"`

	// HashedPassword is the bcrypt hash. Never serialized.
	HashedPassword string `json:"-"`
}

// NewUser creates a User from registration input, validating fields in
// a fixed order: firstName, lastName, email, then password length.
// The returned user carries the plaintext password; the caller is
// responsible for hashing it before storage.
func NewUser(firstName, lastName, email, password string) (*User, error) {
	user := &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's registration fields. Fields are checked
// in a fixed order and validation stops at the first violation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.FirstName) == "" {
		return NewValidationError("firstName", "must not be blank", nil)
	}

	if strings.TrimSpace(u.LastName) == "" {
		return NewValidationError("lastName", "must not be blank", nil)
	}

	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email", "must not be blank", nil)
	}

	if u.Password != "" {
		// The minimum counts characters; the maximum counts bytes,
		// because 72 bytes is bcrypt's input limit.
		if utf8.RuneCountInString(u.Password) < MinPasswordLength {
			return NewValidationError("password", "must be at least 8 characters long", ErrPasswordTooShort)
		}
		if len(u.Password) > MaxPasswordLength {
			return NewValidationError("password", "must be at most 72 characters long", ErrPasswordTooLong)
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash.
		return NewValidationError("password", "must be at least 8 characters long", ErrPasswordTooShort)
	}

	return nil
}
