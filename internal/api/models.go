package api

import "github.com/hazelbrook/bookshelf-api/internal/domain"

// Common request/response structures

// CreateBookRequest defines the payload for creating a catalog entry.
// Field-level validation (non-blank, fixed order) happens in the domain
// layer so error messages stay stable.
type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}

// UpdateBookRequest defines the payload for a partial book update.
// Absent and empty fields are treated identically: "not supplied".
type UpdateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}

// Patch converts the request into a domain patch.
func (r UpdateBookRequest) Patch() domain.BookPatch {
	return domain.BookPatch{
		Title:       r.Title,
		Author:      r.Author,
		Genre:       r.Genre,
		Description: r.Description,
		CoverURL:    r.CoverURL,
	}
}

// DeletedBookResponse is the shape returned after deleting a book: the
// five attributes of the removed record with the ID stripped.
type DeletedBookResponse struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UserResponse defines the user shape returned to clients. The password
// hash is never part of it.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewUserResponse builds a UserResponse from a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
// The token is also set as the session cookie.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FavoriteRequest defines the payload for adding or removing a
// favorite. The user is taken from the verified token, never from the
// payload.
type FavoriteRequest struct {
	BookID int64 `json:"bookId"`
}
