package domain

// Favorite records that a user has marked a book as a favorite.
// A favorite is unique per (UserID, BookID) pair; the storage layer
// enforces this with a unique constraint.
type Favorite struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
	BookID int64 `json:"bookId"`
}

// Validate checks the favorite's references.
func (f *Favorite) Validate() error {
	if f.UserID <= 0 {
		return NewValidationError("userId", "must be a positive integer", ErrInvalidID)
	}
	if f.BookID <= 0 {
		return NewValidationError("bookId", "must be a positive integer", ErrInvalidID)
	}
	return nil
}

// FavoriteBook is a favorite joined with the book it references,
// as returned by the favorites listing.
type FavoriteBook struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	BookID      int64  `json:"bookId"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}
