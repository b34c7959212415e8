package domain

import "strings"

// Book represents a single entry in the catalog.
// The ID is assigned by the store on insert and is immutable afterwards.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
}

// Validate checks that all five attributes are present and non-blank
// after trimming. Fields are checked in a fixed order (title, author,
// genre, description, coverUrl) and validation stops at the first
// blank field so clients get a stable, predictable error.
func (b *Book) Validate() error {
	checks := []struct {
		field string
		value string
	}{
		{"title", b.Title},
		{"author", b.Author},
		{"genre", b.Genre},
		{"description", b.Description},
		{"coverUrl", b.CoverURL},
	}

	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return NewValidationError(c.field, "must not be blank", nil)
		}
	}

	return nil
}

// BookPatch carries a partial update for a book. A zero-value ("")
// field means "not supplied" and leaves the stored value unchanged.
// An empty string therefore never clears a field; this falsy-based
// merge is intentional and matches the public API contract.
type BookPatch struct {
	Title       string
	Author      string
	Genre       string
	Description string
	CoverURL    string
}

// Apply merges the supplied fields of the patch into the book.
func (p BookPatch) Apply(b *Book) {
	if p.Title != "" {
		b.Title = p.Title
	}
	if p.Author != "" {
		b.Author = p.Author
	}
	if p.Genre != "" {
		b.Genre = p.Genre
	}
	if p.Description != "" {
		b.Description = p.Description
	}
	if p.CoverURL != "" {
		b.CoverURL = p.CoverURL
	}
}
