package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() Book {
	return Book{
		Title:       "Dune",
		Author:      "Herbert",
		Genre:       "SciFi",
		Description: "A desert planet",
		CoverURL:    "http://example.com/dune.jpg",
	}
}

func TestBookValidate(t *testing.T) {
	t.Run("valid_book_passes", func(t *testing.T) {
		book := validBook()
		assert.NoError(t, book.Validate())
	})

	tests := []struct {
		name      string
		mutate    func(b *Book)
		wantField string
	}{
		{"blank_title", func(b *Book) { b.Title = "" }, "title"},
		{"whitespace_title", func(b *Book) { b.Title = "   " }, "title"},
		{"blank_author", func(b *Book) { b.Author = "" }, "author"},
		{"blank_genre", func(b *Book) { b.Genre = "\t" }, "genre"},
		{"blank_description", func(b *Book) { b.Description = "" }, "description"},
		{"blank_cover_url", func(b *Book) { b.CoverURL = "" }, "coverUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := validBook()
			tt.mutate(&book)

			err := book.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}

	t.Run("reports_first_blank_field_in_fixed_order", func(t *testing.T) {
		book := Book{} // everything blank

		err := book.Validate()
		require.Error(t, err)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "title", validationErr.Field)
		assert.Equal(t, "title must not be blank", validationErr.Error())
	})
}

func TestBookPatchApply(t *testing.T) {
	t.Run("applies_only_supplied_fields", func(t *testing.T) {
		book := validBook()
		patch := BookPatch{Title: "Dune Messiah"}

		patch.Apply(&book)

		assert.Equal(t, "Dune Messiah", book.Title)
		assert.Equal(t, "Herbert", book.Author)
		assert.Equal(t, "SciFi", book.Genre)
		assert.Equal(t, "A desert planet", book.Description)
		assert.Equal(t, "http://example.com/dune.jpg", book.CoverURL)
	})

	t.Run("empty_string_means_not_supplied", func(t *testing.T) {
		book := validBook()
		patch := BookPatch{Title: "", Author: "F. Herbert"}

		patch.Apply(&book)

		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, "F. Herbert", book.Author)
	})

	t.Run("empty_patch_changes_nothing", func(t *testing.T) {
		book := validBook()
		before := book

		BookPatch{}.Apply(&book)

		assert.Equal(t, before, book)
	})
}
