package postgres

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestConstructorsRequireDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresBookStore(nil, nil) })
	assert.Panics(t, func() { NewPostgresUserStore(nil, 12, nil) })
	assert.Panics(t, func() { NewPostgresFavoriteStore(nil, nil) })
}

func TestNewPostgresUserStoreCostFallback(t *testing.T) {
	db := &sql.DB{}

	s := NewPostgresUserStore(db, 99, nil)
	assert.Equal(t, bcrypt.DefaultCost, s.bcryptCost)

	s = NewPostgresUserStore(db, 10, nil)
	assert.Equal(t, 10, s.bcryptCost)
}
