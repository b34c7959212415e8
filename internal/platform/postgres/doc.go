// Package postgres contains the PostgreSQL implementations of the
// store interfaces, backed by database/sql with the pgx driver.
//
// Uniqueness (users.email, favorites(user_id, book_id)) is enforced by
// database constraints; the stores translate constraint-violation
// errors into the store package's sentinel errors rather than relying
// on check-then-act pre-checks, which are advisory only.
package postgres
