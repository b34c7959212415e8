// Package api contains the HTTP handlers for the bookshelf service and
// the single boundary that maps domain/store/auth errors to transport
// status codes.
package api
