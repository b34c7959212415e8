// Package store defines the persistence interfaces for the bookshelf
// domain entities along with the sentinel errors implementations must
// return. Concrete implementations live under internal/platform.
package store
