// Package domain defines the core business entities of the bookshelf
// application (books, users, favorites) and their validation rules.
package domain
