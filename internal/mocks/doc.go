// Package mocks provides hand-written mock implementations of the
// store and auth interfaces for handler and middleware tests. Each mock
// offers a reasonable map-backed default behavior plus per-method
// function fields for overriding it.
package mocks
