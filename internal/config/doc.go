// Package config loads and validates application configuration from
// environment variables (with optional .env support at the call site).
package config
