// Package domain defines the core records and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain record fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyPath is returned when a source file has no path.
	ErrEmptyPath = errors.New("file path cannot be empty")
)
