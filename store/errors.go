// server/store/errors.go
package store

import "errors"

var (
	// ErrNotFound is returned when a record file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when required fields are missing or invalid.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidReference is returned when a referenced record does not resolve.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrIntegrity is returned when the post-write verification of a newly
	// created record fails.
	ErrIntegrity = errors.New("integrity check failed")
)
