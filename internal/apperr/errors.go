// Package apperr defines the sentinel errors shared across Quill packages.
package apperr

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNothingToDelete = errors.New("nothing to delete")
	ErrNoSelection     = errors.New("no selection made")
	ErrCancelled       = errors.New("cancelled")
	ErrConfig          = errors.New("configuration error")
)

// Expected reports whether err is a user-facing outcome rather than a fault.
func Expected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrNothingToDelete) ||
		errors.Is(err, ErrNoSelection) ||
		errors.Is(err, ErrCancelled)
}
