package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for storage-level uniqueness violations.
var ErrConflict = errors.New("conflict")

// ConflictError indicates a storage-level uniqueness violation, for example
// inserting a duplicate order-table link.
type ConflictError struct {
	Resource string
	Cause    error
}

// NewConflictError creates a ConflictError for the named resource.
func NewConflictError(resource string) *ConflictError {
	return &ConflictError{Resource: resource}
}

// NewConflictErrorWithCause creates a ConflictError wrapping the storage error.
func NewConflictErrorWithCause(resource string, cause error) *ConflictError {
	return &ConflictError{Resource: resource, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("conflict: %s (cause: %s)", e.Resource, e.Cause))
	}
	return sanitize(fmt.Sprintf("conflict: %s", e.Resource))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
