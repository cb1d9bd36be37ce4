package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel for unresolved entity lookups.
var ErrNotFound = errors.New("object not found")

// NotFoundError indicates that an entity id did not resolve under the
// requesting tenant. Kind names the entity class (order, table, product, ...).
type NotFoundError struct {
	Kind  string
	ID    any
	Cause error
}

// NewNotFoundError creates a NotFoundError for the given entity kind and id.
func NewNotFoundError(kind string, id any) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// NewNotFoundErrorWithCause creates a NotFoundError wrapping an underlying cause.
func NewNotFoundErrorWithCause(kind string, id any, cause error) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: %s %s (cause: %s)", e.Kind, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %s %s", e.Kind, e.ID))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
