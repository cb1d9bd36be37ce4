package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel for operations forbidden by the current state.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError indicates that an operation is not allowed while the
// target entity is in its current state.
type InvalidStateError struct {
	Operation    string
	CurrentState string
}

// NewInvalidStateError creates an InvalidStateError for the given operation
// and the state that forbade it.
func NewInvalidStateError(operation string, currentState string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, CurrentState: currentState}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("invalid state: cannot %s while %s", e.Operation, e.CurrentState))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
