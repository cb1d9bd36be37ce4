package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the sentinel for all input validation failures.
var ErrValidation = errors.New("validation failed")

// ValidationError indicates malformed or empty input to an operation.
// ParamName identifies the offending parameter.
type ValidationError struct {
	ParamName string
	Cause     error
}

// NewValidationError creates a ValidationError for the named parameter.
func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an underlying cause.
func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("validation failed: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("validation failed: %s", e.ParamName))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
