// Package errs provides the standardized error taxonomy for the order engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines one error type per failure class:
//   - ValidationError: malformed or empty input
//   - NotFoundError: an entity does not resolve for the given tenant
//   - InsufficientStockError: a STRICT-policy stock check failed
//   - InvalidStateError: an operation forbidden by the current order state
//   - ConflictError: a storage-level uniqueness violation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrNotFound) for errors.Is branching
//   - A struct type carrying the structured details of the failure
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Callers branch on the sentinel with errors.Is and recover the structure
// with errors.As when they need to render an actionable message.
package errs
