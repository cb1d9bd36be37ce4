package errs

import (
	"errors"
	"fmt"
)

// ErrInsufficientStock is the sentinel for STRICT-policy stock failures.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError indicates that a STRICT stock check failed for one
// entity. It carries enough structure for the caller to render an actionable
// message: what is short, by how much, and how many units of the parent line
// would have to be removed to fit the available stock.
type InsufficientStockError struct {
	EntityKind         string
	EntityName         string
	Required           float64
	Available          float64
	SuggestedReduction int
}

// NewInsufficientStockError creates an InsufficientStockError for one entity.
// suggestedReduction is the number of line units to drop so that the remaining
// requirement fits the available stock.
func NewInsufficientStockError(
	entityKind string,
	entityName string,
	required float64,
	available float64,
	suggestedReduction int,
) *InsufficientStockError {
	return &InsufficientStockError{
		EntityKind:         entityKind,
		EntityName:         entityName,
		Required:           required,
		Available:          available,
		SuggestedReduction: suggestedReduction,
	}
}

func (e *InsufficientStockError) Error() string {
	return sanitize(fmt.Sprintf(
		"insufficient stock: %s %s requires %g, available %g (reduce by %d)",
		e.EntityKind, e.EntityName, e.Required, e.Available, e.SuggestedReduction,
	))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
