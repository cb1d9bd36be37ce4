package order

import (
	"comanda/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Delivered ──> {Paid | Billed}
//	    │           │           │           │
//	    └───────────┴───────────┴───────────┴──> Cancelled
//
// Paid, Billed, and Cancelled are terminal: no further transitions are
// allowed. The four states before payment form the active set; orders in
// those states count toward table occupancy and live views.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is ready to be served or picked up.
	Ready

	// Delivered indicates the order has reached the customer but has not
	// been paid yet.
	Delivered

	// Paid indicates the order was closed with a direct payment. Terminal.
	Paid

	// Billed indicates the order was closed against an invoice. Terminal.
	Billed

	// Cancelled indicates the order was aborted. Terminal. Inventory already
	// consumed by the order is not reversed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Paid:      "paid",
		Billed:    "billed",
		Cancelled: "cancelled",
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its string representation.
// Returns a ValidationError for unrecognized values.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == raw && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValidationError("status " + raw + " is not recognized")
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValidationError("status is invalid")
	}
	return nil
}

// IsActive reports whether the status counts toward table occupancy and
// live order views: pending, preparing, ready, or delivered.
func (s Status) IsActive() bool {
	switch s {
	case Pending, Preparing, Ready, Delivered:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status allows no further transitions:
// paid, billed, or cancelled.
func (s Status) IsTerminal() bool {
	switch s {
	case Paid, Billed, Cancelled:
		return true
	default:
		return false
	}
}

// ActiveStatuses returns the set of statuses that count as active.
// Used by persistence to filter live orders and compute table occupancy.
func ActiveStatuses() []Status {
	return []Status{Pending, Preparing, Ready, Delivered}
}

// TransitionTo validates a direct status change requested through the
// lifecycle. Any movement between active states is allowed, as is
// cancelling from any non-terminal state. Paid and Billed are reached only
// through the closing operation, never through a direct status change.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateError("change status", s.String())
	}
	if next == Paid || next == Billed {
		return Unknown, errs.NewInvalidStateError("set "+next.String()+" without closing", s.String())
	}
	return next, nil
}

// CloseAs validates the transition performed by the closing operation.
// Only active orders may be closed, and only into Paid or Billed.
func (s Status) CloseAs(next Status) (Status, error) {
	if next != Paid && next != Billed {
		return Unknown, errs.NewValidationError("closing status must be paid or billed")
	}
	if !s.IsActive() {
		return Unknown, errs.NewInvalidStateError("close order", s.String())
	}
	return next, nil
}
