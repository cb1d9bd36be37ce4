package inventory

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// MovementKind classifies why a stock level changed.
type MovementKind string

const (
	// MovementConsumption records stock consumed by an order.
	MovementConsumption MovementKind = "consumption"
	// MovementAdjustment records a manual stock correction.
	MovementAdjustment MovementKind = "adjustment"
	// MovementPurchase records incoming stock from a purchase.
	MovementPurchase MovementKind = "purchase"
	// MovementReturn records stock returned to the inventory.
	MovementReturn MovementKind = "return"
)

// Validate checks that the kind is one of the defined movement kinds.
func (k MovementKind) Validate() error {
	switch k {
	case MovementConsumption, MovementAdjustment, MovementPurchase, MovementReturn:
		return nil
	default:
		return errs.NewValidationError("movement kind is invalid")
	}
}

// ErrMovementIsNotConstructed is returned when a Movement was not created
// through the NewMovement factory method.
var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewMovement constructor")

// Movement is one append-only audit row of the inventory ledger. Every
// stock mutation, whether order consumption or manual adjustment, produces
// exactly one Movement. Movements are never updated or deleted.
type Movement struct {
	id       kernel.UUID
	tenantID kernel.UUID
	target   Target
	delta    float64
	kind     MovementKind
	reason   string
	actorID  kernel.UUID
	orderID  *kernel.UUID
	loggedAt time.Time

	isConstructed bool
}

// NewMovement creates a validated movement row. delta is signed: negative
// for consumption, positive for restock. orderID links consumption rows to
// the order that caused them and is nil for manual paths.
func NewMovement(
	tenantID kernel.UUID,
	target Target,
	delta float64,
	kind MovementKind,
	reason string,
	actorID kernel.UUID,
	orderID *kernel.UUID,
) (Movement, error) {
	if err := errors.Join(tenantID.Validate(), target.Validate(), kind.Validate(), actorID.Validate()); err != nil {
		return Movement{}, err
	}
	if delta == 0 {
		return Movement{}, errs.NewValidationError("movement delta must not be zero")
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return Movement{}, err
		}
	}

	return Movement{
		id:            kernel.NewUUID(),
		tenantID:      tenantID,
		target:        target,
		delta:         delta,
		kind:          kind,
		reason:        reason,
		actorID:       actorID,
		orderID:       orderID,
		loggedAt:      time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Movement was created through the constructor.
func (m Movement) Validate() error {
	if !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

// ID returns the movement identifier.
func (m Movement) ID() kernel.UUID { return m.id }

// TenantID returns the owning tenant identifier.
func (m Movement) TenantID() kernel.UUID { return m.tenantID }

// Target returns the stocked entity whose level changed.
func (m Movement) Target() Target { return m.target }

// Delta returns the signed stock change.
func (m Movement) Delta() float64 { return m.delta }

// Kind returns the movement classification.
func (m Movement) Kind() MovementKind { return m.kind }

// Reason returns the free-form explanation of the movement.
func (m Movement) Reason() string { return m.reason }

// ActorID returns the opaque identity of whoever caused the movement.
func (m Movement) ActorID() kernel.UUID { return m.actorID }

// OrderID returns the order that caused the movement, or nil for manual paths.
func (m Movement) OrderID() *kernel.UUID { return m.orderID }

// LoggedAt returns the movement timestamp.
func (m Movement) LoggedAt() time.Time { return m.loggedAt }
