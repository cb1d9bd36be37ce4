package commands

import (
	"errors"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
)

// AdjustStockCommand represents a manual stock mutation: a correction, a
// purchase arrival, or a customer return. The delta is signed and applied
// without any policy guard; manual paths may drive a counter negative on
// purpose.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	actorID  kernel.UUID
	target   inventory.Target
	delta    float64
	kind     inventory.MovementKind
	reason   string

	guard kernel.ConstructorGuard
}

// NewAdjustStockCommand creates a validated adjustment command. kind must
// be one of the manual movement kinds; order consumption has its own path.
func NewAdjustStockCommand(
	tenantID kernel.UUID,
	actorID kernel.UUID,
	target inventory.Target,
	delta float64,
	kind inventory.MovementKind,
	reason string,
) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard:  kernel.NewConstructorGuard(),
		reason: reason,
	}

	if err := errors.Join(
		tenantID.Validate(),
		actorID.Validate(),
		target.Validate(),
		kind.Validate(),
	); err != nil {
		return AdjustStockCommand{}, err
	}
	if kind == inventory.MovementConsumption {
		return AdjustStockCommand{}, errs.NewValidationError("consumption movements are produced by orders, not adjustments")
	}
	if delta == 0 {
		return AdjustStockCommand{}, errs.NewValidationError("adjustment delta must not be zero")
	}

	cmd.tenantID = tenantID
	cmd.actorID = actorID
	cmd.target = target
	cmd.delta = delta
	cmd.kind = kind
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// TenantID returns the tenant whose stock is adjusted.
func (c AdjustStockCommand) TenantID() kernel.UUID { return c.tenantID }

// ActorID returns the opaque identity performing the adjustment.
func (c AdjustStockCommand) ActorID() kernel.UUID { return c.actorID }

// Target returns the stocked entity being adjusted.
func (c AdjustStockCommand) Target() inventory.Target { return c.target }

// Delta returns the signed stock change.
func (c AdjustStockCommand) Delta() float64 { return c.delta }

// Kind returns the movement classification for the audit row.
func (c AdjustStockCommand) Kind() inventory.MovementKind { return c.kind }

// Reason returns the free-form explanation recorded with the movement.
func (c AdjustStockCommand) Reason() string { return c.reason }
