package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
)

var (
	ErrChangeStatusCommandIsNotConstructed = errors.New(
		"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
	)
)

// ChangeStatusCommand represents a request to move an order along its
// lifecycle: between active states, or into cancelled. Closing statuses are
// reached through the closing operation instead.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	actorID  kernel.UUID
	next     order.Status

	guard kernel.ConstructorGuard
}

// NewChangeStatusCommand creates a validated status change command.
func NewChangeStatusCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	next order.Status,
) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
		actorID.Validate(),
		next.Validate(),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.actorID = actorID
	cmd.next = next
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status changes.
func (c ChangeStatusCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the tenant the order belongs to.
func (c ChangeStatusCommand) TenantID() kernel.UUID { return c.tenantID }

// ActorID returns the opaque identity performing the change.
func (c ChangeStatusCommand) ActorID() kernel.UUID { return c.actorID }

// Next returns the requested lifecycle status.
func (c ChangeStatusCommand) Next() order.Status { return c.next }
