package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/services"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
)

// EditOrderCommand represents a request to replace an order's item list.
// Submitted items carrying a LineID refer to existing lines (updated in
// place); items without one become new lines; existing lines absent from
// the list are deleted.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	actorID  kernel.UUID
	items    []services.SubmittedItem
	notes    *string

	guard kernel.ConstructorGuard
}

// NewEditOrderCommand creates a validated edit command. notes is optional:
// nil leaves the order notes untouched.
func NewEditOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	items []services.SubmittedItem,
	notes *string,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: kernel.NewConstructorGuard(),
		notes: notes,
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
		actorID.Validate(),
		validateItems(items),
	); err != nil {
		return EditOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.actorID = actorID
	cmd.items = items
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c EditOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the tenant the order belongs to.
func (c EditOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// ActorID returns the opaque identity performing the edit.
func (c EditOrderCommand) ActorID() kernel.UUID { return c.actorID }

// Items returns the submitted replacement item list.
func (c EditOrderCommand) Items() []services.SubmittedItem { return c.items }

// Notes returns the replacement order notes, nil to keep the current ones.
func (c EditOrderCommand) Notes() *string { return c.notes }
