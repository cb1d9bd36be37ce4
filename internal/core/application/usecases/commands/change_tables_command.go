package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

var (
	ErrChangeTablesCommandIsNotConstructed = errors.New(
		"ChangeTablesCommand must be created via NewChangeTablesCommand constructor",
	)
)

// ChangeTablesCommand represents a request to re-seat a dine-in order:
// the order's table link set is fully replaced by the given tables.
type ChangeTablesCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	actorID  kernel.UUID
	tableIDs []kernel.UUID

	guard kernel.ConstructorGuard
}

// NewChangeTablesCommand creates a validated re-seat command. Requires at
// least one table.
func NewChangeTablesCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	tableIDs []kernel.UUID,
) (ChangeTablesCommand, error) {
	cmd := ChangeTablesCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
		actorID.Validate(),
		validateTableIDs(tableIDs),
	); err != nil {
		return ChangeTablesCommand{}, err
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.actorID = actorID
	cmd.tableIDs = tableIDs
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTablesCommand) Validate() error {
	return c.guard.Validate(ErrChangeTablesCommandIsNotConstructed)
}

// OrderID returns the order being re-seated.
func (c ChangeTablesCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the tenant the order belongs to.
func (c ChangeTablesCommand) TenantID() kernel.UUID { return c.tenantID }

// ActorID returns the opaque identity performing the re-seat.
func (c ChangeTablesCommand) ActorID() kernel.UUID { return c.actorID }

// TableIDs returns the replacement table set.
func (c ChangeTablesCommand) TableIDs() []kernel.UUID { return c.tableIDs }

func validateTableIDs(tableIDs []kernel.UUID) error {
	if len(tableIDs) == 0 {
		return errs.NewValidationError("at least one table is required")
	}
	for _, id := range tableIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}
