package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

var (
	ErrMergeOrdersCommandIsNotConstructed = errors.New(
		"MergeOrdersCommand must be created via NewMergeOrdersCommand constructor",
	)
)

// MergeOrdersCommand represents a request to fold one order into another:
// every line of the source order moves to the target order and the source
// order ceases to exist.
type MergeOrdersCommand struct { //nolint:recvcheck //using for validation
	sourceOrderID kernel.UUID
	targetOrderID kernel.UUID
	tenantID      kernel.UUID
	actorID       kernel.UUID

	guard kernel.ConstructorGuard
}

// NewMergeOrdersCommand creates a validated merge command. Source and
// target must be different orders.
func NewMergeOrdersCommand(
	sourceOrderID kernel.UUID,
	targetOrderID kernel.UUID,
	tenantID kernel.UUID,
	actorID kernel.UUID,
) (MergeOrdersCommand, error) {
	cmd := MergeOrdersCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		sourceOrderID.Validate(),
		targetOrderID.Validate(),
		tenantID.Validate(),
		actorID.Validate(),
	); err != nil {
		return MergeOrdersCommand{}, err
	}
	if sourceOrderID.IsEqual(targetOrderID) {
		return MergeOrdersCommand{}, errs.NewValidationError("an order cannot be merged into itself")
	}

	cmd.sourceOrderID = sourceOrderID
	cmd.targetOrderID = targetOrderID
	cmd.tenantID = tenantID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MergeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrMergeOrdersCommandIsNotConstructed)
}

// SourceOrderID returns the order being absorbed.
func (c MergeOrdersCommand) SourceOrderID() kernel.UUID { return c.sourceOrderID }

// TargetOrderID returns the order receiving the source's lines.
func (c MergeOrdersCommand) TargetOrderID() kernel.UUID { return c.targetOrderID }

// TenantID returns the tenant both orders belong to.
func (c MergeOrdersCommand) TenantID() kernel.UUID { return c.tenantID }

// ActorID returns the opaque identity performing the merge.
func (c MergeOrdersCommand) ActorID() kernel.UUID { return c.actorID }
