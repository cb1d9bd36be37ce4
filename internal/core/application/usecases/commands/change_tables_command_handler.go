package commands

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ChangeTablesCommandHandler handles re-seating a dine-in order. The table
// link set is fully replaced, never diffed: links to the old tables are
// dropped, links to the new tables inserted, and occupancy flags flipped
// accordingly within the same transaction.
//
// An old table is only freed when no other active order remains linked to
// it; a table shared with another live order stays occupied.
type ChangeTablesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeTablesCommandHandler creates a handler for order re-seating.
func NewChangeTablesCommandHandler(uowFactory OrderUoWFactory) ChangeTablesCommandHandler {
	return ChangeTablesCommandHandler{uowFactory: uowFactory}
}

// Handle processes the re-seat command.
func (h *ChangeTablesCommandHandler) Handle(ctx context.Context, cmd ChangeTablesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}
	if !aggregate.Status().IsActive() {
		return errs.NewInvalidStateError("change tables", aggregate.Status().String())
	}
	if len(aggregate.TableIDs()) == 0 {
		return errs.NewValidationError("order is not seated at tables")
	}

	// Resolved before the link rewrite so the predicate still sees the
	// current link set.
	releasable, err := orderRepo.TablesExclusiveTo(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ReplaceTables(cmd.TableIDs()); err != nil {
		return err
	}
	if err = orderRepo.ReplaceTableLinks(ctx, cmd.TenantID(), cmd.OrderID(), cmd.TableIDs()); err != nil {
		return err
	}

	tables := uow.TableRepository()
	if vacated := subtractTables(releasable, cmd.TableIDs()); len(vacated) > 0 {
		if err = tables.Free(ctx, cmd.TenantID(), vacated); err != nil {
			return err
		}
	}
	if err = tables.Occupy(ctx, cmd.TenantID(), cmd.TableIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// subtractTables returns the ids present in from but not in exclude.
func subtractTables(from []kernel.UUID, exclude []kernel.UUID) []kernel.UUID {
	excluded := make(map[kernel.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	var remaining []kernel.UUID
	for _, id := range from {
		if _, ok := excluded[id]; !ok {
			remaining = append(remaining, id)
		}
	}
	return remaining
}
