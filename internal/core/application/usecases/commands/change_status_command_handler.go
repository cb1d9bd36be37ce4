package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
)

// ChangeStatusCommandHandler handles direct status changes. The state
// machine on the aggregate decides legality; the handler's own job is the
// table side effect of cancellation: a cancelled dine-in order drops its
// table links and frees every table no other active order still holds.
//
// Cancellation does not reverse inventory. Stock consumed by the order
// stays consumed; undoing it takes an explicit manual adjustment.
type ChangeStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeStatusCommandHandler creates a handler for status changes.
func NewChangeStatusCommandHandler(uowFactory OrderUoWFactory) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the status change command.
func (h *ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Next()); err != nil {
		return err
	}

	if cmd.Next() == order.Cancelled && len(aggregate.TableIDs()) > 0 {
		releasable, exErr := orderRepo.TablesExclusiveTo(ctx, cmd.TenantID(), cmd.OrderID())
		if exErr != nil {
			return exErr
		}
		if err = orderRepo.DeleteTableLinks(ctx, cmd.TenantID(), cmd.OrderID()); err != nil {
			return err
		}
		if len(releasable) > 0 {
			if err = uow.TableRepository().Free(ctx, cmd.TenantID(), releasable); err != nil {
				return err
			}
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
