package commands

import (
	"context"
)

// CloseOrderCommandHandler handles closing an order as paid or billed. The
// aggregate stamps the payment fields and the closing timestamp; the
// handler drops the order's table links and frees every table no other
// active order still holds, all inside one transaction.
type CloseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCloseOrderCommandHandler creates a handler for order closing.
func NewCloseOrderCommandHandler(uowFactory OrderUoWFactory) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the close command.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
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

	if err = aggregate.Close(cmd.CloseAs(), cmd.PaymentMethod(), cmd.AmountPaid(), cmd.Change()); err != nil {
		return err
	}

	if len(aggregate.TableIDs()) > 0 {
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
