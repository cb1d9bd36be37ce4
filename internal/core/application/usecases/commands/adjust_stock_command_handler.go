package commands

import (
	"context"

	"comanda/internal/core/domain/services"
)

// AdjustStockCommandHandler handles manual stock mutations. The delta and
// its audit movement are written in one transaction so a stock level can
// never change without a matching ledger row.
type AdjustStockCommandHandler struct {
	uowFactory InventoryUoWFactory
	ledger     services.Ledger
}

// NewAdjustStockCommandHandler creates a handler for manual adjustments.
func NewAdjustStockCommandHandler(uowFactory InventoryUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

// Handle processes the adjustment command and returns the resulting stock
// level.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newLevel, err := h.ledger.AdjustStock(
		ctx,
		uow.InventoryRepository(),
		cmd.TenantID(),
		cmd.ActorID(),
		cmd.Target(),
		cmd.Delta(),
		cmd.Kind(),
		cmd.Reason(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newLevel, nil
}
