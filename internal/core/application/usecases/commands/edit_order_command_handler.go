package commands

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// EditOrderCommandHandler handles order edits. The submitted items are
// classified against the existing line set into update, insert, and delete
// sets; inventory is consumed only for the positive quantity deltas of
// surviving lines plus the full quantity of brand-new lines; and the
// order's totals are recomputed from the resulting full line set, never
// incrementally.
//
// Removing a line or lowering its quantity never restocks automatically;
// returning prepared food to inventory requires an explicit manual
// adjustment.
type EditOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	catalog      ports.CatalogReader
	tenantConfig ports.TenantConfigReader
	lineBuilder  services.LineBuilder
	ledger       services.Ledger
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
	tenantConfig ports.TenantConfigReader,
) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory:   uowFactory,
		catalog:      catalog,
		tenantConfig: tenantConfig,
		lineBuilder:  services.NewLineBuilder(),
		ledger:       services.NewLedger(),
	}
}

// Handle processes the edit command.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	policy, err := h.tenantConfig.GetStockPolicy(ctx, cmd.TenantID())
	if err != nil {
		return err
	}

	productIDs, optionIDs := services.CollectCatalogIDs(cmd.Items())
	products, err := h.catalog.GetProducts(ctx, cmd.TenantID(), productIDs)
	if err != nil {
		return err
	}
	options, err := h.catalog.GetOptions(ctx, cmd.TenantID(), optionIDs)
	if err != nil {
		return err
	}

	resulting, _, err := h.lineBuilder.Build(cmd.Items(), products, options)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
		return errs.NewInvalidStateError("edit order", aggregate.Status().String())
	}

	previous := aggregate.Lines()

	deltas := services.EditDeltas(previous, resulting)
	err = h.ledger.ConsumeOrderItems(
		ctx,
		uow.InventoryRepository(),
		cmd.TenantID(),
		cmd.ActorID(),
		cmd.OrderID(),
		deltas,
		products,
		options,
		policy,
	)
	if err != nil {
		return err
	}

	if err = h.applyLineChanges(ctx, orderRepo, cmd, previous, resulting); err != nil {
		return err
	}

	if err = aggregate.SetLines(resulting); err != nil {
		return err
	}
	if cmd.Notes() != nil {
		aggregate.SetNotes(*cmd.Notes())
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// applyLineChanges persists the classification of resulting lines against
// the previous line set: updates in place, inserts for new lines, deletes
// for vanished ones.
func (h *EditOrderCommandHandler) applyLineChanges(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd EditOrderCommand,
	previous []*order.Line,
	resulting []*order.Line,
) error {
	previousByID := make(map[kernel.UUID]*order.Line, len(previous))
	for _, line := range previous {
		previousByID[line.ID()] = line
	}
	resultingByID := make(map[kernel.UUID]struct{}, len(resulting))

	var inserts []*order.Line
	for _, line := range resulting {
		resultingByID[line.ID()] = struct{}{}

		if _, exists := previousByID[line.ID()]; exists {
			if err := orderRepo.UpdateLine(ctx, cmd.TenantID(), cmd.OrderID(), line); err != nil {
				return err
			}
			continue
		}
		inserts = append(inserts, line)
	}

	if len(inserts) > 0 {
		if err := orderRepo.AddLines(ctx, cmd.TenantID(), cmd.OrderID(), inserts); err != nil {
			return err
		}
	}

	var deletes []kernel.UUID
	for _, line := range previous {
		if _, kept := resultingByID[line.ID()]; !kept {
			deletes = append(deletes, line.ID())
		}
	}
	if len(deletes) > 0 {
		if err := orderRepo.DeleteLines(ctx, cmd.TenantID(), cmd.OrderID(), deletes); err != nil {
			return err
		}
	}

	return nil
}
