package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// pricing the submitted items against the catalog, consuming inventory
// under the tenant's stock policy, persisting the order with its lines, and
// occupying the requested tables, all inside one transaction. Any failure
// aborts the entire transaction; no partial order is ever persisted and
// there is no implicit retry.
type CreateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	catalog      ports.CatalogReader
	tenantConfig ports.TenantConfigReader
	lineBuilder  services.LineBuilder
	ledger       services.Ledger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
	tenantConfig ports.TenantConfigReader,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		catalog:      catalog,
		tenantConfig: tenantConfig,
		lineBuilder:  services.NewLineBuilder(),
		ledger:       services.NewLedger(),
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	lines, _, err := h.lineBuilder.Build(cmd.Items(), products, options)
	if err != nil {
		return err
	}

	var aggregate *order.Order
	if cmd.IsDineIn() {
		aggregate, err = order.NewDineInOrder(cmd.OrderID(), cmd.TenantID(), cmd.TableIDs(), cmd.Notes())
	} else {
		aggregate, err = order.NewDeliveryOrder(cmd.OrderID(), cmd.TenantID(), *cmd.Customer(), cmd.Notes())
	}
	if err != nil {
		return err
	}
	if err = aggregate.SetLines(lines); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err = h.ledger.ConsumeOrderItems(
		ctx,
		uow.InventoryRepository(),
		cmd.TenantID(),
		cmd.ActorID(),
		cmd.OrderID(),
		services.ConsumptionFromLines(lines),
		products,
		options,
		policy,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if cmd.IsDineIn() {
		if err = uow.TableRepository().Occupy(ctx, cmd.TenantID(), cmd.TableIDs()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
