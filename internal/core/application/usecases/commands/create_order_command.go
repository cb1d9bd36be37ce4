package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/pkg/errs"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateDineInOrderCommand or NewCreateDeliveryOrderCommand",
	)
)

// CreateOrderCommand represents a request to open a new order, either seated
// at one or more tables or addressed to a delivery/pickup customer.
//
// Example:
//
//	cmd, err := NewCreateDineInOrderCommand(orderID, tenantID, actorID, items, tableIDs, "no onions")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	actorID  kernel.UUID
	items    []services.SubmittedItem
	tableIDs []kernel.UUID
	customer *order.CustomerInfo
	notes    string

	guard kernel.ConstructorGuard
}

// NewCreateDineInOrderCommand creates a command for an order seated at the
// given tables. Requires at least one item and at least one table.
func NewCreateDineInOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	items []services.SubmittedItem,
	tableIDs []kernel.UUID,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: kernel.NewConstructorGuard(),
		notes: notes,
	}

	if err := errors.Join(
		cmd.setIdentity(orderID, tenantID, actorID),
		cmd.setItems(items),
		cmd.setTableIDs(tableIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// NewCreateDeliveryOrderCommand creates a command for an order delivered to
// a customer instead of tables.
func NewCreateDeliveryOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	items []services.SubmittedItem,
	customer order.CustomerInfo,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: kernel.NewConstructorGuard(),
		notes: notes,
	}

	if err := errors.Join(
		cmd.setIdentity(orderID, tenantID, actorID),
		cmd.setItems(items),
		cmd.setCustomer(customer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the tenant the order belongs to.
func (c CreateOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// ActorID returns the opaque identity creating the order.
func (c CreateOrderCommand) ActorID() kernel.UUID { return c.actorID }

// Items returns the submitted item list.
func (c CreateOrderCommand) Items() []services.SubmittedItem { return c.items }

// TableIDs returns the tables to seat the order at; empty for delivery.
func (c CreateOrderCommand) TableIDs() []kernel.UUID { return c.tableIDs }

// Customer returns the delivery customer, nil for dine-in.
func (c CreateOrderCommand) Customer() *order.CustomerInfo { return c.customer }

// Notes returns the free-form order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// IsDineIn reports whether the order occupies tables.
func (c CreateOrderCommand) IsDineIn() bool { return len(c.tableIDs) > 0 }

func (c *CreateOrderCommand) setIdentity(orderID, tenantID, actorID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), tenantID.Validate(), actorID.Validate()); err != nil {
		return err
	}
	c.orderID = orderID
	c.tenantID = tenantID
	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.SubmittedItem) error {
	if err := validateItems(items); err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTableIDs(tableIDs []kernel.UUID) error {
	if len(tableIDs) == 0 {
		return errs.NewValidationError("at least one table is required")
	}
	for _, id := range tableIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.tableIDs = tableIDs
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.CustomerInfo) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = &customer
	return nil
}

// validateItems checks the structural validity of a submitted item list.
// Resolution against the catalog happens later, in the handler.
func validateItems(items []services.SubmittedItem) error {
	if len(items) == 0 {
		return errs.NewValidationError("items must not be empty")
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValidationError("item quantity must be greater than 0")
		}
		for _, sel := range item.Selections {
			if err := sel.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
