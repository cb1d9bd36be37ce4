package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
)

var (
	ErrCloseOrderCommandIsNotConstructed = errors.New(
		"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
	)
)

// CloseOrderCommand represents a request to finish an order as paid or
// billed, recording how it was settled.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	tenantID      kernel.UUID
	actorID       kernel.UUID
	closeAs       order.Status
	paymentMethod string
	amountPaid    float64
	change        float64

	guard kernel.ConstructorGuard
}

// NewCloseOrderCommand creates a validated close command. closeAs must be
// Paid or Billed.
func NewCloseOrderCommand(
	orderID kernel.UUID,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	closeAs order.Status,
	paymentMethod string,
	amountPaid float64,
	change float64,
) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		guard:      kernel.NewConstructorGuard(),
		amountPaid: amountPaid,
		change:     change,
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
		actorID.Validate(),
		validateClosingStatus(closeAs),
		validatePaymentMethod(paymentMethod),
	); err != nil {
		return CloseOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.actorID = actorID
	cmd.closeAs = closeAs
	cmd.paymentMethod = paymentMethod
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the order being closed.
func (c CloseOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TenantID returns the tenant the order belongs to.
func (c CloseOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// ActorID returns the opaque identity closing the order.
func (c CloseOrderCommand) ActorID() kernel.UUID { return c.actorID }

// CloseAs returns the terminal status to close into, Paid or Billed.
func (c CloseOrderCommand) CloseAs() order.Status { return c.closeAs }

// PaymentMethod returns how the order was settled.
func (c CloseOrderCommand) PaymentMethod() string { return c.paymentMethod }

// AmountPaid returns the amount tendered.
func (c CloseOrderCommand) AmountPaid() float64 { return c.amountPaid }

// Change returns the change handed back.
func (c CloseOrderCommand) Change() float64 { return c.change }

func validateClosingStatus(closeAs order.Status) error {
	if closeAs != order.Paid && closeAs != order.Billed {
		return errs.NewValidationError("closing status must be paid or billed")
	}
	return nil
}

func validatePaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValidationError("payment method is required")
	}
	return nil
}
