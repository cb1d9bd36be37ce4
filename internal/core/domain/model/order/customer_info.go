package order

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// CustomerInfo is a value object carrying the recipient details of a
// delivery or pickup order, used instead of table links.
type CustomerInfo struct {
	name    string
	phone   string
	address string

	guard kernel.ConstructorGuard
}

// NewCustomerInfo creates validated customer details. The name is required;
// phone and address are optional (pickup orders have no address).
func NewCustomerInfo(name string, phone string, address string) (CustomerInfo, error) {
	if name == "" {
		return CustomerInfo{}, errs.NewValidationError("customer name is required")
	}

	return CustomerInfo{
		name:    name,
		phone:   phone,
		address: address,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CustomerInfo was created through the constructor.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(errs.NewValidationError("CustomerInfo must be created via NewCustomerInfo constructor"))
}

// Name returns the customer name.
func (c CustomerInfo) Name() string { return c.name }

// Phone returns the customer phone, possibly empty.
func (c CustomerInfo) Phone() string { return c.phone }

// Address returns the delivery address, possibly empty.
func (c CustomerInfo) Address() string { return c.address }
