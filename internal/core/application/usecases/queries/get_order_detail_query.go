package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves one order with its full line detail.
type GetOrderDetailQuery struct {
	tenantID kernel.UUID
	orderID  kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query for one order's detail view.
func NewGetOrderDetailQuery(tenantID kernel.UUID, orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		tenantID: tenantID,
		orderID:  orderID,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// TenantID returns the tenant the order belongs to.
func (q GetOrderDetailQuery) TenantID() kernel.UUID { return q.tenantID }

// OrderID returns the requested order.
func (q GetOrderDetailQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderDetailQueryResponse is the full view of one order.
type GetOrderDetailQueryResponse struct {
	ID              kernel.UUID
	Status          string
	TableIDs        []kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Notes           string
	Subtotal        float64
	Total           float64
	PaymentMethod   string
	AmountPaid      float64
	Change          float64
	CreatedAt       time.Time
	ClosedAt        *time.Time
	Lines           []OrderLineDetail
}

// OrderLineDetail is one line of the detail view.
type OrderLineDetail struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   float64
	ExtraPrice  float64
	LineTotal   float64
	Notes       string
}
