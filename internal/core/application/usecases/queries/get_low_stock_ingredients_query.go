package queries

import (
	"errors"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
)

var (
	ErrGetLowStockIngredientsQueryIsNotConstructed = errors.New(
		"GetLowStockIngredientsQuery must be created via NewGetLowStockIngredientsQuery constructor",
	)
)

// GetLowStockIngredientsQuery retrieves a tenant's ingredients at or below
// their low-stock threshold. Feeds both the on-demand stock view and the
// periodic low-stock alert job.
type GetLowStockIngredientsQuery struct {
	tenantID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetLowStockIngredientsQuery creates a query for a tenant's depleted
// ingredients.
func NewGetLowStockIngredientsQuery(tenantID kernel.UUID) (GetLowStockIngredientsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetLowStockIngredientsQuery{}, err
	}

	return GetLowStockIngredientsQuery{
		tenantID: tenantID,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockIngredientsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockIngredientsQueryIsNotConstructed)
}

// TenantID returns the tenant whose stock is inspected.
func (q GetLowStockIngredientsQuery) TenantID() kernel.UUID { return q.tenantID }

// GetLowStockIngredientsQueryResponse is one depleted ingredient row.
type GetLowStockIngredientsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Unit          string
	StockCurrent  float64
	StockMin      float64
	StockCritical float64
	Level         inventory.StockLevel
}
