package queries

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
)

var (
	ErrListTenantsQueryIsNotConstructed = errors.New(
		"ListTenantsQuery must be created via NewListTenantsQuery constructor",
	)
)

// ListTenantsQuery retrieves every configured tenant with its stock policy.
// Used by background jobs that iterate the whole installation.
type ListTenantsQuery struct {
	guard kernel.ConstructorGuard
}

// NewListTenantsQuery creates a query listing all configured tenants.
func NewListTenantsQuery() ListTenantsQuery {
	return ListTenantsQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListTenantsQuery) Validate() error {
	return q.guard.Validate(ErrListTenantsQueryIsNotConstructed)
}

// ListTenantsQueryResponse is one configured tenant.
type ListTenantsQueryResponse struct {
	TenantID    kernel.UUID
	StockPolicy string
}
