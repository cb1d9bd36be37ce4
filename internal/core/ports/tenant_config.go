package ports

import (
	"context"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
)

// TenantConfigReader resolves per-tenant configuration. The stock policy is
// read once at the start of each lifecycle call and passed explicitly into
// the ledger, never consulted mid-transaction.
type TenantConfigReader interface {
	// GetStockPolicy returns the tenant's stock enforcement policy.
	// Tenants without explicit configuration run with PolicyDisabled.
	GetStockPolicy(ctx context.Context, tenantID kernel.UUID) (inventory.StockPolicy, error)
}
