package ports

import (
	"context"

	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/kernel"
)

// CatalogReader resolves product and personalization-option snapshots for
// the order engine. Lookups are batched: one call per id set, never one
// round trip per item.
type CatalogReader interface {
	// GetProducts returns the snapshots of the requested products, keyed
	// by id. Ids that do not resolve under the tenant are simply absent
	// from the map; the caller decides whether that is an error.
	GetProducts(ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID) (map[kernel.UUID]catalog.Product, error)

	// GetOptions returns the snapshots of the requested personalization
	// options, keyed by id, with the same absence semantics as GetProducts.
	GetOptions(ctx context.Context, tenantID kernel.UUID, ids []kernel.UUID) (map[kernel.UUID]catalog.Option, error)
}
