package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/table"
)

// TableRepository is the table registry: it flips per-table occupancy
// flags and performs no independent invariant checking. Correctness of the
// occupancy invariant depends entirely on the lifecycle pairing every link
// mutation with the matching Occupy/Free call inside the same transaction.
type TableRepository interface {
	// Occupy marks the given tables as occupied. Returns a NotFoundError
	// if any id does not resolve under the tenant.
	Occupy(ctx context.Context, tenantID kernel.UUID, tableIDs []kernel.UUID) error

	// Free marks the given tables as free.
	Free(ctx context.Context, tenantID kernel.UUID, tableIDs []kernel.UUID) error

	// Get retrieves one table. Returns a NotFoundError if the id does not
	// resolve under the tenant.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*table.Table, error)
}
