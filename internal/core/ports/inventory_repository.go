package ports

import (
	"context"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
)

// InventoryRepository is the stock store of the inventory ledger. Stock
// mutations are atomic storage-side "subtract N" operations rather than
// read-then-write round trips, so two orders concurrently consuming the
// same ingredient cannot lose an update.
type InventoryRepository interface {
	// DecrementStock atomically subtracts qty from the target's stock
	// counter. With guarded set, the subtraction only applies while it
	// keeps the counter non-negative; applied reports whether it took
	// effect and available carries the level after the call (or the
	// untouched level when the guard refused). Returns a NotFoundError if
	// the target does not resolve under the tenant.
	DecrementStock(
		ctx context.Context,
		tenantID kernel.UUID,
		target inventory.Target,
		qty float64,
		guarded bool,
	) (applied bool, available float64, err error)

	// AdjustStock applies a signed delta to the target's stock counter
	// without any guard and returns the resulting level.
	AdjustStock(
		ctx context.Context,
		tenantID kernel.UUID,
		target inventory.Target,
		delta float64,
	) (newLevel float64, err error)

	// AppendMovement appends one audit row to the movement history.
	// Movements are never updated or deleted.
	AppendMovement(ctx context.Context, movement inventory.Movement) error
}
