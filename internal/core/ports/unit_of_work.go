package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each lifecycle
// call. This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents the transaction boundary of one lifecycle call.
// Every order mutation, table occupancy flip, stock decrement, and movement
// row of a call happens inside the same transaction: the call either fully
// commits or fully rolls back, with no partially visible state.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// TableRepository returns a TableRepository bound to the current
	// transaction.
	TableRepository() TableRepository

	// InventoryRepository returns an InventoryRepository bound to the
	// current transaction.
	InventoryRepository() InventoryRepository
}
