// Package commands contains the lifecycle operations that modify system
// state: creating, editing, merging, re-seating, and closing orders, plus
// manual stock adjustments. It implements the Command pattern for write
// operations in the CQRS architecture.
//
// Every handler follows the same shape: validate the command, resolve the
// per-call context (stock policy, catalog snapshot), then run all mutations
// inside one unit-of-work transaction. Any failure rolls back the whole
// transaction: no compensating logic, no partial commit, no automatic
// retry.
package commands

import (
	"context"

	"comanda/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TableRepoFactory provides access to the table registry within a
	// transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// InventoryRepoFactory provides access to the stock store within a
	// transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// OrderUoW manages transactions for full lifecycle operations, which
	// touch orders, tables, and inventory together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
		InventoryRepoFactory
	}

	// OrderUoWFactory creates new lifecycle unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InventoryUoW manages transactions for inventory-only operations,
	// such as manual stock adjustments.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}
)
