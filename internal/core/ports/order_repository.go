// Package ports defines the persistence and integration contracts between
// the domain/application layers and infrastructure. Every method that reads
// or writes tenant data takes the tenant identifier as a hard predicate:
// no implementation may touch a row of a different tenant.
package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// their line items, and their table links.
type OrderRepository interface {
	// Add persists a new order aggregate: header, line items, and table
	// links in one go.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's header fields:
	// status, totals, notes, payment fields, closing timestamp. Lines and
	// table links are maintained through the dedicated methods.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines and linked table ids.
	// Returns a NotFoundError if the id does not resolve under the tenant.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*order.Order, error)

	// GetLines retrieves the current line set of an order.
	GetLines(ctx context.Context, tenantID kernel.UUID, orderID kernel.UUID) ([]*order.Line, error)

	// AddLines inserts new line items for an order.
	AddLines(ctx context.Context, tenantID kernel.UUID, orderID kernel.UUID, lines []*order.Line) error

	// UpdateLine overwrites an existing line item (quantity, prices,
	// selections, notes) identified by its line id.
	UpdateLine(ctx context.Context, tenantID kernel.UUID, orderID kernel.UUID, line *order.Line) error

	// DeleteLines removes the identified line items from an order.
	DeleteLines(ctx context.Context, tenantID kernel.UUID, orderID kernel.UUID, lineIDs []kernel.UUID) error

	// ReassignLines moves every line of the source order to the target
	// order by rewriting the owning order id. Lines are moved, not copied:
	// line ids survive.
	ReassignLines(ctx context.Context, tenantID kernel.UUID, sourceOrderID kernel.UUID, targetOrderID kernel.UUID) error

	// ReplaceTableLinks deletes every table link of the order and inserts
	// links to the given tables. A duplicate link surfaces as a
	// ConflictError.
	ReplaceTableLinks(ctx context.Context, tenantID kernel.UUID, orderID kernel.UUID, tableIDs []kernel.UUID) error

	// DeleteTableLinks removes every table link of the order.
	DeleteTableLinks(ctx context.Context, tenantID kernel.UUID, orderID kernel.UUID) error

	// TablesExclusiveTo returns the ids of tables linked to the order that
	// are not linked to any other order in an active status. These are the
	// tables that become free when the order releases them.
	TablesExclusiveTo(ctx context.Context, tenantID kernel.UUID, orderID kernel.UUID) ([]kernel.UUID, error)

	// Delete removes the order row with its remaining lines and links.
	// Used only by the merge operation's source side.
	Delete(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) error
}
