package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads a tenant's live orders from the
// database. Table links are aggregated into one array column per order so
// the whole board is a single round trip.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for live order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by creation time so the
// oldest open order comes first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]int, 0, len(order.ActiveStatuses()))
	for _, s := range order.ActiveStatuses() {
		statuses = append(statuses, int(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.customer_name,
			o.notes,
			o.total,
			o.created_at,
			COUNT(DISTINCT l.id),
			COALESCE(array_agg(DISTINCT t.table_id) FILTER (WHERE t.table_id IS NOT NULL), '{}')
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		LEFT JOIN order_table_links t ON t.order_id = o.id
		WHERE o.tenant_id = ? AND o.status IN ?
		GROUP BY o.id
		ORDER BY o.created_at, o.id
	`, query.TenantID().Bytes(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var status int
		var rawTableIDs pq.StringArray

		err = rows.Scan(
			&id,
			&status,
			&resp.CustomerName,
			&resp.Notes,
			&resp.Total,
			&resp.CreatedAt,
			&resp.LineCount,
			&rawTableIDs,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()

		resp.TableIDs, err = parseUUIDArray(rawTableIDs)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// parseUUIDArray converts a scanned postgres uuid[] column into kernel ids.
func parseUUIDArray(raw pq.StringArray) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
