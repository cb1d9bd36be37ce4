package queries

import (
	"context"
	"database/sql"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler reads one order with its lines from the
// database: one round trip for the header plus table links, one for the
// line set.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle executes the query. Returns a NotFoundError if the order does not
// resolve under the tenant.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	resp, err := h.readHeader(ctx, query)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	resp.Lines, err = h.readLines(ctx, query)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderDetailQueryHandler) readHeader(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	var resp GetOrderDetailQueryResponse
	var id uuid.UUID
	var status int
	var rawTableIDs pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.customer_name,
			o.customer_phone,
			o.customer_address,
			o.notes,
			o.subtotal,
			o.total,
			o.payment_method,
			o.amount_paid,
			o.change,
			o.created_at,
			o.closed_at,
			COALESCE(array_agg(t.table_id) FILTER (WHERE t.table_id IS NOT NULL), '{}')
		FROM orders o
		LEFT JOIN order_table_links t ON t.order_id = o.id
		WHERE o.tenant_id = ? AND o.id = ?
		GROUP BY o.id
	`, query.TenantID().Bytes(), query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&status,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerAddress,
		&resp.Notes,
		&resp.Subtotal,
		&resp.Total,
		&resp.PaymentMethod,
		&resp.AmountPaid,
		&resp.Change,
		&resp.CreatedAt,
		&resp.ClosedAt,
		&rawTableIDs,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDetailQueryResponse{}, errs.NewNotFoundError("order", query.OrderID().String())
		}
		return GetOrderDetailQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()

	resp.TableIDs, err = parseUUIDArray(rawTableIDs)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderDetailQueryHandler) readLines(
	ctx context.Context,
	query GetOrderDetailQuery,
) ([]OrderLineDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			quantity,
			unit_price,
			extra_price,
			line_total,
			notes
		FROM order_lines
		WHERE tenant_id = ? AND order_id = ?
		ORDER BY id
	`, query.TenantID().Bytes(), query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineDetail, 0)
	for rows.Next() {
		var line OrderLineDetail
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&line.ProductName,
			&line.Quantity,
			&line.UnitPrice,
			&line.ExtraPrice,
			&line.LineTotal,
			&line.Notes,
		)
		if err != nil {
			return nil, err
		}

		line.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		line.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
