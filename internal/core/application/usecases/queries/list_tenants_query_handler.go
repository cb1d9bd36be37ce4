package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTenantsQueryHandler reads all configured tenants from the database.
type ListTenantsQueryHandler struct {
	db *gorm.DB
}

// NewListTenantsQueryHandler creates a handler for tenant listings.
func NewListTenantsQueryHandler(db *gorm.DB) ListTenantsQueryHandler {
	return ListTenantsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListTenantsQueryHandler) Handle(
	ctx context.Context,
	query ListTenantsQuery,
) ([]ListTenantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT tenant_id, stock_policy
		FROM tenant_settings
		ORDER BY tenant_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenants := make([]ListTenantsQueryResponse, 0)
	for rows.Next() {
		var resp ListTenantsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.StockPolicy); err != nil {
			return nil, err
		}

		resp.TenantID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		tenants = append(tenants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tenants, nil
}
