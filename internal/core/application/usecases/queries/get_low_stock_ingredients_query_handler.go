package queries

import (
	"context"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockIngredientsQueryHandler reads a tenant's depleted ingredients
// from the database. Critical rows sort before merely low ones.
type GetLowStockIngredientsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockIngredientsQueryHandler creates a handler for low-stock
// queries.
func NewGetLowStockIngredientsQueryHandler(db *gorm.DB) GetLowStockIngredientsQueryHandler {
	return GetLowStockIngredientsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetLowStockIngredientsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockIngredientsQuery,
) ([]GetLowStockIngredientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			unit,
			stock_current,
			stock_min,
			stock_critical
		FROM ingredients
		WHERE tenant_id = ? AND stock_current <= stock_min
		ORDER BY (stock_current <= stock_critical) DESC, name
	`, query.TenantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := make([]GetLowStockIngredientsQueryResponse, 0)
	for rows.Next() {
		var resp GetLowStockIngredientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Unit,
			&resp.StockCurrent,
			&resp.StockMin,
			&resp.StockCritical,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.Level = inventory.LevelLow
		if resp.StockCurrent <= resp.StockCritical {
			resp.Level = inventory.LevelCritical
		}

		ingredients = append(ingredients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ingredients, nil
}
