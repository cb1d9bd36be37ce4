// Package inventoryrepo persists the inventory ledger: ingredient stock
// counters and the append-only movement history. Direct product and option
// counters live on the catalog tables; this package mutates them through
// the same atomic decrement path.
package inventoryrepo

import (
	"time"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// IngredientDTO is the database representation of one raw-material stock
// counter with its alert thresholds.
type IngredientDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Unit          string
	StockCurrent  float64
	StockMin      float64
	StockCritical float64
}

// TableName overrides GORM's default naming to use "ingredients".
func (IngredientDTO) TableName() string {
	return "ingredients"
}

// StockMovementDTO is one append-only audit row. Movements are inserted
// and read, never updated or deleted.
type StockMovementDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index:idx_movements_tenant_entity"`
	EntityKind string    `gorm:"index:idx_movements_tenant_entity"`
	EntityID   uuid.UUID `gorm:"type:uuid;index:idx_movements_tenant_entity"`
	EntityName string
	Delta      float64
	Kind       string
	Reason     string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	OrderID    *uuid.UUID `gorm:"type:uuid;index"`
	LoggedAt   time.Time
}

// TableName overrides GORM's default naming to use "stock_movements".
func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

func ingredientFromDomain(i *inventory.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:            i.ID().Bytes(),
		TenantID:      i.TenantID().Bytes(),
		Name:          i.Name(),
		Unit:          i.Unit(),
		StockCurrent:  i.StockCurrent(),
		StockMin:      i.StockMin(),
		StockCritical: i.StockCritical(),
	}
}

func ingredientToDomain(dto IngredientDTO) (*inventory.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreIngredient(
		id, tenantID, dto.Name, dto.StockCurrent, dto.StockMin, dto.StockCritical, dto.Unit)
}

func movementFromDomain(m inventory.Movement) StockMovementDTO {
	var orderID *uuid.UUID
	if id := m.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return StockMovementDTO{
		ID:         m.ID().Bytes(),
		TenantID:   m.TenantID().Bytes(),
		EntityKind: string(m.Target().Kind),
		EntityID:   m.Target().ID.Bytes(),
		EntityName: m.Target().Name,
		Delta:      m.Delta(),
		Kind:       string(m.Kind()),
		Reason:     m.Reason(),
		ActorID:    m.ActorID().Bytes(),
		OrderID:    orderID,
		LoggedAt:   m.LoggedAt(),
	}
}
