// Package tablerepo persists the table registry: one row per physical
// table with its hall and occupancy flag.
package tablerepo

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO is the database representation of one table.
type TableDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	Hall     string
	Occupied bool
}

// TableName overrides GORM's default naming to use "tables".
func (TableDTO) TableName() string {
	return "tables"
}

func fromDomain(t *table.Table) TableDTO {
	return TableDTO{
		ID:       t.ID().Bytes(),
		TenantID: t.TenantID().Bytes(),
		Hall:     t.Hall(),
		Occupied: t.Occupied(),
	}
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, tenantID, dto.Hall, dto.Occupied)
}
