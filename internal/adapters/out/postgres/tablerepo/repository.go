package tablerepo

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/table"
	"comanda/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM. It flips
// occupancy flags in bulk; the lifecycle is responsible for pairing flips
// with link changes in the same transaction.
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

// Add persists a new table.
func (r *GormTableRepository) Add(ctx context.Context, t *table.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Occupy marks the given tables as occupied. Returns a NotFoundError when
// fewer rows match than ids were given.
func (r *GormTableRepository) Occupy(ctx context.Context, tenantID kernel.UUID, tableIDs []kernel.UUID) error {
	return r.setOccupied(ctx, tenantID, tableIDs, true)
}

// Free marks the given tables as free.
func (r *GormTableRepository) Free(ctx context.Context, tenantID kernel.UUID, tableIDs []kernel.UUID) error {
	return r.setOccupied(ctx, tenantID, tableIDs, false)
}

// Get retrieves one table.
func (r *GormTableRepository) Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*table.Table, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto TableDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTableRepository) setOccupied(
	ctx context.Context,
	tenantID kernel.UUID,
	tableIDs []kernel.UUID,
	occupied bool,
) error {
	if len(tableIDs) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(tableIDs))
	for _, id := range tableIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	result := r.db.WithContext(ctx).
		Model(&TableDTO{}).
		Where("id IN ? AND tenant_id = ?", raw, tenantID.Bytes()).
		Update("occupied", occupied)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != int64(len(raw)) {
		return errs.NewNotFoundError("table", "one or more of the requested tables")
	}

	return nil
}
