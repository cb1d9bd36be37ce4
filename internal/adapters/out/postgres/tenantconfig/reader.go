// Package tenantconfig resolves per-tenant settings from the database.
package tenantconfig

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantSettingDTO is the database representation of one tenant's
// configuration row.
type TenantSettingDTO struct {
	TenantID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	StockPolicy string
}

// TableName overrides GORM's default naming to use "tenant_settings".
func (TenantSettingDTO) TableName() string {
	return "tenant_settings"
}

// GormTenantConfigReader implements TenantConfigReader using GORM.
type GormTenantConfigReader struct {
	db *gorm.DB
}

// NewGormTenantConfigReader creates a new GORM tenant config reader.
func NewGormTenantConfigReader(db *gorm.DB) *GormTenantConfigReader {
	return &GormTenantConfigReader{db: db}
}

// GetStockPolicy returns the tenant's stock enforcement policy. Tenants
// without a settings row run with PolicyDisabled.
func (r *GormTenantConfigReader) GetStockPolicy(
	ctx context.Context,
	tenantID kernel.UUID,
) (inventory.StockPolicy, error) {
	if err := tenantID.Validate(); err != nil {
		return inventory.PolicyUnknown, err
	}

	var dto TenantSettingDTO
	err := r.db.WithContext(ctx).First(&dto, "tenant_id = ?", tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inventory.PolicyDisabled, nil
		}
		return inventory.PolicyUnknown, err
	}

	return inventory.PolicyFromString(dto.StockPolicy)
}

// SetStockPolicy upserts the tenant's policy. Used by provisioning and
// tests.
func (r *GormTenantConfigReader) SetStockPolicy(
	ctx context.Context,
	tenantID kernel.UUID,
	policy inventory.StockPolicy,
) error {
	if err := errors.Join(tenantID.Validate(), policy.Validate()); err != nil {
		return err
	}

	dto := TenantSettingDTO{TenantID: tenantID.Bytes(), StockPolicy: policy.String()}
	return r.db.WithContext(ctx).Save(&dto).Error
}
