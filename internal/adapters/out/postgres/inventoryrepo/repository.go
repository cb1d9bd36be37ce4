package inventoryrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM. Stock
// mutations are single conditional UPDATE statements with RETURNING, so
// concurrent consumers of the same counter serialize on the row lock
// instead of losing updates through read-then-write races.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// stockTable maps a target kind to the table and column holding its
// counter. Ingredients have a dedicated table; product and option counters
// live on the catalog rows.
func stockTable(kind inventory.EntityKind) (tableName string, column string, err error) {
	switch kind {
	case inventory.EntityIngredient:
		return "ingredients", "stock_current", nil
	case inventory.EntityProduct:
		return "products", "stock", nil
	case inventory.EntityOption:
		return "options", "stock", nil
	default:
		return "", "", errs.NewValidationError("entity kind is invalid")
	}
}

// DecrementStock atomically subtracts qty from the target's counter. With
// guarded set, the subtraction applies only while the counter stays
// non-negative; a refused guard reports the untouched level.
func (r *GormInventoryRepository) DecrementStock(
	ctx context.Context,
	tenantID kernel.UUID,
	target inventory.Target,
	qty float64,
	guarded bool,
) (bool, float64, error) {
	if err := errors.Join(tenantID.Validate(), target.Validate()); err != nil {
		return false, 0, err
	}

	tableName, column, err := stockTable(target.Kind)
	if err != nil {
		return false, 0, err
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s - ? WHERE id = ? AND tenant_id = ? RETURNING %s",
		tableName, column, column, column)
	if guarded {
		query = fmt.Sprintf(
			"UPDATE %s SET %s = %s - ? WHERE id = ? AND tenant_id = ? AND %s >= ? RETURNING %s",
			tableName, column, column, column, column)
	}

	args := []any{qty, target.ID.Bytes(), tenantID.Bytes()}
	if guarded {
		args = append(args, qty)
	}

	var newLevel float64
	row := r.db.WithContext(ctx).Raw(query, args...).Row()
	if scanErr := row.Scan(&newLevel); scanErr != nil {
		if !errors.Is(scanErr, sql.ErrNoRows) {
			return false, 0, scanErr
		}

		// Either the target does not exist or the guard refused. Read the
		// untouched level to tell the two apart.
		available, lookErr := r.currentLevel(ctx, tenantID, target, tableName, column)
		if lookErr != nil {
			return false, 0, lookErr
		}
		return false, available, nil
	}

	return true, newLevel, nil
}

// AdjustStock applies a signed delta without any guard and returns the
// resulting level.
func (r *GormInventoryRepository) AdjustStock(
	ctx context.Context,
	tenantID kernel.UUID,
	target inventory.Target,
	delta float64,
) (float64, error) {
	if err := errors.Join(tenantID.Validate(), target.Validate()); err != nil {
		return 0, err
	}

	tableName, column, err := stockTable(target.Kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + ? WHERE id = ? AND tenant_id = ? RETURNING %s",
		tableName, column, column, column)

	var newLevel float64
	row := r.db.WithContext(ctx).Raw(query, delta, target.ID.Bytes(), tenantID.Bytes()).Row()
	if scanErr := row.Scan(&newLevel); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return 0, errs.NewNotFoundError(string(target.Kind), target.ID.String())
		}
		return 0, scanErr
	}

	return newLevel, nil
}

// AppendMovement appends one audit row to the movement history.
func (r *GormInventoryRepository) AppendMovement(ctx context.Context, movement inventory.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := movementFromDomain(movement)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddIngredient persists a new ingredient with its thresholds.
func (r *GormInventoryRepository) AddIngredient(ctx context.Context, ingredient *inventory.Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}

	dto := ingredientFromDomain(ingredient)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetIngredient retrieves one ingredient.
func (r *GormInventoryRepository) GetIngredient(
	ctx context.Context,
	tenantID kernel.UUID,
	id kernel.UUID,
) (*inventory.Ingredient, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto IngredientDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("ingredient", id.String())
		}
		return nil, err
	}

	return ingredientToDomain(dto)
}

// currentLevel reads a counter without mutating it, failing with a
// NotFoundError when the target does not resolve under the tenant.
func (r *GormInventoryRepository) currentLevel(
	ctx context.Context,
	tenantID kernel.UUID,
	target inventory.Target,
	tableName string,
	column string,
) (float64, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ? AND tenant_id = ?", column, tableName)

	var level float64
	row := r.db.WithContext(ctx).Raw(query, target.ID.Bytes(), tenantID.Bytes()).Row()
	if err := row.Scan(&level); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.NewNotFoundError(string(target.Kind), target.ID.String())
		}
		return 0, err
	}

	return level, nil
}
