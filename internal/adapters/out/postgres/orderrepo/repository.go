package orderrepo

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. Every query
// carries the tenant id as a hard predicate.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// headerColumns are the header fields Update overwrites. Listed explicitly
// so zero values (cleared notes, zero change) survive the round trip.
var headerColumns = []string{
	"status", "subtotal", "total", "notes",
	"payment_method", "amount_paid", "change", "closed_at",
}

// Add persists a new order with its lines and table links.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateConflict(err, "orders")
	}

	if err := r.AddLines(ctx, aggregate.TenantID(), aggregate.ID(), aggregate.Lines()); err != nil {
		return err
	}

	if len(aggregate.TableIDs()) > 0 {
		if err := r.insertTableLinks(ctx, aggregate.TenantID(), aggregate.ID(), aggregate.TableIDs()); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites the header fields of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select(headerColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines and table links.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("order", id.String())
		}
		return nil, err
	}

	var lineDTOs []OrderLineDTO
	err = r.db.WithContext(ctx).
		Order("id").
		Find(&lineDTOs, "order_id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	var linkDTOs []OrderTableLinkDTO
	err = r.db.WithContext(ctx).
		Find(&linkDTOs, "order_id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, lineDTOs, linkDTOs)
}

// GetLines retrieves the current line set of an order.
func (r *GormOrderRepository) GetLines(
	ctx context.Context,
	tenantID kernel.UUID,
	orderID kernel.UUID,
) ([]*order.Line, error) {
	var lineDTOs []OrderLineDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&lineDTOs, "order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(lineDTOs))
	for _, dto := range lineDTOs {
		line, lineErr := lineToDomain(dto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// AddLines inserts new line items for an order.
func (r *GormOrderRepository) AddLines(
	ctx context.Context,
	tenantID kernel.UUID,
	orderID kernel.UUID,
	lines []*order.Line,
) error {
	if len(lines) == 0 {
		return nil
	}

	dtos := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, lineFromDomain(tenantID, orderID, line))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return translateConflict(err, "order_lines")
	}
	return nil
}

// UpdateLine overwrites an existing line item.
func (r *GormOrderRepository) UpdateLine(
	ctx context.Context,
	tenantID kernel.UUID,
	orderID kernel.UUID,
	line *order.Line,
) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(tenantID, orderID, line)
	result := r.db.WithContext(ctx).
		Model(&OrderLineDTO{}).
		Where("id = ? AND order_id = ? AND tenant_id = ?", dto.ID, dto.OrderID, dto.TenantID).
		Select("product_id", "product_name", "quantity", "unit_price", "extra_price",
			"line_total", "selections", "notes").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("order line", line.ID().String())
	}

	return nil
}

// DeleteLines removes the identified line items from an order.
func (r *GormOrderRepository) DeleteLines(
	ctx context.Context,
	tenantID kernel.UUID,
	orderID kernel.UUID,
	lineIDs []kernel.UUID,
) error {
	if len(lineIDs) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(lineIDs))
	for _, id := range lineIDs {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Where("id IN ? AND order_id = ? AND tenant_id = ?", raw, orderID.Bytes(), tenantID.Bytes()).
		Delete(&OrderLineDTO{}).Error
}

// ReassignLines moves every line of the source order to the target order.
func (r *GormOrderRepository) ReassignLines(
	ctx context.Context,
	tenantID kernel.UUID,
	sourceOrderID kernel.UUID,
	targetOrderID kernel.UUID,
) error {
	return r.db.WithContext(ctx).
		Model(&OrderLineDTO{}).
		Where("order_id = ? AND tenant_id = ?", sourceOrderID.Bytes(), tenantID.Bytes()).
		Update("order_id", targetOrderID.Bytes()).Error
}

// ReplaceTableLinks swaps the full table link set of an order.
func (r *GormOrderRepository) ReplaceTableLinks(
	ctx context.Context,
	tenantID kernel.UUID,
	orderID kernel.UUID,
	tableIDs []kernel.UUID,
) error {
	if err := r.DeleteTableLinks(ctx, tenantID, orderID); err != nil {
		return err
	}
	return r.insertTableLinks(ctx, tenantID, orderID, tableIDs)
}

// DeleteTableLinks removes every table link of an order.
func (r *GormOrderRepository) DeleteTableLinks(
	ctx context.Context,
	tenantID kernel.UUID,
	orderID kernel.UUID,
) error {
	return r.db.WithContext(ctx).
		Where("order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).
		Delete(&OrderTableLinkDTO{}).Error
}

// TablesExclusiveTo returns the order's linked tables that no other active
// order is linked to.
func (r *GormOrderRepository) TablesExclusiveTo(
	ctx context.Context,
	tenantID kernel.UUID,
	orderID kernel.UUID,
) ([]kernel.UUID, error) {
	statuses := make([]int, 0, len(order.ActiveStatuses()))
	for _, s := range order.ActiveStatuses() {
		statuses = append(statuses, int(s))
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT l.table_id
		FROM order_table_links l
		WHERE l.tenant_id = ? AND l.order_id = ?
		AND NOT EXISTS (
			SELECT 1
			FROM order_table_links other
			JOIN orders o ON o.id = other.order_id
			WHERE other.table_id = l.table_id
			  AND other.order_id <> l.order_id
			  AND o.status IN ?
		)
	`, tenantID.Bytes(), orderID.Bytes(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tableIDs := make([]kernel.UUID, 0)
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		tableIDs = append(tableIDs, tableID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tableIDs, nil
}

// Delete removes the order row with its remaining lines and links.
func (r *GormOrderRepository) Delete(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).
		Delete(&OrderLineDTO{}).Error
	if err != nil {
		return err
	}

	if err = r.DeleteTableLinks(ctx, tenantID, id); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("order", id.String())
	}

	return nil
}

func (r *GormOrderRepository) insertTableLinks(
	ctx context.Context,
	tenantID kernel.UUID,
	orderID kernel.UUID,
	tableIDs []kernel.UUID,
) error {
	links := make([]OrderTableLinkDTO, 0, len(tableIDs))
	for _, tableID := range tableIDs {
		links = append(links, OrderTableLinkDTO{
			OrderID:  orderID.Bytes(),
			TableID:  tableID.Bytes(),
			TenantID: tenantID.Bytes(),
		})
	}

	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return translateConflict(err, "order_table_links")
	}
	return nil
}

// translateConflict maps GORM's duplicated-key translation onto the typed
// conflict error of the taxonomy.
func translateConflict(err error, resource string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictError(resource)
	}
	return err
}
