// Package orderrepo persists order aggregates: the order header, its line
// items, and its table links map to three tables with explicit DTO↔domain
// conversion on every boundary crossing.
package orderrepo

import (
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order header. Lines and
// table links live in their own tables and are loaded separately.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID        uuid.UUID `gorm:"type:uuid;index:idx_orders_tenant_status"`
	Status          int       `gorm:"index:idx_orders_tenant_status"`
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Subtotal        float64
	Total           float64
	Notes           string
	PaymentMethod   string
	AmountPaid      float64
	Change          float64
	CreatedAt       time.Time
	ClosedAt        *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database representation of one order line. The
// personalization selections ride along as a JSON column: they are only
// ever read back as a whole, never filtered on.
type OrderLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	Quantity    int
	UnitPrice   float64
	ExtraPrice  float64
	LineTotal   float64
	Selections  []SelectionDTO `gorm:"serializer:json;type:jsonb"`
	Notes       string
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// SelectionDTO is the JSON shape of one personalization selection.
type SelectionDTO struct {
	CategoryID uuid.UUID `json:"category_id"`
	OptionID   uuid.UUID `json:"option_id"`
}

// OrderTableLinkDTO links an order to one of the tables it occupies. The
// composite primary key doubles as the uniqueness constraint: the same
// table can never be linked twice to the same order.
type OrderTableLinkDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "order_table_links".
func (OrderTableLinkDTO) TableName() string {
	return "order_table_links"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		TenantID:      aggregate.TenantID().Bytes(),
		Status:        int(aggregate.Status()),
		Subtotal:      aggregate.Subtotal(),
		Total:         aggregate.Total(),
		Notes:         aggregate.Notes(),
		PaymentMethod: aggregate.PaymentMethod(),
		AmountPaid:    aggregate.AmountPaid(),
		Change:        aggregate.Change(),
		CreatedAt:     aggregate.CreatedAt(),
		ClosedAt:      aggregate.ClosedAt(),
	}

	if customer := aggregate.Customer(); customer != nil {
		dto.CustomerName = customer.Name()
		dto.CustomerPhone = customer.Phone()
		dto.CustomerAddress = customer.Address()
	}

	return dto
}

func lineFromDomain(tenantID kernel.UUID, orderID kernel.UUID, line *order.Line) OrderLineDTO {
	selections := make([]SelectionDTO, 0, len(line.Selections()))
	for _, sel := range line.Selections() {
		selections = append(selections, SelectionDTO{
			CategoryID: sel.CategoryID().Bytes(),
			OptionID:   sel.OptionID().Bytes(),
		})
	}

	return OrderLineDTO{
		ID:          line.ID().Bytes(),
		TenantID:    tenantID.Bytes(),
		OrderID:     orderID.Bytes(),
		ProductID:   line.ProductID().Bytes(),
		ProductName: line.ProductName(),
		Quantity:    line.Quantity(),
		UnitPrice:   line.UnitPrice(),
		ExtraPrice:  line.ExtraPrice(),
		LineTotal:   line.Total(),
		Selections:  selections,
		Notes:       line.Notes(),
	}
}

func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	selections := make([]order.Selection, 0, len(dto.Selections))
	for _, sel := range dto.Selections {
		categoryID, catErr := kernel.UUIDFromBytes(sel.CategoryID[:])
		if catErr != nil {
			return nil, catErr
		}
		optionID, optErr := kernel.UUIDFromBytes(sel.OptionID[:])
		if optErr != nil {
			return nil, optErr
		}

		selection, selErr := order.NewSelection(categoryID, optionID)
		if selErr != nil {
			return nil, selErr
		}
		selections = append(selections, selection)
	}

	return order.RestoreLine(
		id,
		productID,
		dto.ProductName,
		dto.Quantity,
		dto.UnitPrice,
		dto.ExtraPrice,
		selections,
		dto.Notes,
	)
}

func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO, linkDTOs []OrderTableLinkDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	tableIDs := make([]kernel.UUID, 0, len(linkDTOs))
	for _, link := range linkDTOs {
		tableID, linkErr := kernel.UUIDFromBytes(link.TableID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		tableIDs = append(tableIDs, tableID)
	}

	var customer *order.CustomerInfo
	if dto.CustomerName != "" {
		c, custErr := order.NewCustomerInfo(dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress)
		if custErr != nil {
			return nil, custErr
		}
		customer = &c
	}

	return order.RestoreOrder(
		id,
		tenantID,
		order.Status(dto.Status),
		tableIDs,
		customer,
		lines,
		dto.Notes,
		dto.PaymentMethod,
		dto.AmountPaid,
		dto.Change,
		dto.CreatedAt,
		dto.ClosedAt,
	)
}
