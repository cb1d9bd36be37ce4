package commands_test

import (
	"context"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/table"
	"comanda/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLines(ctx context.Context, tenantID, orderID kernel.UUID) ([]*order.Line, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Line), args.Error(1)
}

func (m *MockOrderRepository) AddLines(ctx context.Context, tenantID, orderID kernel.UUID, lines []*order.Line) error {
	args := m.Called(ctx, tenantID, orderID, lines)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateLine(ctx context.Context, tenantID, orderID kernel.UUID, line *order.Line) error {
	args := m.Called(ctx, tenantID, orderID, line)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteLines(ctx context.Context, tenantID, orderID kernel.UUID, lineIDs []kernel.UUID) error {
	args := m.Called(ctx, tenantID, orderID, lineIDs)
	return args.Error(0)
}

func (m *MockOrderRepository) ReassignLines(ctx context.Context, tenantID, sourceOrderID, targetOrderID kernel.UUID) error {
	args := m.Called(ctx, tenantID, sourceOrderID, targetOrderID)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceTableLinks(ctx context.Context, tenantID, orderID kernel.UUID, tableIDs []kernel.UUID) error {
	args := m.Called(ctx, tenantID, orderID, tableIDs)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteTableLinks(ctx context.Context, tenantID, orderID kernel.UUID) error {
	args := m.Called(ctx, tenantID, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) TablesExclusiveTo(ctx context.Context, tenantID, orderID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, tenantID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Occupy(ctx context.Context, tenantID kernel.UUID, tableIDs []kernel.UUID) error {
	args := m.Called(ctx, tenantID, tableIDs)
	return args.Error(0)
}

func (m *MockTableRepository) Free(ctx context.Context, tenantID kernel.UUID, tableIDs []kernel.UUID) error {
	args := m.Called(ctx, tenantID, tableIDs)
	return args.Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*table.Table, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) DecrementStock(
	ctx context.Context,
	tenantID kernel.UUID,
	target inventory.Target,
	qty float64,
	guarded bool,
) (bool, float64, error) {
	args := m.Called(ctx, tenantID, target, qty, guarded)
	return args.Bool(0), args.Get(1).(float64), args.Error(2)
}

func (m *MockInventoryRepository) AdjustStock(
	ctx context.Context,
	tenantID kernel.UUID,
	target inventory.Target,
	delta float64,
) (float64, error) {
	args := m.Called(ctx, tenantID, target, delta)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockInventoryRepository) AppendMovement(ctx context.Context, movement inventory.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetProducts(
	ctx context.Context,
	tenantID kernel.UUID,
	ids []kernel.UUID,
) (map[kernel.UUID]catalog.Product, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]catalog.Product), args.Error(1)
}

func (m *MockCatalogReader) GetOptions(
	ctx context.Context,
	tenantID kernel.UUID,
	ids []kernel.UUID,
) (map[kernel.UUID]catalog.Option, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]catalog.Option), args.Error(1)
}

type MockTenantConfigReader struct{ mock.Mock }

func (m *MockTenantConfigReader) GetStockPolicy(ctx context.Context, tenantID kernel.UUID) (inventory.StockPolicy, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(inventory.StockPolicy), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockOrderUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInventoryUoW struct{ mock.Mock }

func (m *MockInventoryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}
