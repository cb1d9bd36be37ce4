package commands_test

import (
	"testing"
	"time"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeTablesCommandHandler_Handle_FullReplace(t *testing.T) {
	ctx := t.Context()
	product, _ := chickenPlateFixture()
	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	tableOne := kernel.NewUUID()
	tableTwo := kernel.NewUUID()
	tableFive := kernel.NewUUID()

	line := restoredLine(t, product, 1)
	existing, err := order.RestoreOrder(
		orderID, tenantID, order.Pending,
		[]kernel.UUID{tableOne, tableTwo}, nil,
		[]*order.Line{line}, "", "", 0, 0, time.Now().UTC(), nil)
	require.NoError(t, err)

	cmd, err := commands.NewChangeTablesCommand(orderID, tenantID, kernel.NewUUID(), []kernel.UUID{tableFive})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, orderID).Return(existing, nil).Once(),
		orderRepo.On("TablesExclusiveTo", ctx, tenantID, orderID).
			Return([]kernel.UUID{tableOne, tableTwo}, nil).Once(),
		orderRepo.On("ReplaceTableLinks", ctx, tenantID, orderID, []kernel.UUID{tableFive}).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Free", ctx, tenantID, []kernel.UUID{tableOne, tableTwo}).Return(nil).Once(),
		tableRepo.On("Occupy", ctx, tenantID, []kernel.UUID{tableFive}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTablesCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeTablesCommandHandler_Handle_SharedTableStaysOccupied(t *testing.T) {
	ctx := t.Context()
	product, _ := chickenPlateFixture()
	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	sharedTable := kernel.NewUUID()
	ownTable := kernel.NewUUID()
	newTable := kernel.NewUUID()

	line := restoredLine(t, product, 1)
	existing, err := order.RestoreOrder(
		orderID, tenantID, order.Ready,
		[]kernel.UUID{sharedTable, ownTable}, nil,
		[]*order.Line{line}, "", "", 0, 0, time.Now().UTC(), nil)
	require.NoError(t, err)

	cmd, err := commands.NewChangeTablesCommand(orderID, tenantID, kernel.NewUUID(), []kernel.UUID{newTable})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, orderID).Return(existing, nil).Once(),
		// sharedTable is linked to another live order, so it is not
		// releasable and must not be freed.
		orderRepo.On("TablesExclusiveTo", ctx, tenantID, orderID).
			Return([]kernel.UUID{ownTable}, nil).Once(),
		orderRepo.On("ReplaceTableLinks", ctx, tenantID, orderID, []kernel.UUID{newTable}).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Free", ctx, tenantID, []kernel.UUID{ownTable}).Return(nil).Once(),
		tableRepo.On("Occupy", ctx, tenantID, []kernel.UUID{newTable}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTablesCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	tableRepo.AssertExpectations(t)
	tableRepo.AssertNotCalled(t, "Free", ctx, tenantID, []kernel.UUID{sharedTable})
}

func TestChangeTablesCommandHandler_Handle_DeliveryOrderRejected(t *testing.T) {
	ctx := t.Context()
	product, _ := chickenPlateFixture()
	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	customer, err := order.NewCustomerInfo("Ada", "", "")
	require.NoError(t, err)
	line := restoredLine(t, product, 1)
	delivery, err := order.RestoreOrder(
		orderID, tenantID, order.Pending,
		nil, &customer,
		[]*order.Line{line}, "", "", 0, 0, time.Now().UTC(), nil)
	require.NoError(t, err)

	cmd, err := commands.NewChangeTablesCommand(orderID, tenantID, kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, orderID).Return(delivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTablesCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewChangeTablesCommand_NoTables(t *testing.T) {
	_, err := commands.NewChangeTablesCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
