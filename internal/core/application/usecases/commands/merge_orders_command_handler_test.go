package commands_test

import (
	"log/slog"
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

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestMergeOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	product, _ := chickenPlateFixture()
	tenantID := kernel.NewUUID()
	sourceID := kernel.NewUUID()
	targetID := kernel.NewUUID()
	sourceTable := kernel.NewUUID()

	sourceLine := restoredLine(t, product, 2)
	source, err := order.RestoreOrder(
		sourceID, tenantID, order.Pending,
		[]kernel.UUID{sourceTable}, nil,
		[]*order.Line{sourceLine}, "", "", 0, 0, time.Now().UTC(), nil)
	require.NoError(t, err)

	targetLine := restoredLine(t, product, 1)
	target := restoredDineInOrder(t, targetID, tenantID, order.Preparing, []*order.Line{targetLine})

	cmd, err := commands.NewMergeOrdersCommand(sourceID, targetID, tenantID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, sourceID).Return(source, nil).Once(),
		orderRepo.On("Get", ctx, tenantID, targetID).Return(target, nil).Once(),
		orderRepo.On("ReassignLines", ctx, tenantID, sourceID, targetID).Return(nil).Once(),
		orderRepo.On("Update", ctx, target).Return(nil).Once(),
		orderRepo.On("TablesExclusiveTo", ctx, tenantID, sourceID).
			Return([]kernel.UUID{sourceTable}, nil).Once(),
		orderRepo.On("DeleteTableLinks", ctx, tenantID, sourceID).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Free", ctx, tenantID, []kernel.UUID{sourceTable}).Return(nil).Once(),
		orderRepo.On("Delete", ctx, tenantID, sourceID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMergeOrdersCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	// Target totals are recomputed from the combined line set.
	require.Len(t, target.Lines(), 2)
	assert.InDelta(t, 3*product.Price, target.Total(), 0.001)

	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMergeOrdersCommandHandler_Handle_ClosedTargetRejected(t *testing.T) {
	ctx := t.Context()
	product, _ := chickenPlateFixture()
	tenantID := kernel.NewUUID()
	sourceID := kernel.NewUUID()
	targetID := kernel.NewUUID()

	source := restoredDineInOrder(t, sourceID, tenantID, order.Pending,
		[]*order.Line{restoredLine(t, product, 1)})
	target := restoredDineInOrder(t, targetID, tenantID, order.Cancelled,
		[]*order.Line{restoredLine(t, product, 1)})

	cmd, err := commands.NewMergeOrdersCommand(sourceID, targetID, tenantID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, tenantID, sourceID).Return(source, nil).Once(),
		orderRepo.On("Get", ctx, tenantID, targetID).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMergeOrdersCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "ReassignLines", ctx, tenantID, sourceID, targetID)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewMergeOrdersCommand_SelfMergeRejected(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewMergeOrdersCommand(id, id, kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
