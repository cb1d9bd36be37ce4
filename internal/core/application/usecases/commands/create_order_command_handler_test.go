package commands_test

import (
	"testing"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/services"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// chickenPlateFixture is a recipe-managed product: one plate consumes 200g
// of chicken breast.
func chickenPlateFixture() (catalog.Product, kernel.UUID) {
	ingredientID := kernel.NewUUID()
	product := catalog.Product{
		ID:    kernel.NewUUID(),
		Name:  "Grilled Chicken Plate",
		Price: 12.5,
		Recipe: []catalog.RecipeItem{
			{IngredientID: ingredientID, IngredientName: "chicken breast", Quantity: 200},
		},
	}
	return product, ingredientID
}

func TestCreateOrderCommandHandler_Handle_DineInSuccess(t *testing.T) {
	ctx := t.Context()
	product, ingredientID := chickenPlateFixture()
	tenantID := kernel.NewUUID()
	tableID := kernel.NewUUID()

	cmd, err := commands.NewCreateDineInOrderCommand(
		kernel.NewUUID(), tenantID, kernel.NewUUID(),
		[]services.SubmittedItem{{ProductID: product.ID, Quantity: 2}},
		[]kernel.UUID{tableID}, "")
	require.NoError(t, err)

	tenantConfig := new(MockTenantConfigReader)
	tenantConfig.On("GetStockPolicy", ctx, tenantID).Return(inventory.PolicyStrict, nil).Once()

	catalogReader := new(MockCatalogReader)
	catalogReader.On("GetProducts", ctx, tenantID, []kernel.UUID{product.ID}).
		Return(map[kernel.UUID]catalog.Product{product.ID: product}, nil).Once()
	catalogReader.On("GetOptions", ctx, tenantID, []kernel.UUID(nil)).
		Return(map[kernel.UUID]catalog.Option{}, nil).Once()

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	invRepo := new(MockInventoryRepository)
	target := inventory.IngredientTarget(ingredientID, "chicken breast")

	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(invRepo).Once(),
		invRepo.On("DecrementStock", ctx, tenantID, target, 400.0, true).Return(true, 600.0, nil).Once(),
		invRepo.On("AppendMovement", ctx, mock.AnythingOfType("inventory.Movement")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Occupy", ctx, tenantID, []kernel.UUID{tableID}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalogReader, tenantConfig)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	invRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStockRollsBack(t *testing.T) {
	ctx := t.Context()
	product, ingredientID := chickenPlateFixture()
	tenantID := kernel.NewUUID()

	// Four plates need 800g but only 400g remains: the guarded decrement
	// refuses and the whole transaction rolls back untouched.
	cmd, err := commands.NewCreateDineInOrderCommand(
		kernel.NewUUID(), tenantID, kernel.NewUUID(),
		[]services.SubmittedItem{{ProductID: product.ID, Quantity: 4}},
		[]kernel.UUID{kernel.NewUUID()}, "")
	require.NoError(t, err)

	tenantConfig := new(MockTenantConfigReader)
	tenantConfig.On("GetStockPolicy", ctx, tenantID).Return(inventory.PolicyStrict, nil).Once()

	catalogReader := new(MockCatalogReader)
	catalogReader.On("GetProducts", ctx, tenantID, []kernel.UUID{product.ID}).
		Return(map[kernel.UUID]catalog.Product{product.ID: product}, nil).Once()
	catalogReader.On("GetOptions", ctx, tenantID, []kernel.UUID(nil)).
		Return(map[kernel.UUID]catalog.Option{}, nil).Once()

	invRepo := new(MockInventoryRepository)
	target := inventory.IngredientTarget(ingredientID, "chicken breast")

	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(invRepo).Once(),
		invRepo.On("DecrementStock", ctx, tenantID, target, 800.0, true).Return(false, 400.0, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalogReader, tenantConfig)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var stockErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "ingredient", stockErr.EntityKind)
	assert.Equal(t, "chicken breast", stockErr.EntityName)
	assert.InDelta(t, 800, stockErr.Required, 0.001)
	assert.InDelta(t, 400, stockErr.Available, 0.001)
	assert.Equal(t, 2, stockErr.SuggestedReduction)

	invRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_RelaxedPolicyNeverBlocks(t *testing.T) {
	ctx := t.Context()
	product, ingredientID := chickenPlateFixture()
	tenantID := kernel.NewUUID()

	cmd, err := commands.NewCreateDineInOrderCommand(
		kernel.NewUUID(), tenantID, kernel.NewUUID(),
		[]services.SubmittedItem{{ProductID: product.ID, Quantity: 4}},
		[]kernel.UUID{kernel.NewUUID()}, "")
	require.NoError(t, err)

	tenantConfig := new(MockTenantConfigReader)
	tenantConfig.On("GetStockPolicy", ctx, tenantID).Return(inventory.PolicyLowWarn, nil).Once()

	catalogReader := new(MockCatalogReader)
	catalogReader.On("GetProducts", ctx, tenantID, []kernel.UUID{product.ID}).
		Return(map[kernel.UUID]catalog.Product{product.ID: product}, nil).Once()
	catalogReader.On("GetOptions", ctx, tenantID, []kernel.UUID(nil)).
		Return(map[kernel.UUID]catalog.Option{}, nil).Once()

	invRepo := new(MockInventoryRepository)
	target := inventory.IngredientTarget(ingredientID, "chicken breast")

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(invRepo).Once(),
		// Unguarded: the counter goes negative and the order proceeds.
		invRepo.On("DecrementStock", ctx, tenantID, target, 800.0, false).Return(true, -400.0, nil).Once(),
		invRepo.On("AppendMovement", ctx, mock.AnythingOfType("inventory.Movement")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Occupy", ctx, tenantID, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, catalogReader, tenantConfig)
	require.NoError(t, h.Handle(ctx, cmd))
	invRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnresolvedProduct(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateDineInOrderCommand(
		kernel.NewUUID(), tenantID, kernel.NewUUID(),
		[]services.SubmittedItem{{ProductID: productID, Quantity: 1}},
		[]kernel.UUID{kernel.NewUUID()}, "")
	require.NoError(t, err)

	tenantConfig := new(MockTenantConfigReader)
	tenantConfig.On("GetStockPolicy", ctx, tenantID).Return(inventory.PolicyDisabled, nil).Once()

	catalogReader := new(MockCatalogReader)
	catalogReader.On("GetProducts", ctx, tenantID, []kernel.UUID{productID}).
		Return(map[kernel.UUID]catalog.Product{}, nil).Once()
	catalogReader.On("GetOptions", ctx, tenantID, []kernel.UUID(nil)).
		Return(map[kernel.UUID]catalog.Option{}, nil).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, catalogReader, tenantConfig)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockCatalogReader), new(MockTenantConfigReader))
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.Error(t, err)
}
