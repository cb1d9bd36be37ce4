package services_test

import (
	"testing"

	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectCatalogIDs(t *testing.T) {
	productA := kernel.NewUUID()
	productB := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	optionA := kernel.NewUUID()
	optionB := kernel.NewUUID()

	selection := func(t *testing.T, optionID kernel.UUID) order.Selection {
		t.Helper()
		sel, err := order.NewSelection(categoryID, optionID)
		require.NoError(t, err)
		return sel
	}

	t.Run("should deduplicate products and options", func(t *testing.T) {
		items := []services.SubmittedItem{
			{ProductID: productA, Quantity: 1, Selections: []order.Selection{selection(t, optionA)}},
			{ProductID: productA, Quantity: 2, Selections: []order.Selection{selection(t, optionA), selection(t, optionB)}},
			{ProductID: productB, Quantity: 1},
		}

		productIDs, optionIDs := services.CollectCatalogIDs(items)

		assert.Equal(t, []kernel.UUID{productA, productB}, productIDs)
		assert.Equal(t, []kernel.UUID{optionA, optionB}, optionIDs)
	})

	t.Run("should return empty slices for no items", func(t *testing.T) {
		productIDs, optionIDs := services.CollectCatalogIDs(nil)

		assert.Empty(t, productIDs)
		assert.Empty(t, optionIDs)
	})
}

func TestLineBuilder_Build(t *testing.T) {
	builder := services.NewLineBuilder()

	productID := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	optionID := kernel.NewUUID()

	products := map[kernel.UUID]catalog.Product{
		productID: {ID: productID, Name: "Grilled Chicken Plate", Price: 12.5},
	}
	options := map[kernel.UUID]catalog.Option{
		optionID: {ID: optionID, CategoryID: categoryID, Name: "extra cheese", ExtraPrice: 1.5},
	}

	selection := func(t *testing.T) order.Selection {
		t.Helper()
		sel, err := order.NewSelection(categoryID, optionID)
		require.NoError(t, err)
		return sel
	}

	t.Run("should price lines from the snapshot", func(t *testing.T) {
		items := []services.SubmittedItem{
			{ProductID: productID, Quantity: 2, Selections: []order.Selection{selection(t)}, Notes: "well done"},
		}

		lines, subtotal, err := builder.Build(items, products, options)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "Grilled Chicken Plate", lines[0].ProductName())
		assert.Equal(t, 2, lines[0].Quantity())
		assert.InDelta(t, 12.5, lines[0].UnitPrice(), 0.001)
		assert.InDelta(t, 1.5, lines[0].ExtraPrice(), 0.001)
		assert.InDelta(t, 28.0, lines[0].Total(), 0.001)
		assert.InDelta(t, 28.0, subtotal, 0.001)
		assert.Equal(t, "well done", lines[0].Notes())
	})

	t.Run("should keep the submitted line id on edited lines", func(t *testing.T) {
		existingLineID := kernel.NewUUID()
		items := []services.SubmittedItem{
			{LineID: &existingLineID, ProductID: productID, Quantity: 1},
		}

		lines, _, err := builder.Build(items, products, options)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].ID().IsEqual(existingLineID))
	})

	t.Run("should mint a fresh id for new lines", func(t *testing.T) {
		items := []services.SubmittedItem{{ProductID: productID, Quantity: 1}}

		lines, _, err := builder.Build(items, products, options)

		require.NoError(t, err)
		require.NoError(t, lines[0].ID().Validate())
	})

	t.Run("should sum subtotal across lines", func(t *testing.T) {
		items := []services.SubmittedItem{
			{ProductID: productID, Quantity: 2},                                              // 25.00
			{ProductID: productID, Quantity: 1, Selections: []order.Selection{selection(t)}}, // 14.00
		}

		_, subtotal, err := builder.Build(items, products, options)

		require.NoError(t, err)
		assert.InDelta(t, 39.0, subtotal, 0.001)
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		lines, _, err := builder.Build(nil, products, options)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, lines)
	})

	t.Run("should fail for an unresolved product", func(t *testing.T) {
		items := []services.SubmittedItem{{ProductID: kernel.NewUUID(), Quantity: 1}}

		_, _, err := builder.Build(items, products, options)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "does not resolve")
	})

	t.Run("should fail for an unresolved option", func(t *testing.T) {
		badSel, err := order.NewSelection(categoryID, kernel.NewUUID())
		require.NoError(t, err)
		items := []services.SubmittedItem{
			{ProductID: productID, Quantity: 1, Selections: []order.Selection{badSel}},
		}

		_, _, buildErr := builder.Build(items, products, options)

		require.Error(t, buildErr)
		require.ErrorIs(t, buildErr, errs.ErrValidation)
	})

	t.Run("should fail for non-positive quantity", func(t *testing.T) {
		items := []services.SubmittedItem{{ProductID: productID, Quantity: 0}}

		_, _, err := builder.Build(items, products, options)

		require.Error(t, err)
	})
}
