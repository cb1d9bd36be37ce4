package inventory_test

import (
	"testing"
	"time"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockPolicy(t *testing.T) {
	t.Run("should round trip configuration names", func(t *testing.T) {
		testCases := []struct {
			policy inventory.StockPolicy
			name   string
		}{
			{inventory.PolicyStrict, "STRICT"},
			{inventory.PolicyLowWarn, "LOW_WARN"},
			{inventory.PolicyDisabled, "DISABLED"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.name, tc.policy.String())

			parsed, err := inventory.PolicyFromString(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.policy, parsed)
		}
	})

	t.Run("should reject unrecognized configuration values", func(t *testing.T) {
		for _, raw := range []string{"", "strict", "OFF", "UNKNOWN"} {
			parsed, err := inventory.PolicyFromString(raw)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Equal(t, inventory.PolicyUnknown, parsed)
		}
	})

	t.Run("only STRICT should enforce", func(t *testing.T) {
		assert.True(t, inventory.PolicyStrict.Enforces())
		assert.False(t, inventory.PolicyLowWarn.Enforces())
		assert.False(t, inventory.PolicyDisabled.Enforces())
		assert.False(t, inventory.PolicyUnknown.Enforces())
	})

	t.Run("should validate only the three configured modes", func(t *testing.T) {
		require.NoError(t, inventory.PolicyStrict.Validate())
		require.NoError(t, inventory.PolicyLowWarn.Validate())
		require.NoError(t, inventory.PolicyDisabled.Validate())
		require.Error(t, inventory.PolicyUnknown.Validate())
		require.Error(t, inventory.StockPolicy(99).Validate())
	})
}

func TestTarget(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("builders should set the kind", func(t *testing.T) {
		assert.Equal(t, inventory.EntityIngredient, inventory.IngredientTarget(id, "flour").Kind)
		assert.Equal(t, inventory.EntityProduct, inventory.ProductTarget(id, "soda can").Kind)
		assert.Equal(t, inventory.EntityOption, inventory.OptionTarget(id, "extra cheese").Kind)
	})

	t.Run("should validate kind and id", func(t *testing.T) {
		require.NoError(t, inventory.IngredientTarget(id, "flour").Validate())

		var invalid kernel.UUID
		require.Error(t, inventory.IngredientTarget(invalid, "flour").Validate())

		bad := inventory.Target{Kind: inventory.EntityKind("warehouse"), ID: id}
		require.Error(t, bad.Validate())
	})
}

func TestNewMovement(t *testing.T) {
	tenantID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	target := inventory.IngredientTarget(kernel.NewUUID(), "chicken breast")

	t.Run("should create a consumption row linked to its order", func(t *testing.T) {
		orderID := kernel.NewUUID()

		m, err := inventory.NewMovement(
			tenantID, target, -400, inventory.MovementConsumption,
			"order consumption", actorID, &orderID)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		require.NoError(t, m.ID().Validate())
		assert.True(t, m.TenantID().IsEqual(tenantID))
		assert.Equal(t, target, m.Target())
		assert.InDelta(t, -400.0, m.Delta(), 0.001)
		assert.Equal(t, inventory.MovementConsumption, m.Kind())
		assert.Equal(t, "order consumption", m.Reason())
		assert.True(t, m.ActorID().IsEqual(actorID))
		require.NotNil(t, m.OrderID())
		assert.True(t, m.OrderID().IsEqual(orderID))
		assert.WithinDuration(t, time.Now().UTC(), m.LoggedAt(), time.Minute)
	})

	t.Run("should create a manual adjustment without an order", func(t *testing.T) {
		m, err := inventory.NewMovement(
			tenantID, target, 500, inventory.MovementPurchase,
			"weekly delivery", actorID, nil)

		require.NoError(t, err)
		assert.Nil(t, m.OrderID())
	})

	t.Run("should reject a zero delta", func(t *testing.T) {
		_, err := inventory.NewMovement(
			tenantID, target, 0, inventory.MovementAdjustment, "", actorID, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject an invalid kind", func(t *testing.T) {
		_, err := inventory.NewMovement(
			tenantID, target, -1, inventory.MovementKind("theft"), "", actorID, nil)

		require.Error(t, err)
	})

	t.Run("should reject an invalid order id", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := inventory.NewMovement(
			tenantID, target, -1, inventory.MovementConsumption, "", actorID, &invalid)

		require.Error(t, err)
	})

	t.Run("zero value movement should fail validation", func(t *testing.T) {
		var m inventory.Movement

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, inventory.ErrMovementIsNotConstructed, err)
	})
}

func TestIngredient_Level(t *testing.T) {
	restore := func(t *testing.T, current float64) *inventory.Ingredient {
		t.Helper()
		i, err := inventory.RestoreIngredient(
			kernel.NewUUID(), kernel.NewUUID(), "chicken breast",
			current, 1000, 200, "g")
		require.NoError(t, err)
		return i
	}

	t.Run("should classify against both thresholds", func(t *testing.T) {
		assert.Equal(t, inventory.LevelOK, restore(t, 5000).Level())
		assert.Equal(t, inventory.LevelLow, restore(t, 1000).Level())
		assert.Equal(t, inventory.LevelLow, restore(t, 500).Level())
		assert.Equal(t, inventory.LevelCritical, restore(t, 200).Level())
		assert.Equal(t, inventory.LevelCritical, restore(t, -50).Level())
	})

	t.Run("should fail restoration with invalid ids", func(t *testing.T) {
		var invalid kernel.UUID

		i, err := inventory.RestoreIngredient(invalid, kernel.NewUUID(), "flour", 0, 0, 0, "kg")

		require.Error(t, err)
		assert.Nil(t, i)
	})

	t.Run("nil ingredient should fail validation", func(t *testing.T) {
		var i *inventory.Ingredient

		assert.Equal(t, inventory.ErrIngredientIsNotConstructed, i.Validate())
	})
}
