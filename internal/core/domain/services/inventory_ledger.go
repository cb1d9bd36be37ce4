package services

import (
	"context"
	"fmt"
	"math"

	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

const consumptionReason = "order consumption"

// Ledger implements the inventory consumption algorithm. It holds no
// transaction boundary of its own: every call operates against a stock
// store bound to the caller's unit of work, which commits or rolls back as
// a whole.
//
// Consumption per order item:
//  1. If the item's product carries an ingredient recipe, the product is
//     recipe-managed: each recipe ingredient is decremented by
//     recipe_qty × item_quantity. Recipe consumption takes precedence over
//     the product's own stock counter; a product is never double-charged.
//  2. Every selected personalization option consumes its own ingredient
//     recipe the same way, scaled by item_quantity; an option that is
//     itself directly stocked additionally consumes one unit of its own
//     counter per unit of the parent item.
//  3. An item whose product is not recipe-managed but uses direct inventory
//     consumes the product's own counter by item_quantity.
//
// Under PolicyStrict a decrement that would drive a counter negative fails
// the whole call with an InsufficientStockError; under the relaxed policies
// counters may go negative. Every applied decrement appends exactly one
// movement row.
type Ledger struct{}

// NewLedger creates a new Ledger instance.
func NewLedger() Ledger {
	return Ledger{}
}

// ConsumptionItem is one unit of demand handed to the ledger: a product, the
// quantity to consume for, and the personalization selections that apply.
// On order creation the quantity is the full line quantity; on edits it is
// only the positive delta of the line.
type ConsumptionItem struct {
	ProductID  kernel.UUID
	Quantity   int
	Selections []order.Selection
}

// ConsumptionFromLines derives full-quantity consumption items from priced
// order lines. Used on order creation, where every line is brand new.
func ConsumptionFromLines(lines []*order.Line) []ConsumptionItem {
	items := make([]ConsumptionItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, ConsumptionItem{
			ProductID:  line.ProductID(),
			Quantity:   line.Quantity(),
			Selections: line.Selections(),
		})
	}
	return items
}

// ConsumeOrderItems runs the consumption algorithm for the given demand
// against the store, attributing every movement to orderID and actorID.
// Items with non-positive quantity are skipped, which is how edit deltas
// of unchanged or lowered lines naturally drop out.
func (l Ledger) ConsumeOrderItems(
	ctx context.Context,
	store ports.InventoryRepository,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	orderID kernel.UUID,
	items []ConsumptionItem,
	products map[kernel.UUID]catalog.Product,
	options map[kernel.UUID]catalog.Option,
	policy inventory.StockPolicy,
) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}

		product, ok := products[item.ProductID]
		if !ok {
			return errs.NewValidationErrorWithCause("items",
				fmt.Errorf("product %s does not resolve", item.ProductID))
		}
		qty := float64(item.Quantity)

		if product.RecipeManaged() {
			for _, recipeItem := range product.Recipe {
				target := inventory.IngredientTarget(recipeItem.IngredientID, recipeItem.IngredientName)
				required := recipeItem.Quantity * qty
				if err := l.consume(ctx, store, tenantID, actorID, orderID, target, required, recipeItem.Quantity, policy); err != nil {
					return err
				}
			}
		}

		for _, sel := range item.Selections {
			option, optOk := options[sel.OptionID()]
			if !optOk {
				return errs.NewValidationErrorWithCause("items",
					fmt.Errorf("personalization option %s does not resolve", sel.OptionID()))
			}

			for _, recipeItem := range option.Recipe {
				target := inventory.IngredientTarget(recipeItem.IngredientID, recipeItem.IngredientName)
				required := recipeItem.Quantity * qty
				if err := l.consume(ctx, store, tenantID, actorID, orderID, target, required, recipeItem.Quantity, policy); err != nil {
					return err
				}
			}

			if option.UsesDirectInventory {
				target := inventory.OptionTarget(option.ID, option.Name)
				if err := l.consume(ctx, store, tenantID, actorID, orderID, target, qty, 1, policy); err != nil {
					return err
				}
			}
		}

		if !product.RecipeManaged() && product.UsesDirectInventory {
			target := inventory.ProductTarget(product.ID, product.Name)
			if err := l.consume(ctx, store, tenantID, actorID, orderID, target, qty, 1, policy); err != nil {
				return err
			}
		}
	}

	return nil
}

// EditDeltas computes the consumption demand of an order edit: for each
// resulting line that survives from the previous line set, only the
// positive quantity delta versus its previous quantity; for brand-new
// lines, the full quantity. Removed lines and lowered quantities produce no
// demand; consumed stock is never restocked automatically, since already
// prepared food is not assumed returnable.
func EditDeltas(previous []*order.Line, resulting []*order.Line) []ConsumptionItem {
	previousByID := make(map[kernel.UUID]*order.Line, len(previous))
	for _, line := range previous {
		previousByID[line.ID()] = line
	}

	items := make([]ConsumptionItem, 0, len(resulting))
	for _, line := range resulting {
		quantity := line.Quantity()
		if before, ok := previousByID[line.ID()]; ok {
			quantity = line.Quantity() - before.Quantity()
		}
		if quantity <= 0 {
			continue
		}
		items = append(items, ConsumptionItem{
			ProductID:  line.ProductID(),
			Quantity:   quantity,
			Selections: line.Selections(),
		})
	}

	return items
}

// AdjustStock is the manual inventory path: it applies a signed delta to
// one stocked entity and logs the matching movement row. Transactionality
// comes from the store handle, as with consumption.
func (Ledger) AdjustStock(
	ctx context.Context,
	store ports.InventoryRepository,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	target inventory.Target,
	delta float64,
	kind inventory.MovementKind,
	reason string,
) (float64, error) {
	newLevel, err := store.AdjustStock(ctx, tenantID, target, delta)
	if err != nil {
		return 0, err
	}

	movement, err := inventory.NewMovement(tenantID, target, delta, kind, reason, actorID, nil)
	if err != nil {
		return 0, err
	}
	if err = store.AppendMovement(ctx, movement); err != nil {
		return 0, err
	}

	return newLevel, nil
}

// consume performs one guarded decrement plus its movement row. perUnit is
// the amount one unit of the parent item requires, used to suggest how many
// units the caller would have to drop to fit the available stock.
func (Ledger) consume(
	ctx context.Context,
	store ports.InventoryRepository,
	tenantID kernel.UUID,
	actorID kernel.UUID,
	orderID kernel.UUID,
	target inventory.Target,
	required float64,
	perUnit float64,
	policy inventory.StockPolicy,
) error {
	applied, available, err := store.DecrementStock(ctx, tenantID, target, required, policy.Enforces())
	if err != nil {
		return err
	}

	if !applied {
		reduction := int(math.Ceil((required - available) / perUnit))
		return errs.NewInsufficientStockError(string(target.Kind), target.Name, required, available, reduction)
	}

	movement, err := inventory.NewMovement(
		tenantID, target, -required, inventory.MovementConsumption, consumptionReason, actorID, &orderID)
	if err != nil {
		return err
	}

	return store.AppendMovement(ctx, movement)
}
