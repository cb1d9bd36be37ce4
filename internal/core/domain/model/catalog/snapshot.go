// Package catalog defines the read-model snapshots the order engine
// consumes from the product catalog: products with their prices and
// ingredient recipes, and personalization options with their price deltas.
//
// The engine never writes to the catalog; snapshots are fetched in one
// batched lookup per lifecycle call and treated as immutable for the
// duration of that call.
package catalog

import (
	"comanda/internal/core/domain/model/kernel"
)

// RecipeItem is one fixed per-unit ingredient requirement of a product or
// personalization option.
type RecipeItem struct {
	IngredientID   kernel.UUID
	IngredientName string
	Quantity       float64
}

// Product is the catalog snapshot of a sellable product at the moment of a
// lifecycle call.
//
// A product with a non-empty Recipe is recipe-managed: ordering it consumes
// its ingredients and never its own Stock counter. A product with an empty
// Recipe and UsesDirectInventory set consumes its own Stock counter
// directly. A product with neither is not inventory-tracked at all.
type Product struct {
	ID                  kernel.UUID
	Name                string
	Price               float64
	Recipe              []RecipeItem
	UsesDirectInventory bool
	Stock               float64
}

// RecipeManaged reports whether ordering this product consumes ingredients
// through its recipe.
func (p Product) RecipeManaged() bool {
	return len(p.Recipe) > 0
}

// Option is the catalog snapshot of a personalization option. An option may
// carry its own ingredient recipe, its own direct stock counter, or both;
// one unit of the option is consumed per unit of the parent line.
type Option struct {
	ID                  kernel.UUID
	CategoryID          kernel.UUID
	Name                string
	ExtraPrice          float64
	Recipe              []RecipeItem
	UsesDirectInventory bool
	Stock               float64
}
