// Package catalogrepo reads product and personalization-option snapshots
// for the order engine. The catalog is a read model here: the order and
// inventory lifecycles consult it but never author it, except for the
// direct stock counters mutated through the inventory ledger.
package catalogrepo

import (
	"github.com/google/uuid"
)

// ProductDTO is the database representation of a sellable product. Stock
// is the product's own counter, meaningful only when UsesDirectInventory
// is set and no recipe rows exist.
type ProductDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID            uuid.UUID `gorm:"type:uuid;index"`
	Name                string
	Price               float64
	UsesDirectInventory bool
	Stock               float64
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// ProductRecipeItemDTO is one ingredient requirement of a product recipe.
type ProductRecipeItemDTO struct {
	ProductID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;index"`
	Quantity     float64
}

// TableName overrides GORM's default naming to use "product_recipe_items".
func (ProductRecipeItemDTO) TableName() string {
	return "product_recipe_items"
}

// OptionDTO is the database representation of a personalization option
// within its category.
type OptionDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID            uuid.UUID `gorm:"type:uuid;index"`
	CategoryID          uuid.UUID `gorm:"type:uuid;index"`
	Name                string
	ExtraPrice          float64
	UsesDirectInventory bool
	Stock               float64
}

// TableName overrides GORM's default naming to use "options".
func (OptionDTO) TableName() string {
	return "options"
}

// OptionRecipeItemDTO is one ingredient requirement of an option recipe.
type OptionRecipeItemDTO struct {
	OptionID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;index"`
	Quantity     float64
}

// TableName overrides GORM's default naming to use "option_recipe_items".
func (OptionRecipeItemDTO) TableName() string {
	return "option_recipe_items"
}
