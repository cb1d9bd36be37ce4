package inventory

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// EntityKind identifies which class of stocked entity a mutation touches.
type EntityKind string

const (
	// EntityIngredient is raw-material stock consumed through recipes.
	EntityIngredient EntityKind = "ingredient"
	// EntityProduct is the own counter of a directly-stocked product.
	EntityProduct EntityKind = "product"
	// EntityOption is the own counter of a directly-stocked
	// personalization option.
	EntityOption EntityKind = "option"
)

// Validate checks that the kind is one of the defined entity kinds.
func (k EntityKind) Validate() error {
	switch k {
	case EntityIngredient, EntityProduct, EntityOption:
		return nil
	default:
		return errs.NewValidationError("entity kind is invalid")
	}
}

// Target identifies one stocked entity. Name is carried along for
// human-readable audit rows and error messages; it plays no role in
// identity.
type Target struct {
	Kind EntityKind
	ID   kernel.UUID
	Name string
}

// Validate checks the target's kind and identifier.
func (t Target) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	return t.ID.Validate()
}

// IngredientTarget builds a Target for an ingredient.
func IngredientTarget(id kernel.UUID, name string) Target {
	return Target{Kind: EntityIngredient, ID: id, Name: name}
}

// ProductTarget builds a Target for a directly-stocked product.
func ProductTarget(id kernel.UUID, name string) Target {
	return Target{Kind: EntityProduct, ID: id, Name: name}
}

// OptionTarget builds a Target for a directly-stocked personalization option.
func OptionTarget(id kernel.UUID, name string) Target {
	return Target{Kind: EntityOption, ID: id, Name: name}
}
