package order

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
)

// ErrSelectionIsNotConstructed is returned when a Selection was not created
// through the NewSelection factory method.
var ErrSelectionIsNotConstructed = errors.New("Selection must be created via NewSelection constructor")

// Selection is a value object pairing a personalization category with the
// option chosen in it, for example {category: "cooking point", option:
// "medium rare"}. Selections are modeled as an explicit tagged list rather
// than an open map so downstream pricing and inventory code never needs to
// sniff payload shapes.
type Selection struct {
	categoryID kernel.UUID
	optionID   kernel.UUID

	guard kernel.ConstructorGuard
}

// NewSelection creates a validated Selection.
// Both the category and the option identifier must be valid UUIDs.
func NewSelection(categoryID kernel.UUID, optionID kernel.UUID) (Selection, error) {
	if err := errors.Join(categoryID.Validate(), optionID.Validate()); err != nil {
		return Selection{}, err
	}

	return Selection{
		categoryID: categoryID,
		optionID:   optionID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Selection was created through the constructor.
func (s Selection) Validate() error {
	return s.guard.Validate(ErrSelectionIsNotConstructed)
}

// CategoryID returns the personalization category identifier.
func (s Selection) CategoryID() kernel.UUID {
	return s.categoryID
}

// OptionID returns the chosen option identifier.
func (s Selection) OptionID() kernel.UUID {
	return s.optionID
}
