package order

import (
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// the NewLine or RestoreLine factory methods.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product entry within an order: a product, a quantity, the unit
// price resolved at ordering time, the personalization extras selected for
// it, and the resulting line total.
//
// A Line is owned by exactly one Order while that order is mutable. Its
// total is always quantity × (unit price + personalization extra); callers
// never set the total directly.
type Line struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   float64
	extraPrice  float64
	lineTotal   float64
	selections  []Selection
	notes       string

	isConstructed bool
}

// NewLine creates a priced order line. The extra price is the per-unit sum
// of the selected personalization options; the line total is derived, not
// supplied.
func NewLine(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice float64,
	extraPrice float64,
	selections []Selection,
	notes string,
) (*Line, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValidationErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 || extraPrice < 0 {
		return nil, errs.NewValidationError("price must not be negative")
	}
	for _, sel := range selections {
		if err := sel.Validate(); err != nil {
			return nil, err
		}
	}

	return &Line{
		id:            id,
		productID:     productID,
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		extraPrice:    extraPrice,
		lineTotal:     float64(quantity) * (unitPrice + extraPrice),
		selections:    selections,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// RestoreLine reconstructs a line from persistence, revalidating its
// invariants. The total is recomputed from the stored quantity and prices.
func RestoreLine(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice float64,
	extraPrice float64,
	selections []Selection,
	notes string,
) (*Line, error) {
	return NewLine(id, productID, productName, quantity, unitPrice, extraPrice, selections, notes)
}

// Validate ensures the Line was created through a factory method.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (l *Line) ID() kernel.UUID { return l.id }

// ProductID returns the identifier of the ordered product.
func (l *Line) ProductID() kernel.UUID { return l.productID }

// ProductName returns the product name captured at ordering time.
func (l *Line) ProductName() string { return l.productName }

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int { return l.quantity }

// UnitPrice returns the product price per unit at ordering time.
func (l *Line) UnitPrice() float64 { return l.unitPrice }

// ExtraPrice returns the per-unit personalization surcharge.
func (l *Line) ExtraPrice() float64 { return l.extraPrice }

// Total returns quantity × (unit price + extra price).
func (l *Line) Total() float64 { return l.lineTotal }

// Selections returns the personalization selections of the line.
func (l *Line) Selections() []Selection { return l.selections }

// Notes returns the free-form kitchen notes of the line.
func (l *Line) Notes() string { return l.notes }
