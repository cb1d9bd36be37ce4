package services

import (
	"fmt"

	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
)

// SubmittedItem is one entry of the item list a caller submits when
// creating or editing an order. LineID is set when the entry refers to an
// existing line of the order being edited and nil for brand-new lines.
type SubmittedItem struct {
	LineID     *kernel.UUID
	ProductID  kernel.UUID
	Quantity   int
	Selections []order.Selection
	Notes      string
}

// CollectCatalogIDs gathers the distinct product and option ids referenced
// by the submitted items, so the catalog can be consulted in one batched
// lookup per id set instead of one round trip per item.
func CollectCatalogIDs(items []SubmittedItem) (productIDs []kernel.UUID, optionIDs []kernel.UUID) {
	seenProducts := make(map[kernel.UUID]struct{})
	seenOptions := make(map[kernel.UUID]struct{})

	for _, item := range items {
		if _, ok := seenProducts[item.ProductID]; !ok {
			seenProducts[item.ProductID] = struct{}{}
			productIDs = append(productIDs, item.ProductID)
		}
		for _, sel := range item.Selections {
			if _, ok := seenOptions[sel.OptionID()]; !ok {
				seenOptions[sel.OptionID()] = struct{}{}
				optionIDs = append(optionIDs, sel.OptionID())
			}
		}
	}

	return productIDs, optionIDs
}

// LineBuilder prices submitted items against a catalog snapshot. It is a
// pure function over the snapshot: no side effects, no storage access.
//
// Each produced line carries the product's current unit price plus the
// per-unit sum of the selected options' extra prices, and
// line_total = quantity × (unit_price + extras). The returned subtotal is
// the sum of all line totals.
type LineBuilder struct{}

// NewLineBuilder creates a new LineBuilder instance.
func NewLineBuilder() LineBuilder {
	return LineBuilder{}
}

// Build turns submitted items into priced order lines and the order
// subtotal. Fails with a ValidationError when the item list is empty or an
// item references a product or option absent from the snapshot.
func (LineBuilder) Build(
	items []SubmittedItem,
	products map[kernel.UUID]catalog.Product,
	options map[kernel.UUID]catalog.Option,
) ([]*order.Line, float64, error) {
	if len(items) == 0 {
		return nil, 0, errs.NewValidationError("items must not be empty")
	}

	lines := make([]*order.Line, 0, len(items))
	var subtotal float64

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, 0, errs.NewValidationErrorWithCause("items",
				fmt.Errorf("product %s does not resolve", item.ProductID))
		}

		var extra float64
		for _, sel := range item.Selections {
			option, optOk := options[sel.OptionID()]
			if !optOk {
				return nil, 0, errs.NewValidationErrorWithCause("items",
					fmt.Errorf("personalization option %s does not resolve", sel.OptionID()))
			}
			extra += option.ExtraPrice
		}

		lineID := kernel.NewUUID()
		if item.LineID != nil {
			lineID = *item.LineID
		}

		line, err := order.NewLine(
			lineID,
			product.ID,
			product.Name,
			item.Quantity,
			product.Price,
			extra,
			item.Selections,
			item.Notes,
		)
		if err != nil {
			return nil, 0, err
		}

		lines = append(lines, line)
		subtotal += line.Total()
	}

	return lines, subtotal, nil
}
