package inventory

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
)

// StockLevel classifies an ingredient's current stock against its
// configured thresholds.
type StockLevel string

const (
	// LevelOK means stock is above the minimum threshold.
	LevelOK StockLevel = "ok"
	// LevelLow means stock is at or below the minimum threshold.
	LevelLow StockLevel = "low"
	// LevelCritical means stock is at or below the critical threshold.
	LevelCritical StockLevel = "critical"
)

// ErrIngredientIsNotConstructed is returned when an Ingredient was not
// created through RestoreIngredient.
var ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via RestoreIngredient")

// Ingredient is a raw material tracked by the inventory ledger. Under the
// STRICT policy its stock never goes negative; under relaxed policies it
// may, but every change is still logged as a Movement.
type Ingredient struct {
	id            kernel.UUID
	tenantID      kernel.UUID
	name          string
	stockCurrent  float64
	stockMin      float64
	stockCritical float64
	unit          string

	isConstructed bool
}

// RestoreIngredient reconstructs an ingredient from persistence.
func RestoreIngredient(
	id kernel.UUID,
	tenantID kernel.UUID,
	name string,
	stockCurrent float64,
	stockMin float64,
	stockCritical float64,
	unit string,
) (*Ingredient, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}

	return &Ingredient{
		id:            id,
		tenantID:      tenantID,
		name:          name,
		stockCurrent:  stockCurrent,
		stockMin:      stockMin,
		stockCritical: stockCritical,
		unit:          unit,
		isConstructed: true,
	}, nil
}

// Validate ensures the Ingredient was created through a factory method.
func (i *Ingredient) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIngredientIsNotConstructed
	}
	return nil
}

// ID returns the ingredient identifier.
func (i *Ingredient) ID() kernel.UUID { return i.id }

// TenantID returns the owning tenant identifier.
func (i *Ingredient) TenantID() kernel.UUID { return i.tenantID }

// Name returns the ingredient name.
func (i *Ingredient) Name() string { return i.name }

// StockCurrent returns the current stock level.
func (i *Ingredient) StockCurrent() float64 { return i.stockCurrent }

// StockMin returns the low-stock threshold.
func (i *Ingredient) StockMin() float64 { return i.stockMin }

// StockCritical returns the critical-stock threshold.
func (i *Ingredient) StockCritical() float64 { return i.stockCritical }

// Unit returns the measurement unit of the stock figures.
func (i *Ingredient) Unit() string { return i.unit }

// Level classifies the current stock against the configured thresholds.
func (i *Ingredient) Level() StockLevel {
	switch {
	case i.stockCurrent <= i.stockCritical:
		return LevelCritical
	case i.stockCurrent <= i.stockMin:
		return LevelLow
	default:
		return LevelOK
	}
}
