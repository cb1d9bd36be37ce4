// Package table contains the Table entity of the table registry.
// A table's occupied flag is true exactly while the table is linked to at
// least one active order; the pairing of link changes and occupancy changes
// is the responsibility of the order lifecycle.
package table

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
)

// ErrTableIsNotConstructed is returned when a Table was not created through
// a factory method.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

// Table represents one physical table in a tenant's hall.
type Table struct {
	id       kernel.UUID
	tenantID kernel.UUID
	hall     string
	occupied bool

	isConstructed bool
}

// NewTable creates a free table in the given hall.
func NewTable(id kernel.UUID, tenantID kernel.UUID, hall string) (*Table, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}

	return &Table{
		id:            id,
		tenantID:      tenantID,
		hall:          hall,
		isConstructed: true,
	}, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(id kernel.UUID, tenantID kernel.UUID, hall string, occupied bool) (*Table, error) {
	t, err := NewTable(id, tenantID, hall)
	if err != nil {
		return nil, err
	}
	t.occupied = occupied
	return t, nil
}

// Validate ensures the Table was created through a factory method.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table identifier.
func (t *Table) ID() kernel.UUID { return t.id }

// TenantID returns the owning tenant identifier.
func (t *Table) TenantID() kernel.UUID { return t.tenantID }

// Hall returns the hall the table belongs to.
func (t *Table) Hall() string { return t.hall }

// Occupied reports whether the table is currently occupied.
func (t *Table) Occupied() bool { return t.occupied }

// Occupy marks the table as occupied. Occupying an already occupied table
// is a no-op: several orders may share one table.
func (t *Table) Occupy() {
	t.occupied = true
}

// Free marks the table as free.
func (t *Table) Free() {
	t.occupied = false
}
