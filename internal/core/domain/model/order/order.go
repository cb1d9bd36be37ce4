package order

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through a factory method. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewDineInOrder, NewDeliveryOrder, or RestoreOrder")

// Order is the aggregate root of a customer's food/drink request. It owns
// its line items and tracks either the tables it occupies (dine-in) or the
// customer it is delivered to.
//
// Order maintains these invariants:
//   - Belongs to exactly one tenant; the tenant never changes.
//   - Subtotal and total always equal the sum of the current lines' totals;
//     they are recomputed from the full line set, never adjusted
//     incrementally.
//   - A dine-in order links at least one table; a delivery order links none
//     and carries customer info instead.
//   - Status transitions follow the Status state machine; payment fields are
//     only stamped by Close.
type Order struct {
	id       kernel.UUID
	tenantID kernel.UUID
	status   Status

	tableIDs []kernel.UUID
	customer *CustomerInfo

	lines    []*Line
	subtotal float64
	total    float64
	notes    string

	paymentMethod string
	amountPaid    float64
	change        float64

	createdAt time.Time
	closedAt  *time.Time

	isConstructed bool
}

// NewDineInOrder creates a pending order linked to one or more tables.
func NewDineInOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	tableIDs []kernel.UUID,
	notes string,
) (*Order, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}
	if len(tableIDs) == 0 {
		return nil, errs.NewValidationError("a dine-in order requires at least one table")
	}
	for _, tableID := range tableIDs {
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		tenantID:      tenantID,
		status:        Pending,
		tableIDs:      tableIDs,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// NewDeliveryOrder creates a pending order addressed to a customer instead
// of tables.
func NewDeliveryOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	customer CustomerInfo,
	notes string,
) (*Order, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), customer.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		tenantID:      tenantID,
		status:        Pending,
		customer:      &customer,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence with its stored state.
// Totals are recomputed from the supplied lines so a drifted stored total
// can never survive a round trip.
func RestoreOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	status Status,
	tableIDs []kernel.UUID,
	customer *CustomerInfo,
	lines []*Line,
	notes string,
	paymentMethod string,
	amountPaid float64,
	change float64,
	createdAt time.Time,
	closedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		tenantID:      tenantID,
		status:        status,
		tableIDs:      tableIDs,
		customer:      customer,
		notes:         notes,
		paymentMethod: paymentMethod,
		amountPaid:    amountPaid,
		change:        change,
		createdAt:     createdAt,
		closedAt:      closedAt,
		isConstructed: true,
	}
	if err := o.SetLines(lines); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// TenantID returns the owning tenant identifier.
func (o *Order) TenantID() kernel.UUID { return o.tenantID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// TableIDs returns the tables currently linked to the order.
func (o *Order) TableIDs() []kernel.UUID { return o.tableIDs }

// Customer returns the delivery customer info, or nil for dine-in orders.
func (o *Order) Customer() *CustomerInfo { return o.customer }

// Lines returns the current line items.
func (o *Order) Lines() []*Line { return o.lines }

// Subtotal returns the sum of the current lines' totals.
func (o *Order) Subtotal() float64 { return o.subtotal }

// Total returns the amount owed for the order.
func (o *Order) Total() float64 { return o.total }

// Notes returns the free-form order notes.
func (o *Order) Notes() string { return o.notes }

// PaymentMethod returns the method stamped by Close, empty until then.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// AmountPaid returns the amount tendered at closing.
func (o *Order) AmountPaid() float64 { return o.amountPaid }

// Change returns the change returned at closing.
func (o *Order) Change() float64 { return o.change }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ClosedAt returns the closing timestamp, or nil while the order is open.
func (o *Order) ClosedAt() *time.Time { return o.closedAt }

// SetLines replaces the order's line set and recomputes subtotal and total
// from scratch. An order that has ever been priced must keep at least one
// line; merging moves lines rather than leaving empty husks behind.
func (o *Order) SetLines(lines []*Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	o.recalculateTotals()
	return nil
}

// SetNotes replaces the order notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// ReplaceTables swaps the full table link set of a dine-in order.
// Occupancy is always fully replaced rather than diffed.
func (o *Order) ReplaceTables(tableIDs []kernel.UUID) error {
	if len(tableIDs) == 0 {
		return errs.NewValidationError("at least one table is required")
	}
	for _, tableID := range tableIDs {
		if err := tableID.Validate(); err != nil {
			return err
		}
	}

	o.tableIDs = tableIDs
	return nil
}

// ChangeStatus moves the order to a new lifecycle status via the direct
// status-change rules. Closing statuses are rejected here; use Close.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Close finishes the order as paid or billed, stamping the payment fields
// and the closing timestamp. Fails with an InvalidStateError unless the
// order is currently in an active state.
func (o *Order) Close(as Status, paymentMethod string, amountPaid float64, change float64) error {
	newStatus, err := o.status.CloseAs(as)
	if err != nil {
		return err
	}
	if paymentMethod == "" {
		return errs.NewValidationError("payment method is required")
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.paymentMethod = paymentMethod
	o.amountPaid = amountPaid
	o.change = change
	o.closedAt = &now
	return nil
}

// recalculateTotals recomputes subtotal and total as the sum of the current
// lines' totals. Totals are never drifted incrementally.
func (o *Order) recalculateTotals() {
	var sum float64
	for _, line := range o.lines {
		sum += line.Total()
	}
	o.subtotal = sum
	o.total = sum
}
