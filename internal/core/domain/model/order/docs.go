// Package order contains the Order aggregate root and its supporting value
// objects: the lifecycle Status state machine, priced Line items,
// personalization Selections, and delivery CustomerInfo.
//
// The aggregate enforces the pricing invariant (totals always recomputed
// from the full line set) and the lifecycle rules (active vs terminal
// states, closing semantics). Table occupancy and inventory consumption are
// coordinated outside the aggregate by the application layer, inside the
// same storage transaction.
package order
