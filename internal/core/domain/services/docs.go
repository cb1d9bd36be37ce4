// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the order engine.
//
// The package includes:
//   - LineBuilder: a pure pricing service turning submitted items plus a
//     catalog snapshot into priced order lines and a subtotal
//   - Ledger: the inventory consumption algorithm, applying the per-tenant
//     stock policy against a transaction-bound stock store
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
