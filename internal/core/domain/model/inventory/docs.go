// Package inventory contains the domain model of the inventory ledger:
// per-tenant stock policies, stocked-entity targets, ingredients with their
// threshold classification, and the append-only Movement audit rows.
//
// The consumption algorithm itself lives in the services package; this
// package only defines the data and the rules each value carries.
package inventory
