// Package queries contains the read side of the CQRS architecture: live
// order views, order detail, low-stock projections, and tenant listings.
// Handlers read straight from the database with raw SQL and map rows into
// plain response structs, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves every order of a tenant in an active
// status: pending, preparing, ready, or delivered.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(tenantID)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//	fmt.Printf("%d live orders\n", len(orders))
type GetActiveOrdersQuery struct {
	tenantID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a tenant's live orders.
func NewGetActiveOrdersQuery(tenantID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		tenantID: tenantID,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant whose live orders are requested.
func (q GetActiveOrdersQuery) TenantID() kernel.UUID { return q.tenantID }

// GetActiveOrdersQueryResponse is one live order row: enough for a board
// view without loading full line detail.
type GetActiveOrdersQueryResponse struct {
	ID           kernel.UUID
	Status       string
	TableIDs     []kernel.UUID
	CustomerName string
	Notes        string
	Total        float64
	LineCount    int
	CreatedAt    time.Time
}
