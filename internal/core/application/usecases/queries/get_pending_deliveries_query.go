// Package queries contains read-only operations over the dispatch store.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain aggregates and read projections straight from the database.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// GetPendingDeliveriesQuery retrieves a rider's open workload: unresolved
// ledger records whose order is still in processing. Records whose order
// already reached a terminal status are dropped from the result.
//
// Example:
//
//	query, err := NewGetPendingDeliveriesQuery(riderID)
//	handler := NewGetPendingDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("Nothing pending for this rider")
//	}
type GetPendingDeliveriesQuery struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query for a rider's pending deliveries.
func NewGetPendingDeliveriesQuery(riderID kernel.UUID) (GetPendingDeliveriesQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetPendingDeliveriesQuery{}, errs.NewValueIsRequiredError("riderID")
	}

	return GetPendingDeliveriesQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingDeliveriesQueryIsNotConstructed if validation fails.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}

// RiderID returns the rider ID from the query.
func (q GetPendingDeliveriesQuery) RiderID() kernel.UUID {
	return q.riderID
}

// GetPendingDeliveriesQueryResponse represents one open delivery on a rider's
// plate: the ledger record keys plus the order details needed at the door.
type GetPendingDeliveriesQueryResponse struct {
	DeliveryID kernel.UUID
	OrderID    string
	StoreID    string
	AssignTime time.Time
	OrderTotal int
	ZipCode    string
}
