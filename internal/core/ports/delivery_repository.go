package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrDuplicateOrderAssignment is returned by DeliveryRepository.Add when a
// ledger record for the same order id already exists. Implementations map
// their storage-level unique violation onto this sentinel.
var ErrDuplicateOrderAssignment = errors.New("delivery record for this order already exists")

// DeliveryRepository defines the persistence contract for the delivery ledger.
// The ledger enforces at most one record per order id with a unique index, so
// a duplicate Add surfaces as a conflict rather than a second record.
type DeliveryRepository interface {
	// Add persists a new ledger record. Adding a second record for the same
	// order id fails with a duplicate-key error.
	Add(ctx context.Context, record *delivery.Record) error

	// Update persists changes to an existing ledger record.
	Update(ctx context.Context, record *delivery.Record) error

	// Get retrieves a record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Record, error)

	// GetByOrderID retrieves the record for an order's invoice identifier.
	GetByOrderID(ctx context.Context, orderID string) (*delivery.Record, error)

	// GetByOrderAndRider retrieves the record matching both identifiers.
	// Used by the legacy completion path which addresses deliveries that way.
	GetByOrderAndRider(ctx context.Context, orderID string, riderID kernel.UUID) (*delivery.Record, error)
}
