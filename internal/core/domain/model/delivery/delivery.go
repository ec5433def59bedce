package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for delivery ledger operations.
var (
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Record.
	ErrDeliveryIsNotConstructed = errors.New("delivery Record must be created via NewRecord constructor")
	// ErrDeliveryAlreadyResolved is returned when resolving a record a second time,
	// regardless of the requested outcome.
	ErrDeliveryAlreadyResolved = errors.New("delivery is already resolved")
)

// Record is the delivery ledger entry linking one order to one rider
// assignment and its eventual resolution.
//
// Invariants:
//   - at most one record exists per orderID (enforced by the ledger's unique index)
//   - a record is resolved exactly once, to Delivered or Cancelled, and never
//     mutated again afterward
//   - amount is populated only on delivery; a cancelled record carries zero
type Record struct {
	id      kernel.UUID
	orderID string
	riderID kernel.UUID
	storeID string

	assignTime     time.Time
	completionTime *time.Time
	amount         int

	// delivered is true only for records resolved as Delivered.
	delivered bool
	// resolved is true once either outcome has been applied.
	resolved bool

	guard guard.ConstructorGuard
}

// NewRecord creates a fresh, unresolved ledger entry for an assignment.
// orderID is the order's invoice identifier, not its storage key.
func NewRecord(
	id kernel.UUID,
	orderID string,
	riderID kernel.UUID,
	storeID string,
	assignTime time.Time,
) (*Record, error) {
	r := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setRiderID(riderID),
		r.setStoreID(storeID),
		r.setAssignTime(assignTime),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecord reconstructs a ledger entry from persistent storage,
// including its resolution state.
func RestoreRecord(
	id kernel.UUID,
	orderID string,
	riderID kernel.UUID,
	storeID string,
	assignTime time.Time,
	completionTime *time.Time,
	amount int,
	delivered bool,
	resolved bool,
) (*Record, error) {
	r, err := NewRecord(id, orderID, riderID, storeID, assignTime)
	if err != nil {
		return nil, err
	}

	r.completionTime = completionTime
	r.amount = amount
	r.delivered = delivered
	r.resolved = resolved
	return r, nil
}

// Validate checks that the Record was built through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrDeliveryIsNotConstructed
	}
	return r.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares records by identifier.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the invoice identifier of the linked order.
func (r *Record) OrderID() string {
	return r.orderID
}

// RiderID returns the assigned rider's identifier.
func (r *Record) RiderID() kernel.UUID {
	return r.riderID
}

// StoreID returns the identifier of the store the order ships from.
func (r *Record) StoreID() string {
	return r.storeID
}

// AssignTime returns when the rider was assigned.
func (r *Record) AssignTime() time.Time {
	return r.assignTime
}

// CompletionTime returns when the delivery completed, nil while unresolved
// or when the delivery was cancelled.
func (r *Record) CompletionTime() *time.Time {
	return r.completionTime
}

// Amount returns the delivered order total, zero unless resolved as Delivered.
func (r *Record) Amount() int {
	return r.amount
}

// Delivered reports whether the record was resolved as Delivered.
func (r *Record) Delivered() bool {
	return r.delivered
}

// Resolved reports whether either outcome has been applied.
func (r *Record) Resolved() bool {
	return r.resolved
}

// Complete resolves the record as Delivered: delivered=true, completion time
// stamped, amount captured from the order total. A record that was already
// resolved is rejected with ErrDeliveryAlreadyResolved.
func (r *Record) Complete(at time.Time, amount int) error {
	if r.resolved {
		return ErrDeliveryAlreadyResolved
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, int(^uint(0)>>1))
	}

	r.delivered = true
	r.resolved = true
	r.completionTime = &at
	r.amount = amount
	return nil
}

// Cancel resolves the record as Cancelled. delivered stays false, the
// completion time is cleared and the amount zeroed. Re-resolving afterwards
// is rejected with ErrDeliveryAlreadyResolved just like for Complete.
func (r *Record) Cancel() error {
	if r.resolved {
		return ErrDeliveryAlreadyResolved
	}

	r.delivered = false
	r.resolved = true
	r.completionTime = nil
	r.amount = 0
	return nil
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	r.orderID = orderID
	return nil
}

func (r *Record) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	r.riderID = riderID
	return nil
}

func (r *Record) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeId")
	}
	r.storeID = storeID
	return nil
}

func (r *Record) setAssignTime(assignTime time.Time) error {
	if assignTime.IsZero() {
		return errs.NewValueIsRequiredError("assignTime")
	}
	r.assignTime = assignTime
	return nil
}
