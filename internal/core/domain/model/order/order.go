package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through a constructor. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order models the order record owned by the external order store. The
// dispatch core never creates orders; it references them by their
// application-level invoice number and transitions their status and
// denormalized rider name during assignment and resolution.
//
// Invariants:
//   - invoiceNumber is non-empty and distinct from the storage primary key
//   - total is non-negative (monetary amount in the smallest currency unit)
//   - status transitions follow the Status state machine; Delivered is terminal
//   - riderName is written only by the assignment workflow
type Order struct {
	id            kernel.UUID
	invoiceNumber string
	status        Status
	riderName     string
	total         int
	zipCode       kernel.ZipCode

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order. Production code receives orders from the
// external store through RestoreOrder; NewOrder exists for seeding and tests.
func NewOrder(id kernel.UUID, invoiceNumber string, total int, zipCode kernel.ZipCode) (*Order, error) {
	return RestoreOrder(id, invoiceNumber, Pending, "", total, zipCode)
}

// RestoreOrder reconstructs an Order from its persisted state.
func RestoreOrder(
	id kernel.UUID,
	invoiceNumber string,
	status Status,
	riderName string,
	total int,
	zipCode kernel.ZipCode,
) (*Order, error) {
	o := &Order{
		riderName: riderName,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setInvoiceNumber(invoiceNumber),
		o.setStatus(status),
		o.setTotal(total),
		o.setZipCode(zipCode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by storage identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the storage-assigned primary key.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// InvoiceNumber returns the application-level key used by delivery logic.
func (o *Order) InvoiceNumber() string {
	return o.invoiceNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// RiderName returns the denormalized name of the assigned rider, if any.
func (o *Order) RiderName() string {
	return o.riderName
}

// Total returns the order's monetary amount in the smallest currency unit.
func (o *Order) Total() int {
	return o.total
}

// ZipCode returns the destination zip code from the order's user info.
func (o *Order) ZipCode() kernel.ZipCode {
	return o.zipCode
}

// AssignTo records the rider's name and moves the order to Processing.
// Only Pending orders can be assigned; a delivered or cancelled order is
// terminal and is never re-entered.
func (o *Order) AssignTo(riderName string) error {
	if riderName == "" {
		return errs.NewValueIsRequiredError("riderName")
	}

	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderName = riderName
	return nil
}

// Deliver moves the order from Processing to Delivered.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order from Processing to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setInvoiceNumber(invoiceNumber string) error {
	if invoiceNumber == "" {
		return errs.NewValueIsRequiredError("invoiceNumber")
	}
	o.invoiceNumber = invoiceNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotal(total int) error {
	if total < 0 {
		return errs.NewValueIsOutOfRangeError("total", total, 0, int(^uint(0)>>1))
	}
	o.total = total
	return nil
}

func (o *Order) setZipCode(zipCode kernel.ZipCode) error {
	if err := zipCode.Validate(); err != nil {
		return err
	}
	o.zipCode = zipCode
	return nil
}
