package notification

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when using an improperly
// initialized StoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"StoreNotification must be created via NewStoreNotification constructor")

// Outcome is the delivery resolution carried on a notification record.
// The wire values are lowercase, matching the notification feed consumers.
type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeCancelled Outcome = "cancelled"
)

// Validate checks the outcome is one of the two resolution values.
func (o Outcome) Validate() error {
	if o != OutcomeDelivered && o != OutcomeCancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus",
			fmt.Errorf("%q is not a valid notification outcome", string(o)),
		)
	}
	return nil
}

// ReadStatus tracks whether a store has seen the notification.
type ReadStatus string

const (
	ReadStatusUnread ReadStatus = "unread"
	ReadStatusRead   ReadStatus = "read"
)

// StoreNotification is the record pushed to the per-zip-code store feed when a
// delivery is resolved. It is created exactly once, inside the same atomic
// unit as the order and delivery updates, and is fire-and-forget for the
// resolving workflow once committed.
type StoreNotification struct {
	id          kernel.UUID
	zipCode     kernel.ZipCode
	message     string
	orderStatus Outcome
	readStatus  ReadStatus
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewStoreNotification creates an unread notification for the given zip code.
func NewStoreNotification(
	id kernel.UUID,
	zipCode kernel.ZipCode,
	message string,
	orderStatus Outcome,
	createdAt time.Time,
) (*StoreNotification, error) {
	n := &StoreNotification{
		readStatus: ReadStatusUnread,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setZipCode(zipCode),
		n.setMessage(message),
		n.setOrderStatus(orderStatus),
		n.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// NewResolutionNotification builds the notification emitted when a delivery is
// resolved, with a human-readable message naming the order, the rider, and the
// outcome.
func NewResolutionNotification(
	id kernel.UUID,
	zipCode kernel.ZipCode,
	orderID, riderName string,
	orderStatus Outcome,
	createdAt time.Time,
) (*StoreNotification, error) {
	message := fmt.Sprintf("Order %s assigned to rider %s was %s", orderID, riderName, orderStatus)
	return NewStoreNotification(id, zipCode, message, orderStatus, createdAt)
}

// RestoreStoreNotification reconstructs a notification from persistent storage.
func RestoreStoreNotification(
	id kernel.UUID,
	zipCode kernel.ZipCode,
	message string,
	orderStatus Outcome,
	readStatus ReadStatus,
	createdAt time.Time,
) (*StoreNotification, error) {
	n, err := NewStoreNotification(id, zipCode, message, orderStatus, createdAt)
	if err != nil {
		return nil, err
	}

	if readStatus != ReadStatusRead && readStatus != ReadStatusUnread {
		return nil, errs.NewValueIsInvalidError("readStatus")
	}
	n.readStatus = readStatus
	return n, nil
}

// Validate checks that the notification was built through a constructor.
func (n *StoreNotification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *StoreNotification) ID() kernel.UUID {
	return n.id
}

// ZipCode returns the zip code whose stores receive this notification.
func (n *StoreNotification) ZipCode() kernel.ZipCode {
	return n.zipCode
}

// Message returns the human-readable outcome description.
func (n *StoreNotification) Message() string {
	return n.message
}

// OrderStatus returns the resolution outcome.
func (n *StoreNotification) OrderStatus() Outcome {
	return n.orderStatus
}

// ReadStatus reports whether the notification has been read.
func (n *StoreNotification) ReadStatus() ReadStatus {
	return n.readStatus
}

// CreatedAt returns the notification creation time.
func (n *StoreNotification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flips the notification to read. Marking twice is harmless.
func (n *StoreNotification) MarkRead() {
	n.readStatus = ReadStatusRead
}

func (n *StoreNotification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *StoreNotification) setZipCode(zipCode kernel.ZipCode) error {
	if err := zipCode.Validate(); err != nil {
		return err
	}
	n.zipCode = zipCode
	return nil
}

func (n *StoreNotification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *StoreNotification) setOrderStatus(orderStatus Outcome) error {
	if err := orderStatus.Validate(); err != nil {
		return err
	}
	n.orderStatus = orderStatus
	return nil
}

func (n *StoreNotification) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	n.createdAt = createdAt
	return nil
}
