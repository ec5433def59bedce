package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──> Processing ──┬──> Delivered
//	                         └──> Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them. In
// particular a delivered order can be neither re-delivered nor cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of an order awaiting rider assignment.
	Pending

	// Processing indicates a rider has been assigned and the delivery is underway.
	Processing

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the delivery was called off. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus maps a wire-level status string to a Status.
// Returns a ValueIsInvalidError for anything outside the four valid statuses;
// callers translate that to an HTTP 400.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is one of the four valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status. Implements fmt.Stringer
// and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// StartProcessing transitions Pending -> Processing. Any other starting
// status is rejected; assignment must not touch terminal or in-flight orders.
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}
	return Processing, nil
}

// Deliver transitions Processing -> Delivered. Delivered is terminal.
func (s Status) Deliver() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel transitions Processing -> Cancelled. A delivered order cannot be
// cancelled; Cancelled is terminal.
func (s Status) Cancel() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
