package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a rider reporting a finished drop-off.
// This is the rider-driven completion flow: it frees the rider, closes the
// matching ledger record, and marks the order delivered.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command for a rider-reported completion.
func NewCompleteOrderCommand(orderID string, riderID kernel.UUID) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order invoice identifier from the command.
func (c CompleteOrderCommand) OrderID() string {
	return c.orderID
}

// RiderID returns the reporting rider's ID from the command.
func (c CompleteOrderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *CompleteOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("riderID")
	}

	c.riderID = riderID
	return nil
}
