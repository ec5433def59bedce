package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a store's request to put a specific rider on a
// specific order. orderID is the order's invoice identifier; storeID names the
// shop the pickup happens at.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand("INV-1042", riderID, "shop-7")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignRiderCommandHandler(uowFactory, policy, lock)
//	result, err := handler.Handle(ctx, cmd)
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	riderID kernel.UUID
	storeID string

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to an order.
// Validates that the order and store identifiers are present and the rider ID
// is a valid UUID.
func NewAssignRiderCommand(orderID string, riderID kernel.UUID, storeID string) (AssignRiderCommand, error) {
	command := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
		command.setStoreID(storeID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignRiderCommandIsNotConstructed if validation fails.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the order invoice identifier from the command.
func (c AssignRiderCommand) OrderID() string {
	return c.orderID
}

// RiderID returns the rider ID from the command.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// StoreID returns the store identifier from the command.
func (c AssignRiderCommand) StoreID() string {
	return c.storeID
}

func (c *AssignRiderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("riderID")
	}

	c.riderID = riderID
	return nil
}

func (c *AssignRiderCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeID")
	}

	c.storeID = storeID
	return nil
}
