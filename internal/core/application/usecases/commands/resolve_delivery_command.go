package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrResolveDeliveryCommandIsNotConstructed = errors.New(
	"ResolveDeliveryCommand must be created via NewResolveDeliveryCommand constructor",
)

// ResolveDeliveryCommand represents a store's decision on an open delivery:
// the order was handed over (delivered) or the attempt is called off
// (cancelled). Addresses the delivery by both the order invoice identifier
// and the ledger record id.
//
// Example:
//
//	cmd, err := NewResolveDeliveryCommand("INV-1042", deliveryID, notification.OutcomeDelivered)
//	if err != nil {
//	    return fmt.Errorf("invalid resolution request: %w", err)
//	}
//
//	handler := NewResolveDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type ResolveDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	deliveryID kernel.UUID
	outcome    notification.Outcome

	guard guard.ConstructorGuard
}

// NewResolveDeliveryCommand creates a command to resolve an open delivery.
// outcome must be OutcomeDelivered or OutcomeCancelled.
func NewResolveDeliveryCommand(
	orderID string,
	deliveryID kernel.UUID,
	outcome notification.Outcome,
) (ResolveDeliveryCommand, error) {
	command := ResolveDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDeliveryID(deliveryID),
		command.setOutcome(outcome),
	); err != nil {
		return ResolveDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveDeliveryCommandIsNotConstructed if validation fails.
func (c ResolveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrResolveDeliveryCommandIsNotConstructed)
}

// OrderID returns the order invoice identifier from the command.
func (c ResolveDeliveryCommand) OrderID() string {
	return c.orderID
}

// DeliveryID returns the ledger record id from the command.
func (c ResolveDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Outcome returns the requested resolution from the command.
func (c ResolveDeliveryCommand) Outcome() notification.Outcome {
	return c.outcome
}

func (c *ResolveDeliveryCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *ResolveDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("deliveryID")
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ResolveDeliveryCommand) setOutcome(outcome notification.Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}

	c.outcome = outcome
	return nil
}
