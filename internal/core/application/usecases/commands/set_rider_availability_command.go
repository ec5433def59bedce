package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand represents a direct flip of a rider's
// availability flag. Setting the flag to its current value is a conflict,
// never a silent no-op; that refusal is what keeps assignment and completion
// from double-applying.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID   kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand creates a command to set a rider's
// availability flag.
func NewSetRiderAvailabilityCommand(riderID kernel.UUID, available bool) (SetRiderAvailabilityCommand, error) {
	command := SetRiderAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setRiderID(riderID); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetRiderAvailabilityCommandIsNotConstructed if validation fails.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

// RiderID returns the rider ID from the command.
func (c SetRiderAvailabilityCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Available returns the requested availability value from the command.
func (c SetRiderAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetRiderAvailabilityCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("riderID")
	}

	c.riderID = riderID
	return nil
}
