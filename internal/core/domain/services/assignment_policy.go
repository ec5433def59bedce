package services

import (
	"errors"

	"dispatch/internal/core/domain/model/rider"
)

// ErrRiderUnavailable is returned by the availability gate when assignment is
// requested for a rider who is already mid-delivery.
var ErrRiderUnavailable = errors.New("rider is not available for assignment")

// AssignmentPolicy decides whether a rider may be attached to an order.
//
// The upstream system never gated assignment on rider availability even though
// it tracks the flag, so the gate is an explicit, independently toggleable
// policy rather than a hardcoded check: with GateOnAvailability off the policy
// reproduces the observed behavior, with it on a busy rider is rejected.
type AssignmentPolicy struct {
	// GateOnAvailability rejects riders who are already out on a delivery.
	GateOnAvailability bool
}

// NewAssignmentPolicy creates a policy with the availability gate set as given.
func NewAssignmentPolicy(gateOnAvailability bool) AssignmentPolicy {
	return AssignmentPolicy{GateOnAvailability: gateOnAvailability}
}

// CanAssign validates the rider against the policy.
func (p AssignmentPolicy) CanAssign(r *rider.Rider) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if p.GateOnAvailability && r.Available() {
		return ErrRiderUnavailable
	}
	return nil
}
