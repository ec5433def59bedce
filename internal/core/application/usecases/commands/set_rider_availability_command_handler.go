package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/errs"
)

// SetRiderAvailabilityCommandHandler flips a rider's availability flag.
// Used by store staff to correct a rider's state outside the assignment and
// completion flows.
type SetRiderAvailabilityCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewSetRiderAvailabilityCommandHandler creates a handler for availability
// updates.
func NewSetRiderAvailabilityCommandHandler(uowFactory RiderUoWFactory) SetRiderAvailabilityCommandHandler {
	return SetRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability command and returns the updated rider.
// A flip to the rider's current value fails with rider.ErrRiderAlreadyBusy or
// rider.ErrRiderAlreadyFree.
func (h SetRiderAvailabilityCommandHandler) Handle(ctx context.Context, command SetRiderAvailabilityCommand) (*rider.Rider, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()

	updated, err := riderRepo.Get(ctx, command.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrRiderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := updated.SetAvailability(command.Available()); err != nil {
		return nil, err
	}

	if err := riderRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
