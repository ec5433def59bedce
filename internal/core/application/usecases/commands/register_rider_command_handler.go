package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/errs"
)

var ErrPartnerNotFound = errors.New("partner not found")

// DuplicateFieldError reports which unique identity field of a rider candidate
// is already taken. Field carries the display name checked by
// RiderRepository.FindConflict, e.g. "Phone number".
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// RegisterRiderCommandHandler orchestrates rider registration.
// Verifies the owning partner exists, checks every unique identity field
// against the registry, then persists the rider and appends it to the
// partner's roster in one transaction.
//
// Example:
//
//	handler := NewRegisterRiderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	var dup *DuplicateFieldError
//	switch {
//	case errors.Is(err, ErrPartnerNotFound):
//	    log.Println("Unknown partner")
//	case errors.As(err, &dup):
//	    log.Printf("%s is taken", dup.Field)
//	case err != nil:
//	    log.Printf("Registration failed: %v", err)
//	}
type RegisterRiderCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterRiderCommandHandler creates a handler for rider registration.
// Requires a RegistrationUoWFactory so the rider write and the roster append
// commit together.
func NewRegisterRiderCommandHandler(uowFactory RegistrationUoWFactory) RegisterRiderCommandHandler {
	return RegisterRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider registration command.
// Builds the rider aggregate from the command data, resolves the partner,
// and rejects the registration with a DuplicateFieldError naming the first
// conflicting identity field if any is already taken.
func (h RegisterRiderCommandHandler) Handle(ctx context.Context, command RegisterRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	candidate, err := rider.NewRider(
		command.RiderID(),
		command.Username(),
		command.Password(),
		command.FullName(),
		command.Phone(),
		command.Email(),
		command.AadharNumber(),
		command.PanNumber(),
		command.BikeLicenceNumber(),
		command.VehicleDetails(),
		command.Address(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	partners := uow.PartnerDirectory()

	if _, err := partners.Get(ctx, command.PartnerID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrPartnerNotFound
		}
		return err
	}

	field, err := riderRepo.FindConflict(ctx, candidate)
	if err != nil {
		return err
	}
	if field != "" {
		return &DuplicateFieldError{Field: field}
	}

	if err := riderRepo.Add(ctx, candidate); err != nil {
		return err
	}

	if err := partners.AppendRider(ctx, command.PartnerID(), candidate.ID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
