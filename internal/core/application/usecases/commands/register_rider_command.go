package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterRiderCommandIsNotConstructed = errors.New(
	"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
)

// RegisterRiderCommand represents a partner's request to register a new rider.
// Carries the full identity profile the registry checks for uniqueness before
// the rider is persisted and appended to the partner's roster.
//
// Example:
//
//	cmd, err := NewRegisterRiderCommand(partnerID, "ravi89", "s3cret", "Ravi Kumar",
//	    "9876543210", "ravi@example.com", "123412341234", "ABCDE1234F",
//	    "KA0120200012345", "Honda Activa", address)
//	if err != nil {
//	    return fmt.Errorf("invalid rider data: %w", err)
//	}
//
//	handler := NewRegisterRiderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register rider: %w", err)
//	}
//	fmt.Printf("Registered rider with ID: %s", cmd.RiderID())
type RegisterRiderCommand struct { //nolint:recvcheck //using for validation
	riderID           kernel.UUID
	partnerID         kernel.UUID
	username          string
	password          string
	fullName          string
	phone             kernel.Phone
	email             string
	aadharNumber      string
	panNumber         string
	bikeLicenceNumber string
	vehicleDetails    string
	address           rider.Address

	guard guard.ConstructorGuard
}

// NewRegisterRiderCommand creates a command to register a new rider under the
// given partner. Automatically generates a unique ID for the rider. The phone
// number must be a valid 10-digit number; the remaining identity fields are
// validated by the rider aggregate on construction.
func NewRegisterRiderCommand(
	partnerID kernel.UUID,
	username, password, fullName, phoneNumber, email string,
	aadharNumber, panNumber, bikeLicenceNumber, vehicleDetails string,
	address rider.Address,
) (RegisterRiderCommand, error) {
	command := RegisterRiderCommand{
		email:             email,
		aadharNumber:      aadharNumber,
		panNumber:         panNumber,
		bikeLicenceNumber: bikeLicenceNumber,
		vehicleDetails:    vehicleDetails,
		address:           address,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(kernel.NewUUID()),
		command.setPartnerID(partnerID),
		command.setUsername(username),
		command.setPassword(password),
		command.setFullName(fullName),
		command.setPhone(phoneNumber),
	); err != nil {
		return RegisterRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterRiderCommandIsNotConstructed if validation fails.
func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

// RiderID returns the generated rider ID from the command.
func (c RegisterRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// PartnerID returns the owning partner ID from the command.
func (c RegisterRiderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Username returns the rider username from the command.
func (c RegisterRiderCommand) Username() string {
	return c.username
}

// Password returns the rider password from the command.
func (c RegisterRiderCommand) Password() string {
	return c.password
}

// FullName returns the rider full name from the command.
func (c RegisterRiderCommand) FullName() string {
	return c.fullName
}

// Phone returns the rider phone number from the command.
func (c RegisterRiderCommand) Phone() kernel.Phone {
	return c.phone
}

// Email returns the rider email from the command.
func (c RegisterRiderCommand) Email() string {
	return c.email
}

// AadharNumber returns the rider aadhar number from the command.
func (c RegisterRiderCommand) AadharNumber() string {
	return c.aadharNumber
}

// PanNumber returns the rider PAN number from the command.
func (c RegisterRiderCommand) PanNumber() string {
	return c.panNumber
}

// BikeLicenceNumber returns the rider bike licence number from the command.
func (c RegisterRiderCommand) BikeLicenceNumber() string {
	return c.bikeLicenceNumber
}

// VehicleDetails returns the rider vehicle details from the command.
func (c RegisterRiderCommand) VehicleDetails() string {
	return c.vehicleDetails
}

// Address returns the rider postal address from the command.
func (c RegisterRiderCommand) Address() rider.Address {
	return c.address
}

func (c *RegisterRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.riderID = id
	return nil
}

func (c *RegisterRiderCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("partnerID")
	}

	c.partnerID = id
	return nil
}

func (c *RegisterRiderCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *RegisterRiderCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *RegisterRiderCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}

	c.fullName = fullName
	return nil
}

func (c *RegisterRiderCommand) setPhone(phoneNumber string) error {
	phone, err := kernel.NewPhone(phoneNumber)
	if err != nil {
		return err
	}

	c.phone = phone
	return nil
}
