package rider

import (
	"errors"
	"regexp"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderAlreadyBusy is returned when marking busy a rider who is already mid-delivery.
	ErrRiderAlreadyBusy = errors.New("rider is already on his way to deliver an order")
	// ErrRiderAlreadyFree is returned when marking free a rider who is already free.
	ErrRiderAlreadyFree = errors.New("rider is already marked as inactive")
)

var (
	emailPattern  = regexp.MustCompile(`.+@.+\..+`)
	aadharPattern = regexp.MustCompile(`^\d{12}$`)
)

// Address is the rider's postal address. All fields are optional except that
// ZipCode, when present, must be a 6-digit code.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

func (a Address) validate() error {
	if a.ZipCode == "" {
		return nil
	}
	if _, err := kernel.NewZipCode(a.ZipCode); err != nil {
		return errs.NewValueIsInvalidError("address.zipCode")
	}
	return nil
}

// Rider is the aggregate root for a bike rider registered by a store partner.
//
// Identity fields (username, email, phone, aadharNumber, panNumber,
// bikeLicenceNumber) are globally unique across all riders; the registry checks
// them before persisting. The available flag is true while the rider is out on
// a delivery and is the mechanism that refuses double-assignment and
// double-completion: flipping it to its current value is rejected, never
// silently accepted.
//
// The stored password is opaque to the aggregate; credential checks go through
// the pluggable services.CredentialVerifier so a hashing scheme can be swapped
// in without touching this type.
type Rider struct {
	id                kernel.UUID
	username          string
	password          string
	fullName          string
	phone             kernel.Phone
	email             string
	aadharNumber      string
	panNumber         string
	bikeLicenceNumber string
	vehicleDetails    string
	address           Address

	// available is true while the rider is mid-delivery.
	available bool

	guard guard.ConstructorGuard
}

// NewRider creates a Rider with all identity fields validated. New riders start
// free (available=false). This is the only way to create a valid Rider.
func NewRider(
	id kernel.UUID,
	username, password, fullName string,
	phone kernel.Phone,
	email, aadharNumber, panNumber, bikeLicenceNumber, vehicleDetails string,
	address Address,
) (*Rider, error) {
	r := &Rider{
		vehicleDetails: vehicleDetails,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setUsername(username),
		r.setPassword(password),
		r.setFullName(fullName),
		r.setPhone(phone),
		r.setEmail(email),
		r.setAadharNumber(aadharNumber),
		r.setPanNumber(panNumber),
		r.setBikeLicenceNumber(bikeLicenceNumber),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a Rider from persistent storage, including its
// availability state. The restored rider behaves identically to one that went
// through NewRider.
func RestoreRider(
	id kernel.UUID,
	username, password, fullName string,
	phone kernel.Phone,
	email, aadharNumber, panNumber, bikeLicenceNumber, vehicleDetails string,
	address Address,
	available bool,
) (*Rider, error) {
	r, err := NewRider(id, username, password, fullName, phone,
		email, aadharNumber, panNumber, bikeLicenceNumber, vehicleDetails, address)
	if err != nil {
		return nil, err
	}

	r.available = available
	return r, nil
}

// Validate checks that the Rider was built through NewRider.
// The zero value fails this check.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares riders by identifier.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Username returns the rider's unique login name.
func (r *Rider) Username() string {
	return r.username
}

// Password returns the stored credential. Compare it only through a
// services.CredentialVerifier.
func (r *Rider) Password() string {
	return r.password
}

// FullName returns the rider's display name, denormalized onto orders on assignment.
func (r *Rider) FullName() string {
	return r.fullName
}

// Phone returns the rider's unique 10-digit phone number.
func (r *Rider) Phone() kernel.Phone {
	return r.phone
}

// Email returns the rider's unique email address.
func (r *Rider) Email() string {
	return r.email
}

// AadharNumber returns the rider's unique 12-digit national ID.
func (r *Rider) AadharNumber() string {
	return r.aadharNumber
}

// PanNumber returns the rider's unique secondary national ID.
func (r *Rider) PanNumber() string {
	return r.panNumber
}

// BikeLicenceNumber returns the rider's unique licence number.
func (r *Rider) BikeLicenceNumber() string {
	return r.bikeLicenceNumber
}

// VehicleDetails returns the free-text vehicle description.
func (r *Rider) VehicleDetails() string {
	return r.vehicleDetails
}

// Address returns the rider's postal address.
func (r *Rider) Address() Address {
	return r.address
}

// Available reports whether the rider is currently out on a delivery.
func (r *Rider) Available() bool {
	return r.available
}

// MarkBusy flips the rider to mid-delivery. A rider already busy is rejected
// with ErrRiderAlreadyBusy; no-op transitions are conflicts, not successes.
func (r *Rider) MarkBusy() error {
	if r.available {
		return ErrRiderAlreadyBusy
	}
	r.available = true
	return nil
}

// MarkFree flips the rider back to free. A rider already free is rejected
// with ErrRiderAlreadyFree.
func (r *Rider) MarkFree() error {
	if !r.available {
		return ErrRiderAlreadyFree
	}
	r.available = false
	return nil
}

// SetAvailability applies an explicit availability value, rejecting no-op
// transitions. This is the single mechanism behind both MarkBusy and MarkFree
// style updates coming from the HTTP surface.
func (r *Rider) SetAvailability(available bool) error {
	if available {
		return r.MarkBusy()
	}
	return r.MarkFree()
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	r.username = username
	return nil
}

func (r *Rider) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	r.password = password
	return nil
}

func (r *Rider) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	r.fullName = fullName
	return nil
}

func (r *Rider) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	r.phone = phone
	return nil
}

func (r *Rider) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	r.email = email
	return nil
}

func (r *Rider) setAadharNumber(aadharNumber string) error {
	if aadharNumber == "" {
		return errs.NewValueIsRequiredError("aadharNumber")
	}
	if !aadharPattern.MatchString(aadharNumber) {
		return errs.NewValueIsInvalidError("aadharNumber")
	}
	r.aadharNumber = aadharNumber
	return nil
}

func (r *Rider) setPanNumber(panNumber string) error {
	if panNumber == "" {
		return errs.NewValueIsRequiredError("panNumber")
	}
	r.panNumber = panNumber
	return nil
}

func (r *Rider) setBikeLicenceNumber(bikeLicenceNumber string) error {
	if bikeLicenceNumber == "" {
		return errs.NewValueIsRequiredError("bikeLicenceNumber")
	}
	r.bikeLicenceNumber = bikeLicenceNumber
	return nil
}

func (r *Rider) setAddress(address Address) error {
	if err := address.validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}
