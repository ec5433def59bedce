package kernel

import (
	"regexp"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPhoneIsNotConstructed indicates a Phone that bypassed NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// IsPhoneNumber reports whether s looks like a 10-digit phone number.
// Rider lookups use this to decide between the phone and the username path;
// exactly one of the two ever executes for a given identifier.
func IsPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// Phone is a validated 10-digit phone number.
type Phone struct {
	value string
	guard guard.ConstructorGuard
}

// NewPhone validates and wraps a 10-digit phone number.
func NewPhone(value string) (Phone, error) {
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phoneNumber")
	}
	if !IsPhoneNumber(value) {
		return Phone{}, errs.NewValueIsInvalidError("phoneNumber")
	}
	return Phone{value: value, guard: guard.NewConstructorGuard()}, nil
}

// String returns the raw digits.
func (p Phone) String() string {
	return p.value
}

// IsEqual reports whether two phone numbers are the same.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate rejects the zero value.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}
