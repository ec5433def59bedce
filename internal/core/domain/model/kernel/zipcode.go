package kernel

import (
	"regexp"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrZipCodeIsNotConstructed indicates a ZipCode that bypassed NewZipCode.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError("ZipCode must be created via NewZipCode")

var zipPattern = regexp.MustCompile(`^\d{6}$`)

// ZipCode is a validated 6-digit postal code. Store notifications are fanned
// out per zip code, so the format is enforced at construction.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewZipCode validates and wraps a 6-digit postal code.
func NewZipCode(value string) (ZipCode, error) {
	if value == "" {
		return ZipCode{}, errs.NewValueIsRequiredError("zipCode")
	}
	if !zipPattern.MatchString(value) {
		return ZipCode{}, errs.NewValueIsInvalidError("zipCode")
	}
	return ZipCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// String returns the raw digits.
func (z ZipCode) String() string {
	return z.value
}

// IsEqual reports whether two zip codes are the same.
func (z ZipCode) IsEqual(other ZipCode) bool {
	return z.value == other.value
}

// Validate rejects the zero value.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}
