package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrFindRiderQueryIsNotConstructed = errors.New(
	"FindRiderQuery must be created via NewFindRiderQuery constructor",
)

// FindRiderQuery looks a rider up by a single identifier string. A 10-digit
// numeric identifier is treated as a phone number, anything else as a
// username; exactly one lookup path executes per request.
//
// Example:
//
//	query, err := NewFindRiderQuery("9876543210") // phone path
//	query, err = NewFindRiderQuery("ravi89")      // username path
type FindRiderQuery struct { //nolint:recvcheck //using for validation
	identifier string

	guard guard.ConstructorGuard
}

// NewFindRiderQuery creates a query to find a rider by phone or username.
func NewFindRiderQuery(identifier string) (FindRiderQuery, error) {
	if identifier == "" {
		return FindRiderQuery{}, errs.NewValueIsRequiredError("identifier")
	}

	return FindRiderQuery{
		identifier: identifier,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindRiderQueryIsNotConstructed if validation fails.
func (q FindRiderQuery) Validate() error {
	return q.guard.Validate(ErrFindRiderQueryIsNotConstructed)
}

// Identifier returns the lookup identifier from the query.
func (q FindRiderQuery) Identifier() string {
	return q.identifier
}

// ByPhone reports whether the identifier selects the phone lookup path.
func (q FindRiderQuery) ByPhone() bool {
	return kernel.IsPhoneNumber(q.identifier)
}

// RiderResponse represents a rider read model shared by the lookup queries.
// The stored password is deliberately absent.
type RiderResponse struct {
	ID                kernel.UUID
	Username          string
	FullName          string
	Phone             string
	Email             string
	AadharNumber      string
	PanNumber         string
	BikeLicenceNumber string
	VehicleDetails    string
	Street            string
	City              string
	State             string
	ZipCode           string
	Available         bool
}
