package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAuthenticateRiderQueryIsNotConstructed = errors.New(
		"AuthenticateRiderQuery must be created via NewAuthenticateRiderQuery constructor",
	)
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthenticateRiderQuery checks a rider's credentials for the login endpoint.
// The identifier follows the same phone-or-username dispatch as FindRiderQuery.
type AuthenticateRiderQuery struct { //nolint:recvcheck //using for validation
	identifier string
	password   string

	guard guard.ConstructorGuard
}

// NewAuthenticateRiderQuery creates a login query.
func NewAuthenticateRiderQuery(identifier, password string) (AuthenticateRiderQuery, error) {
	command := AuthenticateRiderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIdentifier(identifier),
		command.setPassword(password),
	); err != nil {
		return AuthenticateRiderQuery{}, err
	}

	return command, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateRiderQueryIsNotConstructed if validation fails.
func (q AuthenticateRiderQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateRiderQueryIsNotConstructed)
}

// Identifier returns the login identifier from the query.
func (q AuthenticateRiderQuery) Identifier() string {
	return q.identifier
}

// Password returns the supplied password from the query.
func (q AuthenticateRiderQuery) Password() string {
	return q.password
}

func (q *AuthenticateRiderQuery) setIdentifier(identifier string) error {
	if identifier == "" {
		return errs.NewValueIsRequiredError("identifier")
	}

	q.identifier = identifier
	return nil
}

func (q *AuthenticateRiderQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}
