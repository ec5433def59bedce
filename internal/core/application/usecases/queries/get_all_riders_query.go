package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAllRidersQueryIsNotConstructed = errors.New(
	"GetAllRidersQuery must be created via NewGetAllRidersQuery constructor",
)

// GetAllRidersQuery retrieves every registered rider for the staff dashboard.
type GetAllRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRidersQuery creates a parameterless query for the full rider list.
func NewGetAllRidersQuery() GetAllRidersQuery {
	return GetAllRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllRidersQueryIsNotConstructed if validation fails.
func (q GetAllRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRidersQueryIsNotConstructed)
}
