// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
)

// Unique identity fields checked during rider registration, in the fixed
// priority order duplicates are reported in: the first conflicting field wins.
const (
	FieldUsername    = "Username"
	FieldEmail       = "Email"
	FieldPhone       = "Phone number"
	FieldAadhar      = "Aadhar number"
	FieldPan         = "PAN number"
	FieldBikeLicence = "Bike licence number"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	Add(ctx context.Context, r *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, r *rider.Rider) error

	// Get retrieves a rider by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByUsername retrieves a rider by unique username.
	GetByUsername(ctx context.Context, username string) (*rider.Rider, error)

	// GetByPhone retrieves a rider by unique phone number.
	GetByPhone(ctx context.Context, phone kernel.Phone) (*rider.Rider, error)

	// GetAll retrieves every registered rider.
	GetAll(ctx context.Context) ([]*rider.Rider, error)

	// FindConflict checks the candidate's unique identity fields against all
	// stored riders and returns the display name of the first conflicting
	// field in priority order (Field* constants), or "" when the candidate
	// is free of conflicts.
	FindConflict(ctx context.Context, candidate *rider.Rider) (string, error)
}
