package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRidersQueryHandler retrieves every rider from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRidersQueryHandler creates a handler for rider list queries.
// Requires a GORM database connection for query execution.
func NewGetAllRidersQueryHandler(db *gorm.DB) GetAllRidersQueryHandler {
	return GetAllRidersQueryHandler{db: db}
}

// Handle executes the query to retrieve all riders.
// Returns a slice of rider read models sorted by full name; an empty registry
// yields an empty slice, not an error.
func (h GetAllRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAllRidersQuery,
) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]RiderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			full_name,
			phone,
			email,
			aadhar_number,
			pan_number,
			bike_licence_number,
			vehicle_details,
			street,
			city,
			state,
			zip_code,
			available
		FROM riders
		ORDER BY full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp RiderResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Username,
			&resp.FullName,
			&resp.Phone,
			&resp.Email,
			&resp.AadharNumber,
			&resp.PanNumber,
			&resp.BikeLicenceNumber,
			&resp.VehicleDetails,
			&resp.Street,
			&resp.City,
			&resp.State,
			&resp.ZipCode,
			&resp.Available,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = riderID
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
