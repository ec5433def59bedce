package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindRiderQueryHandler resolves a rider by phone number or username.
// Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewFindRiderQueryHandler(db)
//	rider, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("No such rider")
//	}
type FindRiderQueryHandler struct {
	db *gorm.DB
}

// NewFindRiderQueryHandler creates a handler for rider lookup queries.
// Requires a GORM database connection for query execution.
func NewFindRiderQueryHandler(db *gorm.DB) FindRiderQueryHandler {
	return FindRiderQueryHandler{db: db}
}

// Handle executes the rider lookup.
// A 10-digit identifier hits the phone column, everything else the username
// column. Returns an ObjectNotFoundError when neither matches a rider.
func (h FindRiderQueryHandler) Handle(ctx context.Context, query FindRiderQuery) (RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return RiderResponse{}, err
	}

	column := "username"
	if query.ByPhone() {
		column = "phone"
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE `+column+` = ?
	`, query.Identifier()).Row()

	resp, err := scanRiderResponse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RiderResponse{}, errs.NewObjectNotFoundError("identifier", query.Identifier())
	}
	if err != nil {
		return RiderResponse{}, err
	}

	return resp, nil
}

func scanRiderResponse(row *sql.Row) (RiderResponse, error) {
	var resp RiderResponse
	var id uuid.UUID

	err := row.Scan(
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
		return RiderResponse{}, err
	}

	riderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RiderResponse{}, err
	}
	resp.ID = riderID

	return resp, nil
}
