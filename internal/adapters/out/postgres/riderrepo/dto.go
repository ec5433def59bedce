// Package riderrepo provides data transfer objects and mapping functions for rider persistence.
// This package implements the repository pattern for the rider domain aggregate, handling
// the conversion between domain entities and database representations.
package riderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// Every identity field carries a unique index so the database backs the
// registry's uniqueness checks even when two registrations race.
type RiderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username          string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password          string     `gorm:"type:varchar(255);not null"`
	FullName          string     `gorm:"type:varchar(255);not null"`
	Phone             string     `gorm:"type:varchar(10);not null;uniqueIndex"`
	Email             string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	AadharNumber      string     `gorm:"type:varchar(12);not null;uniqueIndex"`
	PanNumber         string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	BikeLicenceNumber string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	VehicleDetails    string     `gorm:"type:varchar(255)"`
	Address           AddressDTO `gorm:"embedded"`
	Available         bool       `gorm:"not null"`
}

// TableName specifies the database table name for rider entities.
// Overrides GORM's default naming convention to use "riders".
func (RiderDTO) TableName() string {
	return "riders"
}

// AddressDTO represents the embedded postal address within the rider table.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255)"`
	State   string `gorm:"type:varchar(255)"`
	ZipCode string `gorm:"type:varchar(6)"`
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(r *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:                r.ID().Bytes(),
		Username:          r.Username(),
		Password:          r.Password(),
		FullName:          r.FullName(),
		Phone:             r.Phone().String(),
		Email:             r.Email(),
		AadharNumber:      r.AadharNumber(),
		PanNumber:         r.PanNumber(),
		BikeLicenceNumber: r.BikeLicenceNumber(),
		VehicleDetails:    r.VehicleDetails(),
		Address: AddressDTO{
			Street:  r.Address().Street,
			City:    r.Address().City,
			State:   r.Address().State,
			ZipCode: r.Address().ZipCode,
		},
		Available: r.Available(),
	}
}

// toDomain converts a database DTO to a rider domain aggregate using RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id,
		dto.Username,
		dto.Password,
		dto.FullName,
		phone,
		dto.Email,
		dto.AadharNumber,
		dto.PanNumber,
		dto.BikeLicenceNumber,
		dto.VehicleDetails,
		rider.Address{
			Street:  dto.Address.Street,
			City:    dto.Address.City,
			State:   dto.Address.State,
			ZipCode: dto.Address.ZipCode,
		},
		dto.Available,
	)
}
