// Package deliveryrepo provides data transfer objects and mapping functions for the
// delivery ledger. The ledger's one-record-per-order invariant lives here as a
// unique index on the order_id column; concurrent inserts for the same order
// collapse to a single winner at the database level.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting ledger records.
type DeliveryDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	RiderID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoreID        string     `gorm:"type:varchar(255);not null"`
	AssignTime     time.Time  `gorm:"not null"`
	CompletionTime *time.Time `gorm:""`
	Amount         int        `gorm:"not null;default:0"`
	Delivered      bool       `gorm:"not null;default:false"`
	Resolved       bool       `gorm:"not null;default:false;index"`
}

// TableName specifies the database table name for ledger records.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a ledger record to its database representation.
func fromDomain(record *delivery.Record) DeliveryDTO {
	return DeliveryDTO{
		ID:             record.ID().Bytes(),
		OrderID:        record.OrderID(),
		RiderID:        record.RiderID().Bytes(),
		StoreID:        record.StoreID(),
		AssignTime:     record.AssignTime(),
		CompletionTime: record.CompletionTime(),
		Amount:         record.Amount(),
		Delivered:      record.Delivered(),
		Resolved:       record.Resolved(),
	}
}

// toDomain converts a database DTO to a ledger record using RestoreRecord.
func toDomain(dto DeliveryDTO) (*delivery.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreRecord(
		id,
		dto.OrderID,
		riderID,
		dto.StoreID,
		dto.AssignTime,
		dto.CompletionTime,
		dto.Amount,
		dto.Delivered,
		dto.Resolved,
	)
}
