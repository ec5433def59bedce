// Package notificationrepo provides data transfer objects and mapping functions for
// store notification persistence.
package notificationrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for store notifications.
// zip_code is indexed because the feed is always read per store zip.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZipCode     string    `gorm:"type:varchar(6);not null;index"`
	Message     string    `gorm:"type:text;not null"`
	OrderStatus string    `gorm:"type:varchar(16);not null"`
	ReadStatus  string    `gorm:"type:varchar(8);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for notification entities.
// Overrides GORM's default naming convention to use "store_notifications".
func (NotificationDTO) TableName() string {
	return "store_notifications"
}

// fromDomain converts a store notification to its database representation.
func fromDomain(n *notification.StoreNotification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		ZipCode:     n.ZipCode().String(),
		Message:     n.Message(),
		OrderStatus: string(n.OrderStatus()),
		ReadStatus:  string(n.ReadStatus()),
		CreatedAt:   n.CreatedAt(),
	}
}

// toDomain converts a database DTO to a store notification using
// RestoreStoreNotification.
func toDomain(dto NotificationDTO) (*notification.StoreNotification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zipCode, err := kernel.NewZipCode(dto.ZipCode)
	if err != nil {
		return nil, err
	}

	return notification.RestoreStoreNotification(
		id,
		zipCode,
		dto.Message,
		notification.Outcome(dto.OrderStatus),
		notification.ReadStatus(dto.ReadStatus),
		dto.CreatedAt,
	)
}
