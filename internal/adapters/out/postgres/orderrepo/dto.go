// Package orderrepo provides data transfer objects and mapping functions for order
// persistence. The dispatch core never creates orders, so this package exposes
// only lookup and update operations over rows owned by the external store.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order rows.
// invoice_number is the application-level identifier the dispatch flows
// address orders by; id is the storage key.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Status        int       `gorm:"type:int;not null;index"`
	RiderName     string    `gorm:"type:varchar(255)"`
	Total         int       `gorm:"type:int;not null"`
	ZipCode       string    `gorm:"type:varchar(6);not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain entity to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID().Bytes(),
		InvoiceNumber: o.InvoiceNumber(),
		Status:        int(o.Status()),
		RiderName:     o.RiderName(),
		Total:         o.Total(),
		ZipCode:       o.ZipCode().String(),
	}
}

// toDomain converts a database DTO to an order domain entity using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zipCode, err := kernel.NewZipCode(dto.ZipCode)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.InvoiceNumber,
		order.Status(dto.Status),
		dto.RiderName,
		dto.Total,
		zipCode,
	)
}
