package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves an order by its storage key.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByInvoice retrieves an order by its invoice identifier.
func (r *GormOrderRepository) GetByInvoice(ctx context.Context, invoiceNumber string) (*order.Order, error) {
	if invoiceNumber == "" {
		return nil, errs.NewValueIsRequiredError("invoiceNumber")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "invoice_number = ?", invoiceNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoiceNumber", invoiceNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists status and rider-name changes to an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := fromDomain(o)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(o.ID(), o)
	return nil
}
