package deliveryrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery ledger repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ledger record. A second record for the same order id trips
// the unique index; with TranslateError enabled gorm reports that as
// ErrDuplicatedKey, which is surfaced as ports.ErrDuplicateOrderAssignment.
func (r *GormDeliveryRepository) Add(ctx context.Context, record *delivery.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateOrderAssignment
		}
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves an existing ledger record.
func (r *GormDeliveryRepository) Update(ctx context.Context, record *delivery.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a ledger record by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the record for an order's invoice identifier.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID string) (*delivery.Record, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderAndRider retrieves the record matching both identifiers.
func (r *GormDeliveryRepository) GetByOrderAndRider(
	ctx context.Context,
	orderID string,
	riderID kernel.UUID,
) (*delivery.Record, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND rider_id = ?", orderID, riderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

