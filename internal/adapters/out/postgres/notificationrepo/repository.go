package notificationrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.StoreNotification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.StoreNotification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves read-status changes to an existing notification.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.StoreNotification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(n.ID(), n)
	return nil
}
