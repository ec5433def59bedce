package riderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderRepository implements RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider to the database.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rider to the database.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rider by ID.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a rider by unique username.
func (r *GormRiderRepository) GetByUsername(ctx context.Context, username string) (*rider.Rider, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPhone retrieves a rider by unique phone number.
func (r *GormRiderRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*rider.Rider, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("phone", phone.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered rider ordered by full name.
func (r *GormRiderRepository) GetAll(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	if err := r.db.WithContext(ctx).Order("full_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		restored, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, restored)
	}

	return riders, nil
}

// FindConflict checks the candidate's unique identity fields against stored
// riders. One query collects every clashing row; the rows are then compared
// field by field so the reported conflict always follows the fixed priority
// order, regardless of which row matched.
func (r *GormRiderRepository) FindConflict(ctx context.Context, candidate *rider.Rider) (string, error) {
	if err := candidate.Validate(); err != nil {
		return "", err
	}

	var dtos []RiderDTO
	err := r.db.WithContext(ctx).
		Where("id <> ?", candidate.ID().Bytes()).
		Where(
			"username = ? OR email = ? OR phone = ? OR aadhar_number = ? OR pan_number = ? OR bike_licence_number = ?",
			candidate.Username(),
			candidate.Email(),
			candidate.Phone().String(),
			candidate.AadharNumber(),
			candidate.PanNumber(),
			candidate.BikeLicenceNumber(),
		).
		Find(&dtos).Error
	if err != nil {
		return "", err
	}

	checks := []struct {
		field string
		clash func(RiderDTO) bool
	}{
		{ports.FieldUsername, func(d RiderDTO) bool { return d.Username == candidate.Username() }},
		{ports.FieldEmail, func(d RiderDTO) bool { return d.Email == candidate.Email() }},
		{ports.FieldPhone, func(d RiderDTO) bool { return d.Phone == candidate.Phone().String() }},
		{ports.FieldAadhar, func(d RiderDTO) bool { return d.AadharNumber == candidate.AadharNumber() }},
		{ports.FieldPan, func(d RiderDTO) bool { return d.PanNumber == candidate.PanNumber() }},
		{ports.FieldBikeLicence, func(d RiderDTO) bool { return d.BikeLicenceNumber == candidate.BikeLicenceNumber() }},
	}

	for _, check := range checks {
		for _, dto := range dtos {
			if check.clash(dto) {
				return check.field, nil
			}
		}
	}

	return "", nil
}
