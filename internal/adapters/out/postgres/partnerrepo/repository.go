package partnerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerDirectory implements PartnerDirectory using GORM.
type GormPartnerDirectory struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerDirectory creates a new GORM partner directory.
func NewGormPartnerDirectory(db *gorm.DB, tracker aggregateTracker) *GormPartnerDirectory {
	return &GormPartnerDirectory{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a partner by ID.
func (r *GormPartnerDirectory) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AppendRider adds the rider to the partner's roster and persists the row.
// The roster update goes through the domain entity so duplicate appends are
// rejected before touching the database.
func (r *GormPartnerDirectory) AppendRider(ctx context.Context, partnerID, riderID kernel.UUID) error {
	p, err := r.Get(ctx, partnerID)
	if err != nil {
		return err
	}

	if err := p.AppendRider(riderID); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}
