// Package partnerrepo provides data transfer objects and mapping functions for
// partner persistence. The rider roster lives on the partner row as a Postgres
// text[] column carrying rider identifiers.
package partnerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO represents the database structure for persisting partners.
type PartnerDTO struct {
	ID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name   string         `gorm:"type:varchar(255);not null"`
	Email  string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Status string         `gorm:"type:varchar(16);not null"`
	Riders pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain entity to its database representation.
func fromDomain(p *partner.Partner) PartnerDTO {
	roster := make(pq.StringArray, 0, len(p.Riders()))
	for _, riderID := range p.Riders() {
		roster = append(roster, riderID.String())
	}

	return PartnerDTO{
		ID:     p.ID().Bytes(),
		Name:   p.Name(),
		Email:  p.Email(),
		Status: string(p.Status()),
		Riders: roster,
	}
}

// toDomain converts a database DTO to a partner domain entity using
// RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roster := make([]kernel.UUID, 0, len(dto.Riders))
	for _, raw := range dto.Riders {
		riderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		roster = append(roster, riderID)
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		dto.Email,
		partner.ApprovalStatus(dto.Status),
		roster,
	)
}
