package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerDirectory is the narrow contract onto the partner system.
// Rider registration needs exactly two capabilities: resolving the owning
// partner and appending a freshly registered rider to that partner's roster.
type PartnerDirectory interface {
	// Get retrieves a partner by identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// AppendRider adds the rider to the partner's roster and persists it.
	AppendRider(ctx context.Context, partnerID, riderID kernel.UUID) error
}
