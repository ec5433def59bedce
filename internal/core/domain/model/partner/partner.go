// Package partner models the store partner that owns rider rosters. The
// dispatch core consumes partners through the narrow PartnerDirectory port;
// onboarding and approval workflows live outside this module.
package partner

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

// ApprovalStatus is the onboarding state of a partner.
type ApprovalStatus string

const (
	ApprovalAccepted ApprovalStatus = "Accepted"
	ApprovalRejected ApprovalStatus = "Rejected"
	ApprovalHold     ApprovalStatus = "Hold"
)

// Partner is a store partner who registers riders. Only the fields the
// dispatch workflows touch are modelled: identity, approval status, and the
// roster of rider identifiers appended to on registration.
type Partner struct {
	id     kernel.UUID
	name   string
	email  string
	status ApprovalStatus
	riders []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPartner creates a partner with an empty roster. New partners start on Hold.
func NewPartner(id kernel.UUID, name, email string) (*Partner, error) {
	p := &Partner{
		status: ApprovalHold,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a partner with its roster and approval status.
func RestorePartner(
	id kernel.UUID,
	name, email string,
	status ApprovalStatus,
	riders []kernel.UUID,
) (*Partner, error) {
	p, err := NewPartner(id, name, email)
	if err != nil {
		return nil, err
	}

	if status != ApprovalAccepted && status != ApprovalRejected && status != ApprovalHold {
		return nil, errs.NewValueIsInvalidError("status")
	}
	p.status = status
	p.riders = make([]kernel.UUID, len(riders))
	copy(p.riders, riders)
	return p, nil
}

// Validate checks that the Partner was built through a constructor.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's contact email.
func (p *Partner) Email() string {
	return p.email
}

// Status returns the onboarding approval status.
func (p *Partner) Status() ApprovalStatus {
	return p.status
}

// Riders returns a copy of the partner's rider roster.
func (p *Partner) Riders() []kernel.UUID {
	out := make([]kernel.UUID, len(p.riders))
	copy(out, p.riders)
	return out
}

// AppendRider adds a rider to the roster. Appending the same rider twice is
// rejected; the registry performs the global identity checks before this.
func (p *Partner) AppendRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	for _, existing := range p.riders {
		if existing.IsEqual(riderID) {
			return errs.NewValueIsInvalidError("riderId already on roster")
		}
	}
	p.riders = append(p.riders, riderID)
	return nil
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Partner) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}
