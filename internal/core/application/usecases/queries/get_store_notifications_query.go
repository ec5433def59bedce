package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetStoreNotificationsQueryIsNotConstructed = errors.New(
	"GetStoreNotificationsQuery must be created via NewGetStoreNotificationsQuery constructor",
)

// GetStoreNotificationsQuery retrieves the resolution feed for a store zip
// code, unread entries first.
type GetStoreNotificationsQuery struct { //nolint:recvcheck //using for validation
	zipCode kernel.ZipCode

	guard guard.ConstructorGuard
}

// NewGetStoreNotificationsQuery creates a query for a zip code's notification
// feed.
func NewGetStoreNotificationsQuery(zipCode kernel.ZipCode) (GetStoreNotificationsQuery, error) {
	if err := zipCode.Validate(); err != nil {
		return GetStoreNotificationsQuery{}, errs.NewValueIsRequiredError("zipCode")
	}

	return GetStoreNotificationsQuery{
		zipCode: zipCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreNotificationsQueryIsNotConstructed if validation fails.
func (q GetStoreNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreNotificationsQueryIsNotConstructed)
}

// ZipCode returns the zip code from the query.
func (q GetStoreNotificationsQuery) ZipCode() kernel.ZipCode {
	return q.zipCode
}

// GetStoreNotificationsQueryResponse represents one entry of a store's
// notification feed.
type GetStoreNotificationsQueryResponse struct {
	ID          kernel.UUID
	Message     string
	OrderStatus string
	ReadStatus  string
	CreatedAt   time.Time
}
