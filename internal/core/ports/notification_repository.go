package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
)

// NotificationRepository is the sink for store notifications. Writes are
// fire-and-forget from the caller's perspective once the enclosing
// transaction commits; stores read entries back only to flip their
// read status.
type NotificationRepository interface {
	// Add persists a new notification record.
	Add(ctx context.Context, n *notification.StoreNotification) error

	// Update persists read-status changes to an existing notification.
	Update(ctx context.Context, n *notification.StoreNotification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.StoreNotification, error)
}
