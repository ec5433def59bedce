package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreNotificationsQueryHandler reads a zip code's notification feed from
// the database, unread entries before read ones, newest first within each
// group.
type GetStoreNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreNotificationsQueryHandler creates a handler for notification
// feed queries. Requires a GORM database connection for query execution.
func NewGetStoreNotificationsQueryHandler(db *gorm.DB) GetStoreNotificationsQueryHandler {
	return GetStoreNotificationsQueryHandler{db: db}
}

// Handle executes the notification feed query.
// An empty feed yields an empty slice, not an error.
func (h GetStoreNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreNotificationsQuery,
) ([]GetStoreNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetStoreNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			message,
			order_status,
			read_status,
			created_at
		FROM store_notifications
		WHERE zip_code = ?
		ORDER BY read_status = ? DESC, created_at DESC
	`, query.ZipCode().String(), string(notification.ReadStatusUnread)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStoreNotificationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Message,
			&resp.OrderStatus,
			&resp.ReadStatus,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID
		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
