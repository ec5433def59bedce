package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/pkg/errs"
)

// ErrNotificationNotFound is returned when the addressed feed entry does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// MarkNotificationReadCommandHandler flips a store notification to read so it
// drops below the unread entries in the feed.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for feed acknowledgements.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the notification read and returns it. Acknowledging an entry
// that is already read succeeds without a second write taking effect.
func (h MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	command MarkNotificationReadCommand,
) (*notification.StoreNotification, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()

	entry, err := notificationRepo.Get(ctx, command.NotificationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}

	entry.MarkRead()

	if err := notificationRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
