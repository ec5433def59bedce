package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand represents a store acknowledging one entry of
// its notification feed. Marking an already-read entry is a no-op, not a
// conflict; the feed ordering is the only thing the flag drives.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification read.
func NewMarkNotificationReadCommand(notificationID kernel.UUID) (MarkNotificationReadCommand, error) {
	command := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setNotificationID(notificationID); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkNotificationReadCommandIsNotConstructed if validation fails.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification ID from the command.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c *MarkNotificationReadCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("notificationID")
	}

	c.notificationID = notificationID
	return nil
}
