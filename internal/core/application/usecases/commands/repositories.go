// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// DeliveryRepoFactory provides access to the delivery ledger within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// NotificationRepoFactory provides access to the store notification repository
	// within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// PartnerDirectoryFactory provides access to the partner directory within a transaction.
	PartnerDirectoryFactory interface {
		PartnerDirectory() ports.PartnerDirectory
	}

	// RiderUoW manages transactions for rider-only operations.
	// Used when commands only modify the rider aggregate.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	// Used when updating the read status of a store's feed entry.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// RegistrationUoW manages transactions for rider registration.
	// Registration writes the rider and appends it to the partner roster atomically.
	RegistrationUoW interface {
		TxManager
		RiderRepoFactory
		PartnerDirectoryFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// AssignmentUoW manages transactions for rider assignment.
	// Assignment reads the ledger and the rider, moves the order to processing,
	// and appends a delivery record in a single transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   deliveryRepo := uow.DeliveryRepository()
	//   riderRepo := uow.RiderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		RiderRepoFactory
		DeliveryRepoFactory
		OrderRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ResolutionUoW manages transactions for delivery resolution.
	// Resolution updates the delivery record, the order, and the store
	// notification as one atomic write set.
	ResolutionUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		NotificationRepoFactory
	}

	// ResolutionUoWFactory creates new resolution unit of work instances.
	ResolutionUoWFactory interface {
		Create() ResolutionUoW
	}

	// CompletionUoW manages transactions for the rider-driven completion flow.
	// Completion frees the rider, closes the delivery record and delivers the order.
	CompletionUoW interface {
		TxManager
		RiderRepoFactory
		DeliveryRepoFactory
		OrderRepoFactory
	}

	// CompletionUoWFactory creates new completion unit of work instances.
	CompletionUoWFactory interface {
		Create() CompletionUoW
	}
)
