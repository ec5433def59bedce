package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var ErrDeliveryNotFound = errors.New("delivery not found")

// ResolutionResult carries the state written by a successful resolution:
// the closed ledger record, the order in its terminal status, and the
// notification queued for the store.
type ResolutionResult struct {
	Record       *delivery.Record
	Order        *order.Order
	Notification *notification.StoreNotification
}

// ResolveDeliveryCommandHandler orchestrates delivery resolution.
// Applies the outcome to the ledger record and the order, and emits the store
// notification. All three writes commit in one transaction; a failure on any
// of them leaves all three untouched.
//
// A record resolves at most once: a second resolution attempt, delivered or
// cancelled, fails with delivery.ErrDeliveryAlreadyResolved.
//
// Example:
//
//	handler := NewResolveDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, delivery.ErrDeliveryAlreadyResolved):
//	    log.Println("Delivery already settled")
//	case errors.Is(err, ErrDeliveryNotFound):
//	    log.Println("Unknown delivery")
//	case err != nil:
//	    log.Printf("Resolution failed: %v", err)
//	}
type ResolveDeliveryCommandHandler struct {
	uowFactory ResolutionUoWFactory
}

// NewResolveDeliveryCommandHandler creates a handler for delivery resolution.
// Requires a ResolutionUoWFactory so the record, order, and notification
// writes land atomically.
func NewResolveDeliveryCommandHandler(uowFactory ResolutionUoWFactory) ResolveDeliveryCommandHandler {
	return ResolveDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery resolution command.
// On OutcomeDelivered the record closes with the order total as the collected
// amount and the order moves to Delivered; on OutcomeCancelled the record is
// voided and the order moves to Cancelled. Either way a notification for the
// order's zip code is appended.
func (h ResolveDeliveryCommandHandler) Handle(ctx context.Context, command ResolveDeliveryCommand) (ResolutionResult, error) {
	if err := command.Validate(); err != nil {
		return ResolutionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ResolutionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()
	notificationRepo := uow.NotificationRepository()

	record, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ResolutionResult{}, ErrDeliveryNotFound
	}
	if err != nil {
		return ResolutionResult{}, err
	}

	resolvedOrder, err := orderRepo.GetByInvoice(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ResolutionResult{}, ErrOrderNotFound
	}
	if err != nil {
		return ResolutionResult{}, err
	}

	now := time.Now().UTC()

	switch command.Outcome() {
	case notification.OutcomeDelivered:
		if err := record.Complete(now, resolvedOrder.Total()); err != nil {
			return ResolutionResult{}, err
		}
		if err := resolvedOrder.Deliver(); err != nil {
			return ResolutionResult{}, err
		}
	case notification.OutcomeCancelled:
		if err := record.Cancel(); err != nil {
			return ResolutionResult{}, err
		}
		if err := resolvedOrder.Cancel(); err != nil {
			return ResolutionResult{}, err
		}
	}

	storeNotification, err := notification.NewResolutionNotification(
		kernel.NewUUID(),
		resolvedOrder.ZipCode(),
		command.OrderID(),
		resolvedOrder.RiderName(),
		command.Outcome(),
		now,
	)
	if err != nil {
		return ResolutionResult{}, err
	}

	if err := deliveryRepo.Update(ctx, record); err != nil {
		return ResolutionResult{}, err
	}

	if err := orderRepo.Update(ctx, resolvedOrder); err != nil {
		return ResolutionResult{}, err
	}

	if err := notificationRepo.Add(ctx, storeNotification); err != nil {
		return ResolutionResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return ResolutionResult{}, err
	}

	return ResolutionResult{
		Record:       record,
		Order:        resolvedOrder,
		Notification: storeNotification,
	}, nil
}
