package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/pkg/errs"
)

// CompleteOrderCommandHandler orchestrates the rider-driven completion flow.
// Frees the rider first, then closes the ledger record addressed by order and
// rider, and delivers the order, all in one transaction.
//
// Freeing the rider doubles as the double-completion check: a rider who is
// already free fails with rider.ErrRiderAlreadyFree before any other write.
//
// Example:
//
//	handler := NewCompleteOrderCommandHandler(uowFactory)
//	freed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, rider.ErrRiderAlreadyFree):
//	    log.Println("Completion already reported")
//	case errors.Is(err, ErrDeliveryNotFound):
//	    log.Println("No delivery for this order and rider")
//	case err != nil:
//	    log.Printf("Completion failed: %v", err)
//	default:
//	    log.Printf("Rider %s is free again", freed.FullName())
//	}
type CompleteOrderCommandHandler struct {
	uowFactory CompletionUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for rider-driven
// completions. Requires a CompletionUoWFactory covering the rider, delivery,
// and order repositories.
func NewCompleteOrderCommandHandler(uowFactory CompletionUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command and returns the freed rider.
// The ledger record is looked up by the order and rider pair
// (ErrDeliveryNotFound when absent); the order moves to Delivered and the
// record closes with the order total as the collected amount.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) (*rider.Rider, error) {
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

	riderRepo := uow.RiderRepository()
	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()

	reporter, err := riderRepo.Get(ctx, command.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrRiderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := reporter.MarkFree(); err != nil {
		return nil, err
	}

	record, err := deliveryRepo.GetByOrderAndRider(ctx, command.OrderID(), command.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrDeliveryNotFound
	}
	if err != nil {
		return nil, err
	}

	completedOrder, err := orderRepo.GetByInvoice(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := completedOrder.Deliver(); err != nil {
		return nil, err
	}

	if err := record.Complete(time.Now().UTC(), completedOrder.Total()); err != nil {
		return nil, err
	}

	if err := riderRepo.Update(ctx, reporter); err != nil {
		return nil, err
	}

	if err := deliveryRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	if err := orderRepo.Update(ctx, completedOrder); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return reporter, nil
}
