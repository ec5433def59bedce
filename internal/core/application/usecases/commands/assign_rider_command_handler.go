package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	ErrRiderNotFound        = errors.New("rider not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderAlreadyAssigned = errors.New("a rider is already assigned to this order")
	ErrAssignmentInProgress = errors.New("assignment for this order is already in progress")
)

// AssignmentLock serializes concurrent assignment attempts on the same order.
// Acquire returns false without error when another attempt currently holds
// the lock. A nil lock disables the fence; the ledger's unique order index
// still rejects the second writer at commit time.
type AssignmentLock interface {
	Acquire(ctx context.Context, orderID string) (bool, error)
	Release(ctx context.Context, orderID string)
}

// AssignmentResult carries the outcome of a successful assignment: the rider
// now on the road and the ledger record opened for the order.
type AssignmentResult struct {
	Rider  *rider.Rider
	Record *delivery.Record
}

// AssignRiderCommandHandler orchestrates the rider assignment process.
// Checks the delivery ledger for an existing record, moves the order to
// processing under the rider's name, and opens a new ledger record, all
// within a single transaction.
//
// Two concurrent assignments for the same order cannot both succeed: the
// ledger keeps a unique index on the order id, so the second writer fails
// with ErrOrderAlreadyAssigned at commit even when both passed the read
// check. The optional AssignmentLock short-circuits the loser earlier.
//
// Example:
//
//	handler := NewAssignRiderCommandHandler(uowFactory, policy, lock)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderAlreadyAssigned):
//	    log.Println("Order taken")
//	case errors.Is(err, services.ErrRiderUnavailable):
//	    log.Println("Rider is busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Rider %s assigned", result.Rider.FullName())
//	}
type AssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	policy     services.AssignmentPolicy
	lock       AssignmentLock
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
// lock may be nil to run without the distributed fence.
func NewAssignRiderCommandHandler(
	uowFactory AssignmentUoWFactory,
	policy services.AssignmentPolicy,
	lock AssignmentLock,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		lock:       lock,
	}
}

// Handle processes the rider assignment command.
// Refuses orders already present in the ledger (ErrOrderAlreadyAssigned) and
// unknown riders or orders (ErrRiderNotFound, ErrOrderNotFound). When the
// availability gate is on, busy riders are rejected with
// services.ErrRiderUnavailable.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) (AssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	if h.lock != nil {
		acquired, err := h.lock.Acquire(ctx, command.OrderID())
		if err != nil {
			return AssignmentResult{}, err
		}
		if !acquired {
			return AssignmentResult{}, ErrAssignmentInProgress
		}
		defer h.lock.Release(ctx, command.OrderID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	riderRepo := uow.RiderRepository()
	orderRepo := uow.OrderRepository()

	_, err := deliveryRepo.GetByOrderID(ctx, command.OrderID())
	if err == nil {
		return AssignmentResult{}, ErrOrderAlreadyAssigned
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentResult{}, err
	}

	assignee, err := riderRepo.Get(ctx, command.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentResult{}, ErrRiderNotFound
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	if err := h.policy.CanAssign(assignee); err != nil {
		return AssignmentResult{}, err
	}

	assignedOrder, err := orderRepo.GetByInvoice(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentResult{}, ErrOrderNotFound
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	if err := assignedOrder.AssignTo(assignee.FullName()); err != nil {
		return AssignmentResult{}, err
	}

	// With the gate off a busy rider keeps their flag; only free riders flip.
	if !assignee.Available() {
		if err := assignee.MarkBusy(); err != nil {
			return AssignmentResult{}, err
		}
	}

	record, err := delivery.NewRecord(
		kernel.NewUUID(),
		command.OrderID(),
		command.RiderID(),
		command.StoreID(),
		time.Now().UTC(),
	)
	if err != nil {
		return AssignmentResult{}, err
	}

	if err := orderRepo.Update(ctx, assignedOrder); err != nil {
		return AssignmentResult{}, err
	}

	if err := riderRepo.Update(ctx, assignee); err != nil {
		return AssignmentResult{}, err
	}

	if err := deliveryRepo.Add(ctx, record); err != nil {
		if errors.Is(err, ports.ErrDuplicateOrderAssignment) {
			return AssignmentResult{}, ErrOrderAlreadyAssigned
		}
		return AssignmentResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, ports.ErrDuplicateOrderAssignment) {
			return AssignmentResult{}, ErrOrderAlreadyAssigned
		}
		return AssignmentResult{}, err
	}

	return AssignmentResult{Rider: assignee, Record: record}, nil
}
