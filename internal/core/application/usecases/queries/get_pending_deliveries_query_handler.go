package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingDeliveriesQueryHandler reads a rider's open deliveries from the
// database. Joins the ledger to orders so stale records whose order already
// resolved never show up as work.
//
// Example:
//
//	handler := NewGetPendingDeliveriesQueryHandler(db)
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get pending deliveries: %v", err)
//	    return err
//	}
//	fmt.Printf("%d deliveries on the road\n", len(deliveries))
type GetPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDeliveriesQueryHandler creates a handler for pending delivery
// queries. Requires a GORM database connection for query execution.
func NewGetPendingDeliveriesQueryHandler(db *gorm.DB) GetPendingDeliveriesQueryHandler {
	return GetPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the query for the rider's pending deliveries.
// Only unresolved ledger records whose order is still Processing qualify;
// an empty result is reported as an ObjectNotFoundError rather than an
// empty list.
func (h GetPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDeliveriesQuery,
) ([]GetPendingDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetPendingDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.store_id,
			d.assign_time,
			o.total,
			o.zip_code
		FROM deliveries d
		JOIN orders o ON o.invoice_number = d.order_id
		WHERE d.rider_id = ?
		  AND d.resolved = false
		  AND o.status = ?
		ORDER BY d.assign_time
	`, query.RiderID().Bytes(), int(order.Processing)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingDeliveriesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderID,
			&resp.StoreID,
			&resp.AssignTime,
			&resp.OrderTotal,
			&resp.ZipCode,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.DeliveryID = deliveryID
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(deliveries) == 0 {
		return nil, errs.NewObjectNotFoundError("riderID", query.RiderID())
	}

	return deliveries, nil
}
