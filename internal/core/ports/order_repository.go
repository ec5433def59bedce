package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository is the narrow contract onto the external order store.
// The dispatch core never creates orders; it only reads them and writes back
// status and rider-name transitions.
type OrderRepository interface {
	// Get retrieves an order by its storage-assigned identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByInvoice retrieves an order by its application-level invoice identifier.
	GetByInvoice(ctx context.Context, invoiceNumber string) (*order.Order, error)

	// Update persists status and rider-name changes to an existing order.
	Update(ctx context.Context, o *order.Order) error
}
