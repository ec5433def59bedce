package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	zip, err := kernel.NewZipCode("560001")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "INV-100", 25000, zip)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending_without_rider", func(t *testing.T) {
		o := pendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.RiderName())
		assert.Equal(t, "INV-100", o.InvoiceNumber())
	})

	t.Run("rejects_empty_invoice_number", func(t *testing.T) {
		zip, err := kernel.NewZipCode("560001")
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "", 100, zip)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_negative_total", func(t *testing.T) {
		zip, err := kernel.NewZipCode("560001")
		require.NoError(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "INV-100", -1, zip)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrderAssignTo(t *testing.T) {
	t.Run("pending_to_processing_sets_rider_name", func(t *testing.T) {
		o := pendingOrder(t)

		require.NoError(t, o.AssignTo("Ravi Kumar"))

		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, "Ravi Kumar", o.RiderName())
	})

	t.Run("requires_rider_name", func(t *testing.T) {
		o := pendingOrder(t)
		require.ErrorIs(t, o.AssignTo(""), errs.ErrValueIsRequired)
	})

	t.Run("processing_order_cannot_be_reassigned", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.AssignTo("Ravi Kumar"))

		require.ErrorIs(t, o.AssignTo("Asha Patil"), errs.ErrValueIsInvalid)
		assert.Equal(t, "Ravi Kumar", o.RiderName())
	})
}

func TestOrderResolution(t *testing.T) {
	t.Run("processing_to_delivered", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.AssignTo("Ravi Kumar"))

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("processing_to_cancelled", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.AssignTo("Ravi Kumar"))

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("delivered_is_terminal", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.AssignTo("Ravi Kumar"))
		require.NoError(t, o.Deliver())

		require.Error(t, o.Deliver())
		require.Error(t, o.Cancel())
		require.Error(t, o.AssignTo("Asha Patil"))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("pending_order_cannot_be_resolved", func(t *testing.T) {
		o := pendingOrder(t)

		require.Error(t, o.Deliver())
		require.Error(t, o.Cancel())
	})
}

func TestStatus(t *testing.T) {
	t.Run("parse_valid_statuses", func(t *testing.T) {
		for _, name := range []string{"Pending", "Processing", "Delivered", "Cancelled"} {
			status, err := order.ParseStatus(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("parse_rejects_unknown_value", func(t *testing.T) {
		_, err := order.ParseStatus("Shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.ParseStatus("delivered") // case-sensitive
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal_statuses", func(t *testing.T) {
		assert.False(t, order.Pending.IsTerminal())
		assert.False(t, order.Processing.IsTerminal())
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		assert.Equal(t, "Unknown", order.Unknown.String())
	})
}
