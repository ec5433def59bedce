package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignRiderCommand(t *testing.T) {
	t.Run("valid_data_creates_command", func(t *testing.T) {
		// Arrange
		riderID := kernel.NewUUID()

		// Act
		cmd, err := commands.NewAssignRiderCommand("INV-1042", riderID, "shop-7")

		// Assert
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "INV-1042", cmd.OrderID())
		assert.Equal(t, riderID, cmd.RiderID())
		assert.Equal(t, "shop-7", cmd.StoreID())
	})

	t.Run("empty_order_id_is_rejected", func(t *testing.T) {
		// Act
		_, err := commands.NewAssignRiderCommand("", kernel.NewUUID(), "shop-7")

		// Assert
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_rider_id_is_rejected", func(t *testing.T) {
		// Act
		_, err := commands.NewAssignRiderCommand("INV-1042", kernel.UUID{}, "shop-7")

		// Assert
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_store_id_is_rejected", func(t *testing.T) {
		// Act
		_, err := commands.NewAssignRiderCommand("INV-1042", kernel.NewUUID(), "")

		// Assert
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		// Arrange
		var cmd commands.AssignRiderCommand

		// Act & Assert
		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignRiderCommandIsNotConstructed)
	})
}
