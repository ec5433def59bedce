package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRiderUoW struct {
	mock.Mock
}

func (m *MockRiderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRiderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRiderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRiderUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

type MockRiderUoWFactory struct {
	mock.Mock
}

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

func TestNewSetRiderAvailabilityCommand(t *testing.T) {
	t.Run("valid_data_creates_command", func(t *testing.T) {
		// Arrange
		riderID := kernel.NewUUID()

		// Act
		cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, true)

		// Assert
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, riderID, cmd.RiderID())
		assert.True(t, cmd.Available())
	})

	t.Run("zero_rider_id_is_rejected", func(t *testing.T) {
		// Act
		_, err := commands.NewSetRiderAvailabilityCommand(kernel.UUID{}, true)

		// Assert
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		// Arrange
		var cmd commands.SetRiderAvailabilityCommand

		// Act & Assert
		require.ErrorIs(t, cmd.Validate(), commands.ErrSetRiderAvailabilityCommandIsNotConstructed)
	})
}

func TestSetRiderAvailabilityCommandHandler_Handle_FlipsFlag(t *testing.T) {
	// Arrange
	ctx := t.Context()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, true)
	require.NoError(t, err)

	freeRider := testRider(t, riderID, false)
	mockRepo := new(MockRiderRepository)
	mockUoW := new(MockRiderUoW)
	mockFactory := new(MockRiderUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RiderRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, riderID).Return(freeRider, nil).Once()
	mockRepo.On("Update", ctx, freeRider).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSetRiderAvailabilityCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, updated.Available())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestSetRiderAvailabilityCommandHandler_Handle_NoOpFlipIsConflict(t *testing.T) {
	// Arrange
	ctx := t.Context()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, true)
	require.NoError(t, err)

	mockRepo := new(MockRiderRepository)
	mockUoW := new(MockRiderUoW)
	mockFactory := new(MockRiderUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RiderRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, riderID).Return(testRider(t, riderID, true), nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSetRiderAvailabilityCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, rider.ErrRiderAlreadyBusy)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSetRiderAvailabilityCommandHandler_Handle_RiderNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, false)
	require.NoError(t, err)

	mockRepo := new(MockRiderRepository)
	mockUoW := new(MockRiderUoW)
	mockFactory := new(MockRiderUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RiderRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, riderID).
		Return((*rider.Rider)(nil), notFound("riderID", riderID)).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSetRiderAvailabilityCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrRiderNotFound)
	mockUoW.AssertExpectations(t)
}
