package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.StoreNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.StoreNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*notification.StoreNotification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*notification.StoreNotification), args.Error(1)
}

type MockResolutionUoW struct {
	mock.Mock
}

func (m *MockResolutionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResolutionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResolutionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResolutionUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockResolutionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockResolutionUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockResolutionUoWFactory struct {
	mock.Mock
}

func (m *MockResolutionUoWFactory) Create() commands.ResolutionUoW {
	args := m.Called()
	return args.Get(0).(commands.ResolutionUoW)
}

type resolutionMocks struct {
	deliveryRepo     *MockDeliveryRepository
	orderRepo        *MockOrderRepository
	notificationRepo *MockNotificationRepository
	uow              *MockResolutionUoW
	factory          *MockResolutionUoWFactory
}

func newResolutionMocks(ctx context.Context) resolutionMocks {
	m := resolutionMocks{
		deliveryRepo:     new(MockDeliveryRepository),
		orderRepo:        new(MockOrderRepository),
		notificationRepo: new(MockNotificationRepository),
		uow:              new(MockResolutionUoW),
		factory:          new(MockResolutionUoWFactory),
	}

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("DeliveryRepository").Return(m.deliveryRepo).Once()
	m.uow.On("OrderRepository").Return(m.orderRepo).Once()
	m.uow.On("NotificationRepository").Return(m.notificationRepo).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()
	return m
}

func openRecord(t *testing.T, deliveryID kernel.UUID, orderID string) *delivery.Record {
	t.Helper()

	record, err := delivery.NewRecord(deliveryID, orderID, kernel.NewUUID(), "shop-7", time.Now().UTC())
	require.NoError(t, err)
	return record
}

func TestResolveDeliveryCommandHandler_Handle_Delivered(t *testing.T) {
	// Arrange
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewResolveDeliveryCommand("INV-1042", deliveryID, notification.OutcomeDelivered)
	require.NoError(t, err)

	m := newResolutionMocks(ctx)
	record := openRecord(t, deliveryID, "INV-1042")
	processingOrder := testOrder(t, "INV-1042", order.Processing, "Ravi Kumar")

	var capturedNotification *notification.StoreNotification

	m.deliveryRepo.On("Get", ctx, deliveryID).Return(record, nil).Once()
	m.orderRepo.On("GetByInvoice", ctx, "INV-1042").Return(processingOrder, nil).Once()
	m.deliveryRepo.On("Update", ctx, record).Return(nil).Once()
	m.orderRepo.On("Update", ctx, processingOrder).Return(nil).Once()
	m.notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.StoreNotification) bool {
		capturedNotification = n
		return true
	})).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewResolveDeliveryCommandHandler(m.factory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, record.Delivered())
	assert.True(t, record.Resolved())
	require.NotNil(t, record.CompletionTime())
	assert.Equal(t, processingOrder.Total(), record.Amount())
	assert.Equal(t, order.Delivered, processingOrder.Status())

	require.NotNil(t, capturedNotification)
	assert.Equal(t, notification.OutcomeDelivered, capturedNotification.OrderStatus())
	assert.Equal(t, notification.ReadStatusUnread, capturedNotification.ReadStatus())
	assert.Equal(t, processingOrder.ZipCode(), capturedNotification.ZipCode())
	assert.Equal(t, "Order INV-1042 assigned to rider Ravi Kumar was delivered", capturedNotification.Message())

	assert.Equal(t, record, result.Record)
	assert.Equal(t, processingOrder, result.Order)
	assert.Equal(t, capturedNotification, result.Notification)
	m.uow.AssertExpectations(t)
}

func TestResolveDeliveryCommandHandler_Handle_Cancelled(t *testing.T) {
	// Arrange
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewResolveDeliveryCommand("INV-1042", deliveryID, notification.OutcomeCancelled)
	require.NoError(t, err)

	m := newResolutionMocks(ctx)
	record := openRecord(t, deliveryID, "INV-1042")
	processingOrder := testOrder(t, "INV-1042", order.Processing, "Ravi Kumar")

	m.deliveryRepo.On("Get", ctx, deliveryID).Return(record, nil).Once()
	m.orderRepo.On("GetByInvoice", ctx, "INV-1042").Return(processingOrder, nil).Once()
	m.deliveryRepo.On("Update", ctx, record).Return(nil).Once()
	m.orderRepo.On("Update", ctx, processingOrder).Return(nil).Once()
	m.notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.StoreNotification) bool {
		return n.OrderStatus() == notification.OutcomeCancelled
	})).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewResolveDeliveryCommandHandler(m.factory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, record.Delivered(), "cancelled delivery never counts as delivered")
	assert.True(t, record.Resolved())
	assert.Nil(t, record.CompletionTime())
	assert.Zero(t, record.Amount())
	assert.Equal(t, order.Cancelled, processingOrder.Status())
	m.uow.AssertExpectations(t)
}

func TestResolveDeliveryCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	// Arrange
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewResolveDeliveryCommand("INV-1042", deliveryID, notification.OutcomeDelivered)
	require.NoError(t, err)

	m := newResolutionMocks(ctx)
	record := openRecord(t, deliveryID, "INV-1042")
	require.NoError(t, record.Cancel())

	m.deliveryRepo.On("Get", ctx, deliveryID).Return(record, nil).Once()
	m.orderRepo.On("GetByInvoice", ctx, "INV-1042").
		Return(testOrder(t, "INV-1042", order.Cancelled, "Ravi Kumar"), nil).Once()

	handler := commands.NewResolveDeliveryCommandHandler(m.factory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, delivery.ErrDeliveryAlreadyResolved)
	m.notificationRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestResolveDeliveryCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewResolveDeliveryCommand("INV-1042", deliveryID, notification.OutcomeDelivered)
	require.NoError(t, err)

	m := newResolutionMocks(ctx)
	m.deliveryRepo.On("Get", ctx, deliveryID).
		Return((*delivery.Record)(nil), notFound("deliveryID", deliveryID)).Once()

	handler := commands.NewResolveDeliveryCommandHandler(m.factory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrDeliveryNotFound)
}

func TestResolveDeliveryCommandHandler_Handle_NotificationAddErrorRollsBack(t *testing.T) {
	// The order and record updates must not survive a failed notification
	// write; all three land in one transaction or none do.

	// Arrange
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewResolveDeliveryCommand("INV-1042", deliveryID, notification.OutcomeDelivered)
	require.NoError(t, err)

	expectedError := errors.New("notification insert failed")
	m := newResolutionMocks(ctx)
	record := openRecord(t, deliveryID, "INV-1042")

	m.deliveryRepo.On("Get", ctx, deliveryID).Return(record, nil).Once()
	m.orderRepo.On("GetByInvoice", ctx, "INV-1042").
		Return(testOrder(t, "INV-1042", order.Processing, "Ravi Kumar"), nil).Once()
	m.deliveryRepo.On("Update", ctx, record).Return(nil).Once()
	m.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	m.notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.StoreNotification")).
		Return(expectedError).Once()

	handler := commands.NewResolveDeliveryCommandHandler(m.factory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.uow.AssertExpectations(t)
}
