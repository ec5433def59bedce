package commands_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockRiderRepository struct {
	mock.Mock
}

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetByUsername(ctx context.Context, username string) (*rider.Rider, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetByPhone(ctx context.Context, phone kernel.Phone) (*rider.Rider, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetAll(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) FindConflict(ctx context.Context, candidate *rider.Rider) (string, error) {
	args := m.Called(ctx, candidate)
	return args.String(0), args.Error(1)
}

type MockPartnerDirectory struct {
	mock.Mock
}

func (m *MockPartnerDirectory) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerDirectory) AppendRider(ctx context.Context, partnerID, riderID kernel.UUID) error {
	args := m.Called(ctx, partnerID, riderID)
	return args.Error(0)
}

type MockRegistrationUoW struct {
	mock.Mock
}

func (m *MockRegistrationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockRegistrationUoW) PartnerDirectory() ports.PartnerDirectory {
	args := m.Called()
	return args.Get(0).(ports.PartnerDirectory)
}

type MockRegistrationUoWFactory struct {
	mock.Mock
}

func (m *MockRegistrationUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}

func testPartner(t *testing.T, id kernel.UUID) *partner.Partner {
	t.Helper()

	p, err := partner.NewPartner(id, "Fresh Mart", "freshmart@example.com")
	require.NoError(t, err)
	return p
}

func TestNewRegisterRiderCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockRegistrationUoWFactory)

	// Act
	handler := commands.NewRegisterRiderCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestRegisterRiderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newRegisterCommand(t)

	mockRiderRepo := new(MockRiderRepository)
	mockPartners := new(MockPartnerDirectory)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	var capturedRider *rider.Rider

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RiderRepository").Return(mockRiderRepo).Once()
	mockUoW.On("PartnerDirectory").Return(mockPartners).Once()
	mockPartners.On("Get", ctx, cmd.PartnerID()).Return(testPartner(t, cmd.PartnerID()), nil).Once()
	mockRiderRepo.On("FindConflict", ctx, mock.AnythingOfType("*rider.Rider")).Return("", nil).Once()
	mockRiderRepo.On("Add", ctx, mock.MatchedBy(func(r *rider.Rider) bool {
		capturedRider = r
		return true
	})).Return(nil).Once()
	mockPartners.On("AppendRider", ctx, cmd.PartnerID(), cmd.RiderID()).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterRiderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedRider)
	assert.Equal(t, cmd.RiderID(), capturedRider.ID())
	assert.Equal(t, cmd.Username(), capturedRider.Username())
	assert.Equal(t, cmd.Phone(), capturedRider.Phone())
	assert.False(t, capturedRider.Available(), "new riders start free")
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRiderRepo.AssertExpectations(t)
	mockPartners.AssertExpectations(t)
}

func TestRegisterRiderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.RegisterRiderCommand // zero value command

	mockFactory := new(MockRegistrationUoWFactory)
	handler := commands.NewRegisterRiderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrRegisterRiderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestRegisterRiderCommandHandler_Handle_PartnerNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newRegisterCommand(t)

	mockPartners := new(MockPartnerDirectory)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RiderRepository").Return(new(MockRiderRepository)).Once()
	mockUoW.On("PartnerDirectory").Return(mockPartners).Once()
	mockPartners.On("Get", ctx, cmd.PartnerID()).
		Return((*partner.Partner)(nil), errs.NewObjectNotFoundError("partnerID", cmd.PartnerID())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterRiderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrPartnerNotFound)
	mockUoW.AssertExpectations(t)
	mockPartners.AssertExpectations(t)
}

func TestRegisterRiderCommandHandler_Handle_DuplicateField(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newRegisterCommand(t)

	mockRiderRepo := new(MockRiderRepository)
	mockPartners := new(MockPartnerDirectory)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RiderRepository").Return(mockRiderRepo).Once()
	mockUoW.On("PartnerDirectory").Return(mockPartners).Once()
	mockPartners.On("Get", ctx, cmd.PartnerID()).Return(testPartner(t, cmd.PartnerID()), nil).Once()
	mockRiderRepo.On("FindConflict", ctx, mock.AnythingOfType("*rider.Rider")).
		Return(ports.FieldPhone, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterRiderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	var dup *commands.DuplicateFieldError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, ports.FieldPhone, dup.Field)
	assert.Equal(t, "Phone number already exists", dup.Error())
	mockRiderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestRegisterRiderCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newRegisterCommand(t)

	expectedError := errors.New("repository add failed")
	mockRiderRepo := new(MockRiderRepository)
	mockPartners := new(MockPartnerDirectory)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RiderRepository").Return(mockRiderRepo).Once()
	mockUoW.On("PartnerDirectory").Return(mockPartners).Once()
	mockPartners.On("Get", ctx, cmd.PartnerID()).Return(testPartner(t, cmd.PartnerID()), nil).Once()
	mockRiderRepo.On("FindConflict", ctx, mock.AnythingOfType("*rider.Rider")).Return("", nil).Once()
	mockRiderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).Return(expectedError).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterRiderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockPartners.AssertNotCalled(t, "AppendRider", mock.Anything, mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestRegisterRiderCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := newRegisterCommand(t)

	expectedError := errors.New("commit failed")
	mockRiderRepo := new(MockRiderRepository)
	mockPartners := new(MockPartnerDirectory)
	mockUoW := new(MockRegistrationUoW)
	mockFactory := new(MockRegistrationUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RiderRepository").Return(mockRiderRepo).Once()
	mockUoW.On("PartnerDirectory").Return(mockPartners).Once()
	mockPartners.On("Get", ctx, cmd.PartnerID()).Return(testPartner(t, cmd.PartnerID()), nil).Once()
	mockRiderRepo.On("FindConflict", ctx, mock.AnythingOfType("*rider.Rider")).Return("", nil).Once()
	mockRiderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once()
	mockPartners.On("AppendRider", ctx, cmd.PartnerID(), cmd.RiderID()).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(expectedError).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterRiderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
}
