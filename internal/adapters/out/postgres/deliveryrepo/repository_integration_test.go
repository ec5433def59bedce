package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries CASCADE").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newRecord(orderID string, riderID kernel.UUID) *delivery.Record {
	record, err := delivery.NewRecord(
		kernel.NewUUID(), orderID, riderID, "store-7", time.Now().UTC())
	suite.Require().NoError(err)
	return record
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	record := suite.newRecord("INV-1042", kernel.NewUUID())

	err := suite.repository.Add(ctx, record)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.True(record.IsEqual(loaded))
	suite.Equal("INV-1042", loaded.OrderID())
	suite.Equal("store-7", loaded.StoreID())
	suite.False(loaded.Resolved())
	suite.Nil(loaded.CompletionTime())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_DuplicateOrder() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newRecord("INV-1042", kernel.NewUUID())))

	err := suite.repository.Add(ctx, suite.newRecord("INV-1042", kernel.NewUUID()))

	suite.Require().Error(err)
	suite.ErrorIs(err, ports.ErrDuplicateOrderAssignment)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID() {
	ctx := context.Background()
	record := suite.newRecord("INV-1042", kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, record))

	loaded, err := suite.repository.GetByOrderID(ctx, "INV-1042")
	suite.Require().NoError(err)
	suite.True(record.IsEqual(loaded))

	_, err = suite.repository.GetByOrderID(ctx, "INV-9999")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderAndRider() {
	ctx := context.Background()
	riderID := kernel.NewUUID()
	record := suite.newRecord("INV-1042", riderID)
	suite.Require().NoError(suite.repository.Add(ctx, record))

	loaded, err := suite.repository.GetByOrderAndRider(ctx, "INV-1042", riderID)
	suite.Require().NoError(err)
	suite.True(record.IsEqual(loaded))

	_, err = suite.repository.GetByOrderAndRider(ctx, "INV-1042", kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsResolution() {
	ctx := context.Background()
	record := suite.newRecord("INV-1042", kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, record))

	completedAt := time.Now().UTC()
	suite.Require().NoError(record.Complete(completedAt, 450))
	suite.Require().NoError(suite.repository.Update(ctx, record))

	loaded, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.True(loaded.Resolved())
	suite.True(loaded.Delivered())
	suite.Equal(450, loaded.Amount())
	suite.Require().NotNil(loaded.CompletionTime())
	suite.WithinDuration(completedAt, *loaded.CompletionTime(), time.Second)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
