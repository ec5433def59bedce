package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
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

// NotificationRepositoryIntegrationTestSuite provides integration tests for
// NotificationRepository using PostgreSQL containers.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
	tracker    *MockAggregateTracker
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&notificationrepo.NotificationDTO{})
	suite.Require().NoError(err)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE store_notifications CASCADE").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) newEntry(orderID string) *notification.StoreNotification {
	zip, err := kernel.NewZipCode("560001")
	suite.Require().NoError(err)

	entry, err := notification.NewResolutionNotification(
		kernel.NewUUID(), zip, orderID, "Ravi Kumar", notification.OutcomeDelivered, time.Now().UTC())
	suite.Require().NoError(err)
	return entry
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	entry := suite.newEntry("INV-1042")

	err := suite.repository.Add(ctx, entry)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Equal(entry.ID(), loaded.ID())
	suite.Equal(entry.Message(), loaded.Message())
	suite.Equal(notification.OutcomeDelivered, loaded.OrderStatus())
	suite.Equal(notification.ReadStatusUnread, loaded.ReadStatus())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_PersistsReadStatus() {
	ctx := context.Background()
	entry := suite.newEntry("INV-1042")
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	entry.MarkRead()
	suite.Require().NoError(suite.repository.Update(ctx, entry))

	loaded, err := suite.repository.Get(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.ReadStatusRead, loaded.ReadStatus())
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
