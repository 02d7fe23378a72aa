package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", "ORD-1", testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", "ORD-1", first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestOrder("ORD-1")
	err := suite.repository.Add(ctx, duplicate)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", "ORD-1", original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.IsEqual(original))
	suite.Equal("Acme Corp", retrieved.ClientName())
	suite.Equal("Dock 4", retrieved.PickupLocation())
	suite.Equal("12 Elm St", retrieved.DeliveryLocation())
	suite.Equal("Standard Package", retrieved.PackageInfo())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.Driver())
	suite.Nil(retrieved.BorrowedAt())
	suite.Nil(retrieved.AssignedAt())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID, err := kernel.NewOrderID("ORD-404")
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullLifecycle_PersistsEveryTransition() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", "ORD-1", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// borrow
	suite.Require().NoError(testOrder.Borrow(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Borrowed, retrieved.Status())
	suite.NotNil(retrieved.BorrowedAt())

	// assign
	driverID := kernel.NewDriverID()
	suite.Require().NoError(testOrder.Assign(driverID, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Driver())
	suite.True(retrieved.Driver().IsEqual(driverID))
	suite.NotNil(retrieved.AssignedAt())

	// deliver
	_, err = testOrder.Deliver()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrieved.Status())
	suite.NotNil(retrieved.Driver(), "delivered orders keep the driver for audit")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Return_ClearsNullableColumns() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", "ORD-1", mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Borrow(time.Now().UTC()))
	suite.Require().NoError(testOrder.Assign(kernel.NewDriverID(), time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	released, err := testOrder.Return()
	suite.Require().NoError(err)
	suite.NotNil(released)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// driver_id, borrowed_at, and assigned_at must actually be NULL again
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.Driver())
	suite.Nil(retrieved.BorrowedAt())
	suite.Nil(retrieved.AssignedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistent := suite.createTestOrder("ORD-404")
	err := suite.repository.Update(ctx, nonExistent)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsSameAggregate() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-1")
	suite.tracker.On("TrackAggregate", "ORD-1", testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// outside a transaction the lock degenerates to a plain read
	retrieved, err := suite.repository.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))
	suite.Equal(order.Pending, retrieved.Status())
}

// createTestOrder creates a pending test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id string) *order.Order {
	orderID, err := kernel.NewOrderID(id)
	suite.Require().NoError(err)
	testOrder, err := order.NewOrder(orderID, "Acme Corp", "Dock 4", "12 Elm St", "", time.Now().UTC())
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
