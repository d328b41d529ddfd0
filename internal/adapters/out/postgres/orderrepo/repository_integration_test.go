package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.AttachmentDTO{},
		&orderrepo.AdminContentDTO{},
		&orderrepo.FeedbackDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, attachments, admin_contents, feedbacks").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(code string) *order.Order {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	attachment := suite.createAttachment("brief.pdf")
	testOrder, err := order.NewOrder(kernel.NewUUID(), code, kernel.NewUUID(),
		"Logo Refresh", "vector formats please", order.PriorityUrgent, &due,
		[]order.Attachment{attachment})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createAttachment(name string) order.Attachment {
	attachment, err := order.NewAttachment(kernel.NewUUID(),
		"1700000000-abc12345-"+name, name, "application/pdf", 4096, "/files/"+name)
	suite.Require().NoError(err)
	return attachment
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-001")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateCode_ReturnsError() {
	ctx := context.Background()
	first := suite.createTestOrder("ORD-001")
	second := suite.createTestOrder("ORD-001")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsCompleteAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-002")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.IsEqual(restored))
	suite.Equal("ORD-002", restored.Code())
	suite.Equal(testOrder.ClientID(), restored.ClientID())
	suite.Equal("Logo Refresh", restored.Title())
	suite.Equal("vector formats please", restored.Description())
	suite.Equal(order.PriorityUrgent, restored.Priority())
	suite.Equal(order.Pending, restored.Status())
	suite.Require().NotNil(restored.DueDate())
	suite.Require().Len(restored.Attachments(), 1)
	suite.Equal("brief.pdf", restored.Attachments()[0].OriginalName())
	suite.Nil(restored.AdminContent())
	suite.Empty(restored.Feedbacks())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound_ReturnsObjectNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullLifecycle_RoundTrips() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-003")
	owner := testOrder.ClientID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	firstDraft := suite.createAttachment("draft-v1.png")
	suite.Require().NoError(testOrder.Deliver("first draft", []order.Attachment{firstDraft}))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	_, err := testOrder.AddFeedback(owner, order.FeedbackRevision, "wrong shade of blue")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	secondDraft := suite.createAttachment("draft-v2.png")
	suite.Require().NoError(testOrder.Deliver("second draft", []order.Attachment{secondDraft}))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	_, err = testOrder.AddFeedback(owner, order.FeedbackApproval, "looks great")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Completed, restored.Status())
	suite.Require().NotNil(restored.AdminContent())
	suite.Equal("second draft", restored.AdminContent().Description())

	files := restored.AdminContent().Files()
	suite.Require().Len(files, 2)
	suite.Equal("draft-v1.png", files[0].OriginalName())
	suite.Equal("draft-v2.png", files[1].OriginalName())

	feedbacks := restored.Feedbacks()
	suite.Require().Len(feedbacks, 2)
	suite.Equal(order.FeedbackRevision, feedbacks[0].Type())
	suite.Equal(order.FeedbackApproval, feedbacks[1].Type())

	latest, ok := restored.LatestFeedback()
	suite.Require().True(ok)
	suite.Equal(order.FeedbackApproval, latest.Type())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsRecordNotFound() {
	testOrder := suite.createTestOrder("ORD-004")

	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByClient_FiltersAndSortsNewestFirst() {
	ctx := context.Background()
	clientID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first, err := order.NewOrder(kernel.NewUUID(), "ORD-005", clientID,
		"First", "", order.PriorityNormal, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	time.Sleep(10 * time.Millisecond)

	second, err := order.NewOrder(kernel.NewUUID(), "ORD-006", clientID,
		"Second", "", order.PriorityNormal, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	stranger := suite.createTestOrder("ORD-007")
	suite.Require().NoError(suite.repository.Add(ctx, stranger))

	owned, err := suite.repository.GetByClient(ctx, clientID)
	suite.Require().NoError(err)
	suite.Require().Len(owned, 2)
	suite.Equal("Second", owned[0].Title())
	suite.Equal("First", owned[1].Title())

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
