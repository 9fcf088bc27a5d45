package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using PostgreSQL containers. The conditional status update
// is the interesting part: it is the mutual-exclusion guard that keeps two
// concurrent deliveries of the same parcel from both succeeding.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel(courierID kernel.UUID) *parcel.Parcel {
	address, err := parcel.NewAddress("Centro", "Av. Juárez", 12, "06000")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), address, "María López", courierID)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	parcelEntity := suite.createTestParcel(courierID)

	suite.Require().NoError(suite.repository.Add(ctx, parcelEntity))

	loaded, err := suite.repository.Get(ctx, parcelEntity.ID())
	suite.Require().NoError(err)
	suite.True(parcelEntity.ID().IsEqual(loaded.ID()))
	suite.True(loaded.IsAssignedTo(courierID))
	suite.Equal("María López", loaded.Recipient())
	suite.Equal(parcel.Undelivered, loaded.Status())
	suite.Equal("Centro", loaded.Address().Neighborhood())
	suite.Equal("Av. Juárez", loaded.Address().Street())
	suite.Equal(12, loaded.Address().Number())
	suite.Equal("06000", loaded.Address().PostalCode())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_MissingParcel_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	parcelEntity := suite.createTestParcel(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, parcelEntity))

	suite.Require().NoError(parcelEntity.StartRoute())
	suite.Require().NoError(suite.repository.Update(ctx, parcelEntity))

	loaded, err := suite.repository.Get(ctx, parcelEntity.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.EnRoute, loaded.Status())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdateStatusGuarded_ExpectedMatches_Success() {
	ctx := context.Background()
	parcelEntity := suite.createTestParcel(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, parcelEntity))

	previous := parcelEntity.Status()
	suite.Require().NoError(parcelEntity.Deliver())

	err := suite.repository.UpdateStatusGuarded(ctx, parcelEntity, previous)
	suite.Require().NoError(err)

	loaded, loadErr := suite.repository.Get(ctx, parcelEntity.ID())
	suite.Require().NoError(loadErr)
	suite.Equal(parcel.Delivered, loaded.Status())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdateStatusGuarded_ExpectedStale_NoWrite() {
	ctx := context.Background()
	parcelEntity := suite.createTestParcel(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, parcelEntity))

	// Simulate a concurrent delivery: the stored row already moved on.
	suite.Require().NoError(suite.db.
		Model(&parcelrepo.ParcelDTO{}).
		Where("id = ?", parcelEntity.ID().Bytes()).
		Update("status", int(parcel.Delivered)).Error)

	previous := parcelEntity.Status() // still Undelivered in memory
	suite.Require().NoError(parcelEntity.Deliver())

	err := suite.repository.UpdateStatusGuarded(ctx, parcelEntity, previous)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// The row keeps the state written by the winning request.
	loaded, loadErr := suite.repository.Get(ctx, parcelEntity.ID())
	suite.Require().NoError(loadErr)
	suite.Equal(parcel.Delivered, loaded.Status())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByCourier_FiltersByCourier() {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	otherCourierID := kernel.NewUUID()

	first := suite.createTestParcel(courierID)
	second := suite.createTestParcel(courierID)
	other := suite.createTestParcel(otherCourierID)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	parcels, err := suite.repository.GetAllByCourier(ctx, courierID)
	suite.Require().NoError(err)
	suite.Len(parcels, 2)
	for _, p := range parcels {
		suite.True(p.IsAssignedTo(courierID))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllByCourier_NoParcels_EmptySlice() {
	ctx := context.Background()

	parcels, err := suite.repository.GetAllByCourier(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(parcels)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
