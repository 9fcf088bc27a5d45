package commands_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/deliveryevent"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordDeliveryFixture struct {
	courierID    kernel.UUID
	parcelEntity *parcel.Parcel
	cmd          commands.RecordDeliveryCommand

	courierRepo *MockCourierRepository
	parcelRepo  *MockParcelRepository
	eventRepo   *MockDeliveryEventRepository
	uow         *MockDeliveryUoW
	factory     *MockDeliveryUoWFactory
	geocoder    *MockGeocoder
	mediaStore  *MockMediaStore
}

func newRecordDeliveryFixture(t *testing.T) *recordDeliveryFixture {
	t.Helper()

	courierID := kernel.NewUUID()
	parcelEntity := mustParcel(t, courierID)

	cmd, err := commands.NewRecordDeliveryCommand(
		parcelEntity.ID(), courierID, mustGeoPoint(t), "evidencia.jpg", strings.NewReader("jpeg bytes"),
	)
	require.NoError(t, err)

	return &recordDeliveryFixture{
		courierID:    courierID,
		parcelEntity: parcelEntity,
		cmd:          cmd,
		courierRepo:  new(MockCourierRepository),
		parcelRepo:   new(MockParcelRepository),
		eventRepo:    new(MockDeliveryEventRepository),
		uow:          new(MockDeliveryUoW),
		factory:      new(MockDeliveryUoWFactory),
		geocoder:     new(MockGeocoder),
		mediaStore:   new(MockMediaStore),
	}
}

func (f *recordDeliveryFixture) handler() *commands.RecordDeliveryCommandHandler {
	h := commands.NewRecordDeliveryCommandHandler(f.factory, f.geocoder, f.mediaStore)
	return &h
}

func (f *recordDeliveryFixture) assertExpectations(t *testing.T) {
	t.Helper()

	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.courierRepo.AssertExpectations(t)
	f.parcelRepo.AssertExpectations(t)
	f.eventRepo.AssertExpectations(t)
	f.geocoder.AssertExpectations(t)
	f.mediaStore.AssertExpectations(t)
}

func TestNewRecordDeliveryCommandHandler(t *testing.T) {
	// Arrange
	f := newRecordDeliveryFixture(t)

	// Act
	handler := f.handler()

	// Assert
	assert.NotNil(t, handler)
}

func TestRecordDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)

	f.factory.On("Create").Return(f.uow).Once()

	var capturedEvent *deliveryevent.DeliveryEvent
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).Return(f.parcelEntity, nil).Once(),
		f.geocoder.On("Reverse", ctx, f.cmd.Point()).Return("Av. Juárez 12, Centro, CDMX", true).Once(),
		f.mediaStore.On("Store", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once(),
		f.uow.On("DeliveryEventRepository").Return(f.eventRepo).Once(),
		f.eventRepo.On("Add", ctx, mock.MatchedBy(func(e *deliveryevent.DeliveryEvent) bool {
			capturedEvent = e
			return true
		})).Return(nil).Once(),
		f.parcelRepo.On("UpdateStatusGuarded", ctx, f.parcelEntity, parcel.Undelivered).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.mediaStore.On("URLFor", mock.AnythingOfType("string")).
		Return("/uploads/entrega_test.jpg").Once()

	// Act
	result, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedEvent)
	assert.Equal(t, parcel.Delivered, f.parcelEntity.Status())
	assert.Equal(t, f.parcelEntity.ID(), capturedEvent.ParcelID())
	assert.Equal(t, f.courierID, capturedEvent.CourierID())
	assert.Equal(t, "Av. Juárez 12, Centro, CDMX", capturedEvent.ResolvedAddress())
	assert.Equal(t, capturedEvent.ID(), result.EventID)
	assert.Equal(t, capturedEvent.PhotoKey(), result.PhotoKey)
	assert.Equal(t, "/uploads/entrega_test.jpg", result.PhotoURL)
	assert.Equal(t, "Av. Juárez 12, Centro, CDMX", result.ResolvedAddress)

	expectedPrefix := fmt.Sprintf("entrega_%s_", f.parcelEntity.ID())
	assert.True(t, strings.HasPrefix(result.PhotoKey, expectedPrefix),
		"photo key %q should start with %q", result.PhotoKey, expectedPrefix)
	assert.True(t, strings.HasSuffix(result.PhotoKey, ".jpg"),
		"photo key %q should keep the upload extension", result.PhotoKey)

	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_GeocodeFailureStillDelivers(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)

	f.factory.On("Create").Return(f.uow).Once()

	var capturedEvent *deliveryevent.DeliveryEvent
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).Return(f.parcelEntity, nil).Once(),
		f.geocoder.On("Reverse", ctx, f.cmd.Point()).Return("", false).Once(),
		f.mediaStore.On("Store", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once(),
		f.uow.On("DeliveryEventRepository").Return(f.eventRepo).Once(),
		f.eventRepo.On("Add", ctx, mock.MatchedBy(func(e *deliveryevent.DeliveryEvent) bool {
			capturedEvent = e
			return true
		})).Return(nil).Once(),
		f.parcelRepo.On("UpdateStatusGuarded", ctx, f.parcelEntity, parcel.Undelivered).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	f.mediaStore.On("URLFor", mock.AnythingOfType("string")).Return("/uploads/x.jpg").Once()

	// Act
	result, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedEvent)
	assert.Equal(t, commands.AddressUnavailable, capturedEvent.ResolvedAddress())
	assert.Equal(t, commands.AddressUnavailable, result.ResolvedAddress)

	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)
	var invalidCmd commands.RecordDeliveryCommand // zero value command

	// Act
	_, err := f.handler().Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecordDeliveryCommandIsNotConstructed)
	f.assertExpectations(t) // no collaborator should be touched
}

func TestRecordDeliveryCommandHandler_Handle_CourierNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)

	f.factory.On("Create").Return(f.uow).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).
			Return(nil, errs.NewObjectNotFoundError("courierID", f.courierID)).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)

	f.factory.On("Create").Return(f.uow).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).
			Return(nil, errs.NewObjectNotFoundError("parcelID", f.parcelEntity.ID())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_ParcelAssignedToAnotherCourier(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)
	otherParcel := mustParcel(t, kernel.NewUUID()) // assigned to somebody else

	cmd, err := commands.NewRecordDeliveryCommand(
		otherParcel.ID(), f.courierID, mustGeoPoint(t), "evidencia.jpg", strings.NewReader("jpeg bytes"),
	)
	require.NoError(t, err)

	f.factory.On("Create").Return(f.uow).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, otherParcel.ID()).Return(otherParcel, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err = f.handler().Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrParcelNotAssignedToCourier)
	// The parcel state must not change and no photo may be written.
	assert.Equal(t, parcel.Undelivered, otherParcel.Status())
	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_ParcelAlreadyDelivered(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)
	require.NoError(t, f.parcelEntity.Deliver())

	f.factory.On("Create").Return(f.uow).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).Return(f.parcelEntity, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_PhotoStoreError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)

	expectedError := errors.New("disk full")
	f.factory.On("Create").Return(f.uow).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).Return(f.parcelEntity, nil).Once(),
		f.geocoder.On("Reverse", ctx, f.cmd.Point()).Return("Av. Juárez 12", true).Once(),
		f.mediaStore.On("Store", ctx, mock.AnythingOfType("string"), mock.Anything).
			Return(expectedError).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	f.assertExpectations(t) // no event Add, no status update, no Commit
}

func TestRecordDeliveryCommandHandler_Handle_EventAddErrorRemovesPhoto(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)

	expectedError := errors.New("insert failed")
	f.factory.On("Create").Return(f.uow).Once()

	var storedKey string
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).Return(f.parcelEntity, nil).Once(),
		f.geocoder.On("Reverse", ctx, f.cmd.Point()).Return("Av. Juárez 12", true).Once(),
		f.mediaStore.On("Store", ctx, mock.MatchedBy(func(key string) bool {
			storedKey = key
			return true
		}), mock.Anything).Return(nil).Once(),
		f.uow.On("DeliveryEventRepository").Return(f.eventRepo).Once(),
		f.eventRepo.On("Add", ctx, mock.AnythingOfType("*deliveryevent.DeliveryEvent")).
			Return(expectedError).Once(),
		f.mediaStore.On("Remove", ctx, mock.MatchedBy(func(key string) bool {
			return key == storedKey
		})).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_LostStatusRaceRemovesPhoto(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)

	// A concurrent delivery already moved the parcel on, so the conditional
	// status update matches no row.
	raceError := errs.NewObjectNotFoundError("parcelID", f.parcelEntity.ID())
	f.factory.On("Create").Return(f.uow).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).Return(f.parcelEntity, nil).Once(),
		f.geocoder.On("Reverse", ctx, f.cmd.Point()).Return("Av. Juárez 12", true).Once(),
		f.mediaStore.On("Store", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once(),
		f.uow.On("DeliveryEventRepository").Return(f.eventRepo).Once(),
		f.eventRepo.On("Add", ctx, mock.AnythingOfType("*deliveryevent.DeliveryEvent")).Return(nil).Once(),
		f.parcelRepo.On("UpdateStatusGuarded", ctx, f.parcelEntity, parcel.Undelivered).
			Return(raceError).Once(),
		f.mediaStore.On("Remove", ctx, mock.AnythingOfType("string")).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_CommitErrorRemovesPhoto(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newRecordDeliveryFixture(t)

	expectedError := errors.New("commit failed")
	f.factory.On("Create").Return(f.uow).Once()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("CourierRepository").Return(f.courierRepo).Once(),
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once(),
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once(),
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).Return(f.parcelEntity, nil).Once(),
		f.geocoder.On("Reverse", ctx, f.cmd.Point()).Return("Av. Juárez 12", true).Once(),
		f.mediaStore.On("Store", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once(),
		f.uow.On("DeliveryEventRepository").Return(f.eventRepo).Once(),
		f.eventRepo.On("Add", ctx, mock.AnythingOfType("*deliveryevent.DeliveryEvent")).Return(nil).Once(),
		f.parcelRepo.On("UpdateStatusGuarded", ctx, f.parcelEntity, parcel.Undelivered).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(expectedError).Once(),
		f.mediaStore.On("Remove", ctx, mock.AnythingOfType("string")).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err := f.handler().Handle(ctx, f.cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	f.assertExpectations(t)
}

func TestRecordDeliveryCommandHandler_Handle_UniquePhotoKeysForSameParcel(t *testing.T) {
	// Two submissions for the same parcel in the same second must not collide:
	// the key carries a random suffix in addition to the timestamp.
	ctx := context.Background()

	keys := make(map[string]struct{}, 2)
	for i := 0; i < 2; i++ {
		f := newRecordDeliveryFixture(t)
		f.factory.On("Create").Return(f.uow).Once()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("CourierRepository").Return(f.courierRepo).Once()
		f.courierRepo.On("Get", ctx, f.courierID).Return(mustCourier(t, f.courierID), nil).Once()
		f.uow.On("ParcelRepository").Return(f.parcelRepo).Once()
		f.parcelRepo.On("Get", ctx, f.parcelEntity.ID()).Return(f.parcelEntity, nil).Once()
		f.geocoder.On("Reverse", ctx, f.cmd.Point()).Return("Av. Juárez 12", true).Once()
		f.mediaStore.On("Store", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()
		f.uow.On("DeliveryEventRepository").Return(f.eventRepo).Once()
		f.eventRepo.On("Add", ctx, mock.AnythingOfType("*deliveryevent.DeliveryEvent")).Return(nil).Once()
		f.parcelRepo.On("UpdateStatusGuarded", ctx, f.parcelEntity, parcel.Undelivered).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()
		f.mediaStore.On("URLFor", mock.AnythingOfType("string")).Return("/uploads/x.jpg").Once()

		result, err := f.handler().Handle(ctx, f.cmd)
		require.NoError(t, err)
		keys[result.PhotoKey] = struct{}{}
	}

	assert.Len(t, keys, 2, "each submission should get a distinct photo key")
}
