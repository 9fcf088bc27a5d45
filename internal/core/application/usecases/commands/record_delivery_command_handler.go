package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/deliveryevent"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
)

// AddressUnavailable is recorded as the resolved address when reverse
// geocoding fails. Geocoding is best effort and never blocks a delivery.
const AddressUnavailable = "Dirección no disponible"

// ErrParcelNotAssignedToCourier is returned when a courier submits a proof
// of delivery for a parcel assigned to someone else.
var ErrParcelNotAssignedToCourier = errors.New("parcel is not assigned to this courier")

// RecordDeliveryResult carries the identifiers produced by a successful
// proof-of-delivery submission.
type RecordDeliveryResult struct {
	EventID         kernel.UUID
	PhotoKey        string
	PhotoURL        string
	ResolvedAddress string
}

// RecordDeliveryCommandHandler runs the proof-of-delivery workflow:
// verifies the courier/parcel pairing, resolves the GPS point to an address,
// stores the photo, and commits the delivery event together with the parcel
// state change in one transaction. The photo is removed again if the
// transaction fails, so storage never keeps photos without a matching event.
type RecordDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	geocoder   ports.Geocoder
	mediaStore ports.MediaStore
}

// NewRecordDeliveryCommandHandler creates a handler for proof-of-delivery
// submissions.
func NewRecordDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	geocoder ports.Geocoder,
	mediaStore ports.MediaStore,
) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		mediaStore: mediaStore,
	}
}

// Handle processes the proof-of-delivery command.
// Returns errs.ObjectNotFoundError when the courier or parcel does not exist,
// ErrParcelNotAssignedToCourier on a courier mismatch, and the domain
// transition error when the parcel is already delivered. A geocoding failure
// does not fail the delivery; the event records AddressUnavailable instead.
func (h *RecordDeliveryCommandHandler) Handle(
	ctx context.Context, cmd RecordDeliveryCommand,
) (RecordDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return RecordDeliveryResult{}, err
	}

	parcelRepo := uow.ParcelRepository()

	parcelEntity, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return RecordDeliveryResult{}, err
	}

	if !parcelEntity.IsAssignedTo(cmd.CourierID()) {
		return RecordDeliveryResult{}, ErrParcelNotAssignedToCourier
	}

	// Snapshot the status before the transition so the persistence layer can
	// reject the update if a concurrent delivery got there first.
	previousStatus := parcelEntity.Status()
	if err = parcelEntity.Deliver(); err != nil {
		return RecordDeliveryResult{}, err
	}

	resolvedAddress, ok := h.geocoder.Reverse(ctx, cmd.Point())
	if !ok {
		resolvedAddress = AddressUnavailable
	}

	recordedAt := time.Now().UTC()
	photoKey := buildPhotoKey(cmd.ParcelID(), cmd.PhotoName(), recordedAt)

	// The photo is persisted before the event and status writes: a delivery
	// event must never reference a photo that was not written.
	if err = h.mediaStore.Store(ctx, photoKey, cmd.Photo()); err != nil {
		return RecordDeliveryResult{}, err
	}

	event, err := deliveryevent.NewDeliveryEvent(
		kernel.NewUUID(),
		cmd.ParcelID(),
		cmd.CourierID(),
		cmd.Point(),
		resolvedAddress,
		photoKey,
		recordedAt,
	)
	if err != nil {
		h.discardPhoto(ctx, photoKey)
		return RecordDeliveryResult{}, err
	}

	if err = uow.DeliveryEventRepository().Add(ctx, event); err != nil {
		h.discardPhoto(ctx, photoKey)
		return RecordDeliveryResult{}, err
	}

	if err = parcelRepo.UpdateStatusGuarded(ctx, parcelEntity, previousStatus); err != nil {
		h.discardPhoto(ctx, photoKey)
		return RecordDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		h.discardPhoto(ctx, photoKey)
		return RecordDeliveryResult{}, err
	}

	return RecordDeliveryResult{
		EventID:         event.ID(),
		PhotoKey:        photoKey,
		PhotoURL:        h.mediaStore.URLFor(photoKey),
		ResolvedAddress: resolvedAddress,
	}, nil
}

// discardPhoto is best-effort compensation when the transaction fails after
// the photo was written. Leftovers are swept by the orphan cleanup job.
func (h *RecordDeliveryCommandHandler) discardPhoto(ctx context.Context, photoKey string) {
	_ = h.mediaStore.Remove(ctx, photoKey)
}

// buildPhotoKey derives the storage key for a delivery photo. The random
// suffix keeps concurrent submissions for the same parcel from colliding
// within one clock second.
func buildPhotoKey(parcelID kernel.UUID, photoName string, recordedAt time.Time) string {
	ext := strings.ToLower(filepath.Ext(photoName))

	return fmt.Sprintf(
		"entrega_%s_%s_%s%s",
		parcelID.String(),
		recordedAt.Format("20060102_150405"),
		kernel.NewUUID().String()[:8],
		ext,
	)
}
