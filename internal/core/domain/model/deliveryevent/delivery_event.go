package deliveryevent

import (
	"errors"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	// ErrDeliveryEventIsNotConstructed is returned when using an improperly
	// initialized DeliveryEvent.
	ErrDeliveryEventIsNotConstructed = errors.New(
		"DeliveryEvent must be created via NewDeliveryEvent constructor",
	)
	// ErrResolvedAddressIsRequired is returned when the resolved address text is blank.
	// Callers substitute the unavailable-address sentinel before construction,
	// so a blank value always indicates a programming error.
	ErrResolvedAddressIsRequired = errs.NewValueIsRequiredError("resolvedAddress")
	// ErrPhotoKeyIsRequired is returned when the photo storage key is blank.
	ErrPhotoKeyIsRequired = errs.NewValueIsRequiredError("photoKey")
	// ErrRecordedAtIsRequired is returned when the event timestamp is the zero time.
	ErrRecordedAtIsRequired = errs.NewValueIsRequiredError("recordedAt")
)

// DeliveryEvent is the immutable proof-of-delivery record: which courier
// delivered which parcel, where (coordinates plus a best-effort resolved
// address), the stored photo key, and when.
//
// The type exposes no mutators and its repository port has no update or
// delete operation; rows are append-only audit records.
type DeliveryEvent struct {
	id              kernel.UUID
	parcelID        kernel.UUID
	courierID       kernel.UUID
	point           kernel.GeoPoint
	resolvedAddress string
	photoKey        string
	recordedAt      time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryEvent creates a delivery event. The timestamp is normalized to
// UTC. The courier/parcel pairing is validated by the delivery workflow
// before construction; this constructor only checks value-level invariants.
func NewDeliveryEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	courierID kernel.UUID,
	point kernel.GeoPoint,
	resolvedAddress string,
	photoKey string,
	recordedAt time.Time,
) (*DeliveryEvent, error) {
	event := &DeliveryEvent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setID(id),
		event.setParcelID(parcelID),
		event.setCourierID(courierID),
		event.setPoint(point),
		event.setResolvedAddress(resolvedAddress),
		event.setPhotoKey(photoKey),
		event.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return event, nil
}

// RestoreDeliveryEvent reconstructs a delivery event from persistent storage.
func RestoreDeliveryEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	courierID kernel.UUID,
	point kernel.GeoPoint,
	resolvedAddress string,
	photoKey string,
	recordedAt time.Time,
) (*DeliveryEvent, error) {
	return NewDeliveryEvent(id, parcelID, courierID, point, resolvedAddress, photoKey, recordedAt)
}

// Validate ensures the event was properly constructed.
func (e *DeliveryEvent) Validate() error {
	if e == nil {
		return ErrDeliveryEventIsNotConstructed
	}
	return e.guard.Validate(ErrDeliveryEventIsNotConstructed)
}

// IsEqual compares two delivery events by their unique identifiers.
func (e *DeliveryEvent) IsEqual(other *DeliveryEvent) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the event's unique identifier.
func (e *DeliveryEvent) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the delivered parcel's identifier.
func (e *DeliveryEvent) ParcelID() kernel.UUID {
	return e.parcelID
}

// CourierID returns the delivering courier's identifier.
func (e *DeliveryEvent) CourierID() kernel.UUID {
	return e.courierID
}

// Point returns the coordinates captured at delivery time.
func (e *DeliveryEvent) Point() kernel.GeoPoint {
	return e.point
}

// ResolvedAddress returns the reverse-geocoded address text, or the
// unavailable-address sentinel when the lookup failed.
func (e *DeliveryEvent) ResolvedAddress() string {
	return e.resolvedAddress
}

// PhotoKey returns the media store key of the proof-of-delivery photo.
func (e *DeliveryEvent) PhotoKey() string {
	return e.photoKey
}

// RecordedAt returns the UTC timestamp set when the event was created.
func (e *DeliveryEvent) RecordedAt() time.Time {
	return e.recordedAt
}

func (e *DeliveryEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *DeliveryEvent) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	e.parcelID = parcelID
	return nil
}

func (e *DeliveryEvent) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	e.courierID = courierID
	return nil
}

func (e *DeliveryEvent) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	e.point = point
	return nil
}

func (e *DeliveryEvent) setResolvedAddress(resolvedAddress string) error {
	if strings.TrimSpace(resolvedAddress) == "" {
		return ErrResolvedAddressIsRequired
	}
	e.resolvedAddress = resolvedAddress
	return nil
}

func (e *DeliveryEvent) setPhotoKey(photoKey string) error {
	if photoKey == "" {
		return ErrPhotoKeyIsRequired
	}
	e.photoKey = photoKey
	return nil
}

func (e *DeliveryEvent) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return ErrRecordedAtIsRequired
	}
	e.recordedAt = recordedAt.UTC()
	return nil
}
