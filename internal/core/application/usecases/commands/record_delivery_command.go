package commands

import (
	"errors"
	"io"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrRecordDeliveryCommandIsNotConstructed = errors.New(
		"RecordDeliveryCommand must be created via NewRecordDeliveryCommand constructor",
	)
	ErrPhotoIsRequired     = errors.New("photo is required")
	ErrPhotoNameIsRequired = errors.New("photo name is required")
)

// RecordDeliveryCommand represents a courier's proof-of-delivery submission:
// the parcel, the courier, the GPS point where the handoff happened, and the
// uploaded photo. The photo travels as a stream so large uploads are never
// buffered in the command.
type RecordDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	courierID kernel.UUID
	point     kernel.GeoPoint
	photoName string
	photo     io.Reader

	guard guard.ConstructorGuard
}

// NewRecordDeliveryCommand creates a command to record a proof of delivery.
// photoName is the original upload filename; its extension is preserved in
// the stored photo key.
func NewRecordDeliveryCommand(
	parcelID kernel.UUID,
	courierID kernel.UUID,
	point kernel.GeoPoint,
	photoName string,
	photo io.Reader,
) (RecordDeliveryCommand, error) {
	command := RecordDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setCourierID(courierID),
		command.setPoint(point),
		command.setPhoto(photoName, photo),
	); err != nil {
		return RecordDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryCommandIsNotConstructed)
}

// ParcelID returns the parcel ID from the command.
func (c RecordDeliveryCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CourierID returns the courier ID from the command.
func (c RecordDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Point returns the GPS point where the delivery was recorded.
func (c RecordDeliveryCommand) Point() kernel.GeoPoint {
	return c.point
}

// PhotoName returns the original filename of the uploaded photo.
func (c RecordDeliveryCommand) PhotoName() string {
	return c.photoName
}

// Photo returns the photo content stream.
func (c RecordDeliveryCommand) Photo() io.Reader {
	return c.photo
}

func (c *RecordDeliveryCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *RecordDeliveryCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *RecordDeliveryCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *RecordDeliveryCommand) setPhoto(photoName string, photo io.Reader) error {
	if photoName == "" {
		return ErrPhotoNameIsRequired
	}
	if photo == nil {
		return ErrPhotoIsRequired
	}

	c.photoName = photoName
	c.photo = photo
	return nil
}
