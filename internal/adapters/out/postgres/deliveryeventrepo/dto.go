// Package deliveryeventrepo provides data transfer objects and mapping
// functions for delivery event persistence. Delivery events are append-only
// audit records, so the repository exposes no update or delete operation.
package deliveryeventrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/deliveryevent"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryEventDTO represents the database structure for persisting delivery
// events. Coordinates are stored as double precision; seven decimal places
// survive the round trip.
type DeliveryEventDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID        uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_events_parcel_id"`
	CourierID       uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_events_courier_id"`
	Latitude        float64   `gorm:"type:double precision;not null"`
	Longitude       float64   `gorm:"type:double precision;not null"`
	ResolvedAddress string    `gorm:"type:text;not null"`
	PhotoKey        string    `gorm:"type:varchar(512);not null"`
	RecordedAt      time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for delivery event entities.
// Overrides GORM's default naming convention to use "delivery_events" instead
// of "delivery_event_dtos".
func (DeliveryEventDTO) TableName() string {
	return "delivery_events"
}

// fromDomain converts a delivery event to its database representation.
func fromDomain(event *deliveryevent.DeliveryEvent) DeliveryEventDTO {
	return DeliveryEventDTO{
		ID:              event.ID().Bytes(),
		ParcelID:        event.ParcelID().Bytes(),
		CourierID:       event.CourierID().Bytes(),
		Latitude:        event.Point().Latitude(),
		Longitude:       event.Point().Longitude(),
		ResolvedAddress: event.ResolvedAddress(),
		PhotoKey:        event.PhotoKey(),
		RecordedAt:      event.RecordedAt(),
	}
}

// toDomain converts a database DTO to a delivery event.
func toDomain(dto DeliveryEventDTO) (*deliveryevent.DeliveryEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return deliveryevent.RestoreDeliveryEvent(
		id, parcelID, courierID, point, dto.ResolvedAddress, dto.PhotoKey, dto.RecordedAt,
	)
}
