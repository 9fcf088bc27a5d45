package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/deliveryevent"
	"parceltrack/internal/core/domain/model/kernel"
)

// DeliveryEventRepository defines the persistence contract for delivery
// events. Events are append-only audit records: the interface deliberately
// has no update or delete operation.
type DeliveryEventRepository interface {
	// Add appends a new delivery event.
	Add(ctx context.Context, event *deliveryevent.DeliveryEvent) error

	// Get retrieves a delivery event by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliveryevent.DeliveryEvent, error)

	// GetAllByParcel retrieves every delivery event recorded for a parcel,
	// oldest first.
	GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*deliveryevent.DeliveryEvent, error)

	// GetAllPhotoKeys returns the photo keys referenced by any recorded
	// delivery event. Used by the orphan photo cleanup job.
	GetAllPhotoKeys(ctx context.Context) ([]string, error)
}
