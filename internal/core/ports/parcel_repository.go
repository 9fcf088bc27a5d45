package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel. The parcel must be valid and not already
	// exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// UpdateStatusGuarded persists a status transition conditionally: the row
	// is written only if its current status still equals expected. Returns an
	// ObjectNotFoundError when no row matched, which callers treat as a lost
	// race (another request already moved the parcel on).
	//
	// This is the per-parcel mutual-exclusion guard of the delivery workflow:
	// two concurrent deliveries of the same parcel both load it as
	// Undelivered, but only the first conditional update matches.
	UpdateStatusGuarded(ctx context.Context, aggregate *parcel.Parcel, expected parcel.Status) error

	// Get retrieves a parcel by its unique identifier.
	// Returns an ObjectNotFoundError when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetAllByCourier retrieves every parcel assigned to the given courier.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*parcel.Parcel, error)
}
