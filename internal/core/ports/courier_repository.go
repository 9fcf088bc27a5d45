// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the external
// collaborators used by the delivery workflow (geocoder, media store,
// password hasher). These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier. Returns a ConflictError when another
	// courier already uses the same email.
	Add(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	// Returns an ObjectNotFoundError when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByEmail retrieves a courier by its login email.
	// Returns an ObjectNotFoundError when no courier uses the email.
	GetByEmail(ctx context.Context, email string) (*courier.Courier, error)
}
