package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
)

// Geocoder resolves coordinates to a human-readable address via an external
// lookup service.
//
// The contract is deliberately best-effort: Reverse never returns an error.
// On any failure (network error, non-200 response, timeout, malformed body)
// it returns ok=false and the delivery workflow substitutes a sentinel
// address. Implementations must bound their own timeout.
type Geocoder interface {
	Reverse(ctx context.Context, point kernel.GeoPoint) (address string, ok bool)
}
