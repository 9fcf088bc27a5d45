package kernel

import (
	"fmt"
	"math"

	"parceltrack/internal/pkg/errs"
)

const (
	// minLatitude and maxLatitude bound valid WGS84 latitudes in degrees.
	minLatitude = -90.0
	maxLatitude = 90.0
	// minLongitude and maxLongitude bound valid WGS84 longitudes in degrees.
	minLongitude = -180.0
	maxLongitude = 180.0

	// coordinatePrecision matches the NUMERIC(10,7)/NUMERIC(11,7) columns
	// the coordinates are persisted into.
	coordinatePrecision = 1e7
)

// ErrGeoPointIsNotConstructed indicates that a GeoPoint was not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"GeoPoint must be created via NewGeoPoint",
)

// GeoPoint is a value object representing a WGS84 coordinate pair captured at
// the moment of delivery. Coordinates are truncated to seven decimal places
// (roughly centimeter resolution) so that a round trip through the database
// reproduces the same value.
//
// The zero value is invalid; construct through NewGeoPoint.
type GeoPoint struct {
	latitude  float64
	longitude float64

	isConstructed bool
}

// NewGeoPoint creates a GeoPoint after range-checking both coordinates.
// Latitude must fall within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{isConstructed: true}

	if err := point.setLatitude(latitude); err != nil {
		return GeoPoint{}, err
	}
	if err := point.setLongitude(longitude); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate ensures the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	if !p.isConstructed {
		return ErrGeoPointIsNotConstructed
	}
	return nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual reports whether two points denote the same coordinates at the
// stored precision.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String renders the point as "lat,lon" with seven decimal places.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%.7f,%.7f", p.latitude, p.longitude)
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < minLatitude || latitude > maxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	p.latitude = truncateCoordinate(latitude)
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < minLongitude || longitude > maxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	p.longitude = truncateCoordinate(longitude)
	return nil
}

func truncateCoordinate(v float64) float64 {
	return math.Trunc(v*coordinatePrecision) / coordinatePrecision
}
