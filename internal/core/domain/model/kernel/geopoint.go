package kernel

import (
	"errors"

	"shopbot/internal/pkg/errs"
	"shopbot/internal/pkg/guard"
)

// Geographic coordinate bounds in decimal degrees.
const (
	LatitudeMin  float64 = -90
	LatitudeMax  float64 = 90
	LongitudeMin float64 = -180
	LongitudeMax float64 = 180
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not created
// through the NewGeoPoint factory method.
var ErrGeoPointIsNotConstructed = errors.New("GeoPoint must be created via NewGeoPoint constructor")

// GeoPoint is a value object representing a geographic position as a
// latitude/longitude pair in decimal degrees.
//
// GeoPoint follows these invariants:
//   - Latitude lies within [-90, 90]
//   - Longitude lies within [-180, 180]
//   - Can only be created through NewGeoPoint
//
// The zero value is invalid; use NewGeoPoint. GeoPoint is immutable and safe
// for concurrent use.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(41.3111, 69.2797)
//	if err != nil {
//	    // handle validation error
//	}
type GeoPoint struct {
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with validated coordinates.
//
// Returns a validation error when either coordinate lies outside its
// permitted range.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if lat < LatitudeMin || lat > LatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}
	if lon < LongitudeMin || lon > LongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lon", lon, LongitudeMin, LongitudeMax)
	}

	return GeoPoint{
		lat:   lat,
		lon:   lon,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// IsEqual compares two points coordinate-wise.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lon == other.lon
}

// Validate ensures the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
