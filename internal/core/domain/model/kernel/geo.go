package kernel

import (
	"grocery/internal/pkg/errs"
)

// Latitude and longitude bounds in decimal degrees.
const (
	LatitudeMin  float64 = -90
	LatitudeMax  float64 = 90
	LongitudeMin float64 = -180
	LongitudeMax float64 = 180
)

// GeoPoint is an optional delivery coordinate pair attached to an order when
// the customer shares their location at checkout. It is a value object: once
// constructed it never changes.
//
// The zero value is a valid point (0, 0) but orders that carry no coordinates
// use a nil *GeoPoint instead, so the ambiguity never arises in practice.
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint creates a coordinate pair, validating both components are within
// the WGS84 bounds.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	return GeoPoint{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two points by value.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}
