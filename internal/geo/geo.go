// Package geo integrates the external geocoding and routing providers and the
// straight-line fallback used when the routing provider is unavailable.
package geo

import "time"

// DefaultTimeout bounds outbound calls to the geo providers.
const DefaultTimeout = 10 * time.Second

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a geocoding candidate for a free-text query.
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Route is the computed path between two coordinates. Estimated is true when
// the routing provider was unavailable and the figures come from the
// straight-line fallback.
type Route struct {
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Geometry        []Coordinate `json:"geometry,omitempty"`
	Estimated       bool         `json:"estimated"`
}
