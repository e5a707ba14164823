package geo

import "math"

const (
	earthRadiusMeters = 6371000

	// fallbackSpeedMPS approximates average driving speed (50 km/h) for the
	// duration estimate when the routing provider is unavailable.
	fallbackSpeedMPS = 13.9
)

// HaversineDistance returns the great-circle distance between two points in
// meters.
func HaversineDistance(from, to Coordinate) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLon := (to.Lon - from.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// StraightLineRoute builds the fallback route used when the routing provider
// fails: straight-line distance and a duration estimated at average driving
// speed, flagged as estimated.
func StraightLineRoute(from, to Coordinate) *Route {
	distance := HaversineDistance(from, to)
	return &Route{
		DistanceMeters:  distance,
		DurationSeconds: distance / fallbackSpeedMPS,
		Geometry:        []Coordinate{from, to},
		Estimated:       true,
	}
}
