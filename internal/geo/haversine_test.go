package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name     string
		from     Coordinate
		to       Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			from:     Coordinate{Lat: 12.9716, Lon: 77.5946},
			to:       Coordinate{Lat: 12.9716, Lon: 77.5946},
			expected: 0,
			delta:    0.001,
		},
		{
			name:     "one degree of longitude on the equator",
			from:     Coordinate{Lat: 0, Lon: 0},
			to:       Coordinate{Lat: 0, Lon: 1},
			expected: 111195,
			delta:    200,
		},
		{
			name:     "bangalore to chennai",
			from:     Coordinate{Lat: 12.9716, Lon: 77.5946},
			to:       Coordinate{Lat: 13.0827, Lon: 80.2707},
			expected: 290500,
			delta:    5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, HaversineDistance(tt.from, tt.to), tt.delta)
		})
	}
}

func TestStraightLineRoute(t *testing.T) {
	from := Coordinate{Lat: 0, Lon: 0}
	to := Coordinate{Lat: 0, Lon: 1}

	route := StraightLineRoute(from, to)

	assert.True(t, route.Estimated)
	assert.Equal(t, []Coordinate{from, to}, route.Geometry)
	assert.InDelta(t, route.DistanceMeters/fallbackSpeedMPS, route.DurationSeconds, 0.001)
}
