package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "wayfarer/internal/errors"
)

// Router computes a path and distance/duration between two coordinates.
type Router interface {
	Route(ctx context.Context, from, to Coordinate) (*Route, error)
}

// OSRMRouter talks to an OSRM-compatible route endpoint.
type OSRMRouter struct {
	baseURL string
	client  *http.Client
}

// NewOSRMRouter builds a router with a bounded request timeout.
func NewOSRMRouter(baseURL string) *OSRMRouter {
	return &OSRMRouter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Route requests the driving route between from and to. OSRM takes lon,lat
// pairs and returns GeoJSON geometry in the same order.
func (r *OSRMRouter) Route(ctx context.Context, from, to Coordinate) (*Route, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		r.baseURL, from.Lon, from.Lat, to.Lon, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("router request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: router status %d", apperrors.ErrUpstreamFailure, resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode router response: %v", apperrors.ErrUpstreamFailure, err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, fmt.Errorf("%w: router code %q", apperrors.ErrUpstreamFailure, body.Code)
	}

	best := body.Routes[0]
	geometry := make([]Coordinate, 0, len(best.Geometry.Coordinates))
	for _, pair := range best.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		geometry = append(geometry, Coordinate{Lat: pair[1], Lon: pair[0]})
	}

	return &Route{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        geometry,
	}, nil
}
