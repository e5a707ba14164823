package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apperrors "wayfarer/internal/errors"
)

// Geocoder resolves free-text place names to coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]Place, error)
}

// NominatimGeocoder talks to a Nominatim-compatible search endpoint.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewNominatimGeocoder builds a geocoder with a bounded request timeout.
func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// nominatimResult mirrors the provider response; coordinates arrive as strings.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns up to limit candidates for the query, best match first.
func (g *NominatimGeocoder) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	if limit <= 0 || limit > 10 {
		limit = 5
	}

	u, err := url.Parse(g.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("geocoder url: %w", err)
	}
	q := u.Query()
	q.Set("format", "json")
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", "wayfarer/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: geocoder status %d", apperrors.ErrUpstreamFailure, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: decode geocoder response: %v", apperrors.ErrUpstreamFailure, err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		places = append(places, Place{DisplayName: r.DisplayName, Lat: lat, Lon: lon})
	}
	return places, nil
}
