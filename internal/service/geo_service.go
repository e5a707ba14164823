package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"wayfarer/internal/geo"
)

const geocodeCacheTTL = 5 * time.Minute

// GeoService exposes geocoding and routing to the HTTP layer.
type GeoService interface {
	Search(ctx context.Context, query string, limit int) ([]geo.Place, error)
	Route(ctx context.Context, from, to geo.Coordinate) (*geo.Route, error)
}

// Cache is the subset of cache operations the geo service needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type geoService struct {
	geocoder geo.Geocoder
	router   geo.Router
	cache    Cache
}

// NewGeoService builds a GeoService with geocode result caching.
func NewGeoService(geocoder geo.Geocoder, router geo.Router, cache Cache) GeoService {
	return &geoService{geocoder: geocoder, router: router, cache: cache}
}

func geocodeCacheKey(query string, limit int) string {
	return fmt.Sprintf("geocode:%d:%s", limit, query)
}

// Search resolves a free-text place name to candidate coordinates, consulting
// the cache first. Provider responses are cached; provider failures are not.
// A cache entry that no longer decodes is evicted and refetched.
func (s *geoService) Search(ctx context.Context, query string, limit int) ([]geo.Place, error) {
	key := geocodeCacheKey(query, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []geo.Place
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		_ = s.cache.Delete(ctx, key)
	}

	places, err := s.geocoder.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(places); err == nil {
		_ = s.cache.Set(ctx, key, payload, geocodeCacheTTL)
	}
	return places, nil
}

// Route asks the routing provider for a path between the two points. When the
// provider is unreachable or errors, it recovers locally with a straight-line
// estimate flagged as such.
func (s *geoService) Route(ctx context.Context, from, to geo.Coordinate) (*geo.Route, error) {
	route, err := s.router.Route(ctx, from, to)
	if err != nil {
		log.Printf("routing provider failed, using straight-line fallback: %v", err)
		return geo.StraightLineRoute(from, to), nil
	}
	return route, nil
}
