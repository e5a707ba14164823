package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "wayfarer/internal/errors"
	"wayfarer/internal/geo"
)

// MockGeocoder is a mock implementation of geo.Geocoder.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Search(ctx context.Context, query string, limit int) ([]geo.Place, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geo.Place), args.Error(1)
}

// MockRouter is a mock implementation of geo.Router.
type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) Route(ctx context.Context, from, to geo.Coordinate) (*geo.Route, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Route), args.Error(1)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func missCache() *MockCache {
	c := new(MockCache)
	c.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return c
}

func TestGeoService_Search(t *testing.T) {
	places := []geo.Place{{DisplayName: "Bangalore, India", Lat: 12.9716, Lon: 77.5946}}

	mockGeocoder := new(MockGeocoder)
	mockGeocoder.On("Search", mock.Anything, "bangalore", 5).Return(places, nil)

	svc := NewGeoService(mockGeocoder, new(MockRouter), missCache())

	got, err := svc.Search(context.Background(), "bangalore", 5)
	assert.NoError(t, err)
	assert.Equal(t, places, got)
	mockGeocoder.AssertExpectations(t)
}

func TestGeoService_SearchUpstreamFailure(t *testing.T) {
	mockGeocoder := new(MockGeocoder)
	mockGeocoder.On("Search", mock.Anything, "nowhere", 5).Return(nil, apperrors.ErrUpstreamFailure)

	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewGeoService(mockGeocoder, new(MockRouter), mockCache)

	_, err := svc.Search(context.Background(), "nowhere", 5)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
	// Failures are never cached.
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGeoService_SearchCacheHit(t *testing.T) {
	places := []geo.Place{{DisplayName: "Bangalore, India", Lat: 12.9716, Lon: 77.5946}}
	payload, err := json.Marshal(places)
	assert.NoError(t, err)

	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, "geocode:5:bangalore").Return(payload, nil)

	mockGeocoder := new(MockGeocoder)
	svc := NewGeoService(mockGeocoder, new(MockRouter), mockCache)

	got, err := svc.Search(context.Background(), "bangalore", 5)
	assert.NoError(t, err)
	assert.Equal(t, places, got)
	mockGeocoder.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestGeoService_SearchCachesProviderResult(t *testing.T) {
	places := []geo.Place{{DisplayName: "Bangalore, India", Lat: 12.9716, Lon: 77.5946}}
	payload, err := json.Marshal(places)
	assert.NoError(t, err)

	mockGeocoder := new(MockGeocoder)
	mockGeocoder.On("Search", mock.Anything, "bangalore", 5).Return(places, nil)

	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, "geocode:5:bangalore").Return(nil, nil)
	mockCache.On("Set", mock.Anything, "geocode:5:bangalore", payload, geocodeCacheTTL).Return(nil)

	svc := NewGeoService(mockGeocoder, new(MockRouter), mockCache)

	_, err = svc.Search(context.Background(), "bangalore", 5)
	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}

// A cache entry that no longer decodes is evicted and the provider consulted
// again, so one corrupt value cannot pin bad data for its whole TTL.
func TestGeoService_SearchDropsCorruptCacheEntry(t *testing.T) {
	places := []geo.Place{{DisplayName: "Bangalore, India", Lat: 12.9716, Lon: 77.5946}}

	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, "geocode:5:bangalore").Return([]byte("{not json"), nil)
	mockCache.On("Delete", mock.Anything, "geocode:5:bangalore").Return(nil)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mockGeocoder := new(MockGeocoder)
	mockGeocoder.On("Search", mock.Anything, "bangalore", 5).Return(places, nil)

	svc := NewGeoService(mockGeocoder, new(MockRouter), mockCache)

	got, err := svc.Search(context.Background(), "bangalore", 5)
	assert.NoError(t, err)
	assert.Equal(t, places, got)
	mockCache.AssertExpectations(t)
	mockGeocoder.AssertExpectations(t)
}

func TestGeoService_RouteUsesProvider(t *testing.T) {
	from := geo.Coordinate{Lat: 12.9716, Lon: 77.5946}
	to := geo.Coordinate{Lat: 13.0827, Lon: 80.2707}
	route := &geo.Route{DistanceMeters: 350000, DurationSeconds: 18000}

	mockRouter := new(MockRouter)
	mockRouter.On("Route", mock.Anything, from, to).Return(route, nil)

	svc := NewGeoService(new(MockGeocoder), mockRouter, new(MockCache))

	got, err := svc.Route(context.Background(), from, to)
	assert.NoError(t, err)
	assert.Equal(t, route, got)
	assert.False(t, got.Estimated)
}

// When the routing provider fails the service recovers with the straight-line
// estimate instead of surfacing the upstream error.
func TestGeoService_RouteFallsBackToStraightLine(t *testing.T) {
	from := geo.Coordinate{Lat: 0, Lon: 0}
	to := geo.Coordinate{Lat: 0, Lon: 1}

	mockRouter := new(MockRouter)
	mockRouter.On("Route", mock.Anything, from, to).Return(nil, apperrors.ErrUpstreamFailure)

	svc := NewGeoService(new(MockGeocoder), mockRouter, new(MockCache))

	got, err := svc.Route(context.Background(), from, to)
	assert.NoError(t, err)
	assert.True(t, got.Estimated)
	// One degree of longitude on the equator is roughly 111 km.
	assert.InDelta(t, 111195, got.DistanceMeters, 200)
	assert.Greater(t, got.DurationSeconds, 0.0)
}
