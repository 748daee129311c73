package impl

import (
	"context"
	"testing"
	"time"

	"depot/config"
	"depot/internal/domain/entity"
	"depot/internal/domain/service"
	mockSvc "depot/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geocodeMocks struct {
	primary  *mockSvc.MockGeoProvider
	fallback *mockSvc.MockGeoProvider
	cache    *mockSvc.MockGeocodeCache
}

func newGeocodeService(t *testing.T, withPrimary bool) (*geocodeService, *geocodeMocks) {
	t.Helper()

	mocks := &geocodeMocks{
		fallback: mockSvc.NewMockGeoProvider(t),
		cache:    mockSvc.NewMockGeocodeCache(t),
	}

	chain := service.GeoProviderChain{Fallback: mocks.fallback}
	if withPrimary {
		mocks.primary = mockSvc.NewMockGeoProvider(t)
		chain.Primary = mocks.primary
	}

	svc := NewGeocodeService(GeocodeServiceParams{
		Chain:  chain,
		Cache:  mocks.cache,
		Config: &config.Config{},
		Logger: testLogger(),
	})

	return svc.(*geocodeService), mocks
}

func TestGeocodeService_NormalizeAddress(t *testing.T) {
	svc, _ := newGeocodeService(t, false)

	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{
			name:     "country code token expanded",
			address:  "Cebu City, PH",
			expected: "Cebu City, Philippines",
		},
		{
			name:     "country appended when missing",
			address:  "Cebu City",
			expected: "Cebu City, Philippines",
		},
		{
			name:     "whitespace and comma runs collapsed",
			address:  "123  Main St ,, Cebu City,  Philippines",
			expected: "123 Main St, Cebu City, Philippines",
		},
		{
			name:     "already canonical",
			address:  "123 Main St, Cebu City, Philippines",
			expected: "123 Main St, Cebu City, Philippines",
		},
		{
			name:     "blank",
			address:  "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.normalizeAddress(tt.address))
		})
	}
}

func TestGeocodeService_Candidates(t *testing.T) {
	svc, _ := newGeocodeService(t, false)

	candidates := svc.Candidates("123 Main St, 6000, Cebu City, Cebu, Philippines")

	assert.Equal(t, []string{
		"123 Main St, 6000, Cebu City, Cebu, Philippines",
		"123 Main St, Cebu City, Cebu, Philippines",
		"Cebu City, Cebu, Philippines",
		"Cebu, Philippines",
	}, candidates)
}

func TestGeocodeService_Candidates_ShortAddressNoDuplicates(t *testing.T) {
	svc, _ := newGeocodeService(t, false)

	candidates := svc.Candidates("Cebu City, Philippines")

	assert.Equal(t, []string{"Cebu City, Philippines"}, candidates)
}

func TestGeocodeService_Candidates_EmptyAddress(t *testing.T) {
	svc, _ := newGeocodeService(t, false)

	assert.Nil(t, svc.Candidates(""))
}

func TestGeocodeService_Geocode_CacheHitSkipsProviders(t *testing.T) {
	svc, mocks := newGeocodeService(t, true)
	ctx := context.Background()

	mocks.cache.EXPECT().
		Get(ctx, geocodeCacheKey("Cebu City, Philippines")).
		Return(cebu, true, nil)

	result, found, err := svc.Geocode(ctx, "Cebu City")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, cebu, result.Point)
	assert.Equal(t, "cache", result.Provider)
	// No Lookup expectations were set: a provider call would fail the test.
}

func TestGeocodeService_Geocode_PrimaryHit(t *testing.T) {
	svc, mocks := newGeocodeService(t, true)
	ctx := context.Background()

	mocks.cache.EXPECT().
		Get(ctx, geocodeCacheKey("Cebu City, Philippines")).
		Return(entity.GeoPoint{}, false, nil)
	mocks.primary.EXPECT().
		Lookup(ctx, "Cebu City, Philippines", "ph").
		Return(cebu, nil)
	mocks.primary.EXPECT().Name().Return("google")
	mocks.cache.EXPECT().
		Set(ctx, geocodeCacheKey("Cebu City, Philippines"), cebu, defaultPrimaryCacheTTL).
		Return(nil)

	result, found, err := svc.Geocode(ctx, "Cebu City")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, cebu, result.Point)
	assert.Equal(t, "google", result.Provider)
}

func TestGeocodeService_Geocode_FallbackAfterPrimaryExhausted(t *testing.T) {
	svc, mocks := newGeocodeService(t, true)
	ctx := context.Background()
	address := "123 Main St, Cebu City, Philippines"

	mocks.cache.EXPECT().
		Get(ctx, geocodeCacheKey(address)).
		Return(entity.GeoPoint{}, false, nil)
	mocks.primary.EXPECT().Name().Return("google").Maybe()
	mocks.primary.EXPECT().
		Lookup(ctx, address, "ph").
		Return(entity.GeoPoint{}, service.ErrNoMatch)
	mocks.primary.EXPECT().
		Lookup(ctx, "Cebu City, Philippines", "ph").
		Return(entity.GeoPoint{}, service.ErrNoMatch)
	mocks.fallback.EXPECT().
		Lookup(ctx, address, "ph").
		Return(cebu, nil)
	mocks.fallback.EXPECT().Name().Return("nominatim")
	mocks.cache.EXPECT().
		Set(ctx, geocodeCacheKey(address), cebu, defaultFallbackCacheTTL).
		Return(nil)

	result, found, err := svc.Geocode(ctx, "123 Main St, Cebu City")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "nominatim", result.Provider)
}

func TestGeocodeService_Geocode_NoPrimaryWithoutAPIKey(t *testing.T) {
	svc, mocks := newGeocodeService(t, false)
	ctx := context.Background()

	mocks.cache.EXPECT().
		Get(ctx, geocodeCacheKey("Cebu City, Philippines")).
		Return(entity.GeoPoint{}, false, nil)
	mocks.fallback.EXPECT().
		Lookup(ctx, "Cebu City, Philippines", "ph").
		Return(cebu, nil)
	mocks.fallback.EXPECT().Name().Return("nominatim")
	mocks.cache.EXPECT().
		Set(ctx, geocodeCacheKey("Cebu City, Philippines"), cebu, defaultFallbackCacheTTL).
		Return(nil)

	result, found, err := svc.Geocode(ctx, "Cebu City")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "nominatim", result.Provider)
}

func TestGeocodeService_Geocode_AllProvidersFail(t *testing.T) {
	svc, mocks := newGeocodeService(t, false)
	ctx := context.Background()

	mocks.cache.EXPECT().
		Get(ctx, geocodeCacheKey("Cebu City, Philippines")).
		Return(entity.GeoPoint{}, false, nil)
	mocks.fallback.EXPECT().Name().Return("nominatim").Maybe()
	mocks.fallback.EXPECT().
		Lookup(ctx, "Cebu City, Philippines", "ph").
		Return(entity.GeoPoint{}, errors.New("timeout"))

	result, found, err := svc.Geocode(ctx, "Cebu City")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, result)
}

func TestGeocodeService_Geocode_EmptyAddress(t *testing.T) {
	svc, _ := newGeocodeService(t, false)

	result, found, err := svc.Geocode(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, result)
}

func TestGeocodeService_Geocode_CacheReadFailureFallsThrough(t *testing.T) {
	svc, mocks := newGeocodeService(t, false)
	ctx := context.Background()

	mocks.cache.EXPECT().
		Get(ctx, geocodeCacheKey("Cebu City, Philippines")).
		Return(entity.GeoPoint{}, false, errors.New("connection refused"))
	mocks.fallback.EXPECT().
		Lookup(ctx, "Cebu City, Philippines", "ph").
		Return(cebu, nil)
	mocks.fallback.EXPECT().Name().Return("nominatim")
	mocks.cache.EXPECT().
		Set(ctx, geocodeCacheKey("Cebu City, Philippines"), cebu, defaultFallbackCacheTTL).
		Return(nil)

	_, found, err := svc.Geocode(ctx, "Cebu City")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestGeocodeService_ConfiguredCountryOverride(t *testing.T) {
	fallback := mockSvc.NewMockGeoProvider(t)
	cache := mockSvc.NewMockGeocodeCache(t)

	svc := NewGeocodeService(GeocodeServiceParams{
		Chain: service.GeoProviderChain{Fallback: fallback},
		Cache: cache,
		Config: &config.Config{
			Geocoding: &config.GeocodingConfig{
				CountryCode:      "SG",
				CountryName:      "Singapore",
				PrimaryCacheTTL:  time.Hour,
				FallbackCacheTTL: time.Minute,
			},
		},
		Logger: testLogger(),
	}).(*geocodeService)

	assert.Equal(t, "Orchard Rd, Singapore", svc.normalizeAddress("Orchard Rd, SG"))
	assert.Equal(t, "sg", svc.countryCode)
	assert.Equal(t, time.Hour, svc.primaryTTL)
	assert.Equal(t, time.Minute, svc.fallbackTTL)
}
