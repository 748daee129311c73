package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"depot/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimProvider_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "json", query.Get("format"))
		assert.Equal(t, "1", query.Get("limit"))
		assert.Equal(t, "Cebu City, Philippines", query.Get("q"))
		assert.Equal(t, "ph", query.Get("countrycodes"))
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "10.3157", "lon": "123.8854"}]`))
	}))
	defer server.Close()

	provider := NewNominatimProvider(server.URL, "test-agent/1.0", time.Second)

	point, err := provider.Lookup(context.Background(), "Cebu City, Philippines", "PH")
	require.NoError(t, err)
	assert.Equal(t, 10.3157, point.Lat)
	assert.Equal(t, 123.8854, point.Lng)
}

func TestNominatimProvider_Lookup_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	provider := NewNominatimProvider(server.URL, "", time.Second)

	_, err := provider.Lookup(context.Background(), "nowhere", "ph")
	require.ErrorIs(t, err, service.ErrNoMatch)
}

func TestNominatimProvider_Lookup_MalformedCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"lat": "ten", "lon": "123.8854"}]`))
	}))
	defer server.Close()

	provider := NewNominatimProvider(server.URL, "", time.Second)

	_, err := provider.Lookup(context.Background(), "Cebu City", "ph")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrNoMatch)
}

func TestNominatimProvider_Lookup_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewNominatimProvider(server.URL, "", time.Second)

	_, err := provider.Lookup(context.Background(), "Cebu City", "ph")
	require.Error(t, err)
}

func TestNominatimProvider_Name(t *testing.T) {
	provider := NewNominatimProvider("", "", time.Second)
	assert.Equal(t, "nominatim", provider.Name())
}
