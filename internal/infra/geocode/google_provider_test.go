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

func TestGoogleProvider_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "Cebu City, Philippines", query.Get("address"))
		assert.Equal(t, "test-key", query.Get("key"))
		assert.Equal(t, "ph", query.Get("region"))
		assert.Equal(t, "country:PH", query.Get("components"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 10.3157, "lng": 123.8854}}},
				{"geometry": {"location": {"lat": 0, "lng": 0}}}
			]
		}`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, "test-key", time.Second)

	point, err := provider.Lookup(context.Background(), "Cebu City, Philippines", "ph")
	require.NoError(t, err)
	assert.Equal(t, 10.3157, point.Lat)
	assert.Equal(t, 123.8854, point.Lng)
}

func TestGoogleProvider_Lookup_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, "test-key", time.Second)

	_, err := provider.Lookup(context.Background(), "nowhere", "ph")
	require.ErrorIs(t, err, service.ErrNoMatch)
}

func TestGoogleProvider_Lookup_NonOKStatusWithResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"status": "OVER_QUERY_LIMIT",
			"results": [{"geometry": {"location": {"lat": 1, "lng": 2}}}]
		}`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, "test-key", time.Second)

	_, err := provider.Lookup(context.Background(), "Cebu City", "ph")
	require.ErrorIs(t, err, service.ErrNoMatch)
}

func TestGoogleProvider_Lookup_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, "test-key", time.Second)

	_, err := provider.Lookup(context.Background(), "Cebu City", "ph")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrNoMatch)
}

func TestGoogleProvider_Lookup_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, "test-key", time.Second)

	_, err := provider.Lookup(context.Background(), "Cebu City", "ph")
	require.Error(t, err)
}

func TestGoogleProvider_Name(t *testing.T) {
	provider := NewGoogleProvider("", "test-key", time.Second)
	assert.Equal(t, "google", provider.Name())
}
