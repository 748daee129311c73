// Package geocode contains HTTP clients for the external geocoding providers.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"depot/internal/domain/entity"
	"depot/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultGoogleEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// googleProvider implements service.GeoProvider against the Google
// Geocoding API. It is the paid, key-gated primary provider.
type googleProvider struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// googleResponse is the subset of the Google Geocoding response we read.
type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewGoogleProvider creates the Google geocoding client.
func NewGoogleProvider(endpoint, apiKey string, timeout time.Duration) service.GeoProvider {
	if endpoint == "" {
		endpoint = defaultGoogleEndpoint
	}

	return &googleProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name identifies the provider in logs and cache metadata.
func (p *googleProvider) Name() string {
	return "google"
}

// Lookup geocodes one candidate string, biased to countryCode through both
// the region and components parameters.
func (p *googleProvider) Lookup(ctx context.Context, address, countryCode string) (entity.GeoPoint, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", p.apiKey)
	query.Set("region", strings.ToLower(countryCode))
	query.Set("components", "country:"+strings.ToUpper(countryCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return entity.GeoPoint{}, errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrap(err, "google geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.GeoPoint{}, errors.Errorf("google geocoding returned HTTP %d", resp.StatusCode)
	}

	var body googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.GeoPoint{}, errors.Wrap(err, "google geocoding response malformed")
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return entity.GeoPoint{}, service.ErrNoMatch
	}

	location := body.Results[0].Geometry.Location

	return entity.GeoPoint{Lat: location.Lat, Lng: location.Lng}, nil
}
