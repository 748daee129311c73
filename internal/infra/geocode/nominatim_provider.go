package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"depot/internal/domain/entity"
	"depot/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultNominatimEndpoint = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent         = "depot-allocator/1.0"
)

// nominatimProvider implements service.GeoProvider against the OpenStreetMap
// Nominatim search API. It is the always-available free fallback.
type nominatimProvider struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// nominatimResult is one entry of the Nominatim response array. Coordinates
// arrive as decimal strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimProvider creates the Nominatim geocoding client.
func NewNominatimProvider(endpoint, userAgent string, timeout time.Duration) service.GeoProvider {
	if endpoint == "" {
		endpoint = defaultNominatimEndpoint
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &nominatimProvider{
		endpoint:  endpoint,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name identifies the provider in logs and cache metadata.
func (p *nominatimProvider) Name() string {
	return "nominatim"
}

// Lookup geocodes one candidate string, restricted to countryCode.
func (p *nominatimProvider) Lookup(ctx context.Context, address, countryCode string) (entity.GeoPoint, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("q", address)
	query.Set("countrycodes", strings.ToLower(countryCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return entity.GeoPoint{}, errors.WithStack(err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrap(err, "nominatim request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.GeoPoint{}, errors.Errorf("nominatim returned HTTP %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return entity.GeoPoint{}, errors.Wrap(err, "nominatim response malformed")
	}

	if len(results) == 0 {
		return entity.GeoPoint{}, service.ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrap(err, "nominatim latitude malformed")
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrap(err, "nominatim longitude malformed")
	}

	return entity.GeoPoint{Lat: lat, Lng: lng}, nil
}
