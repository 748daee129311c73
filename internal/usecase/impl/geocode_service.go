package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"depot/config"
	"depot/internal/domain/entity"
	"depot/internal/domain/service"
	"depot/internal/usecase"

	"go.uber.org/fx"
)

const (
	cacheProviderName = "cache"

	defaultCountryCode      = "ph"
	defaultCountryName      = "Philippines"
	defaultPrimaryCacheTTL  = 30 * 24 * time.Hour
	defaultFallbackCacheTTL = 7 * 24 * time.Hour

	geocodeCacheKeyPrefix = "depot:geo:"
)

var (
	postcodePattern   = regexp.MustCompile(`\b\d{4,6}\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	commaPattern      = regexp.MustCompile(`\s*,\s*`)
	emptySegPattern   = regexp.MustCompile(`,\s*,+`)
)

// GeocodeServiceParams holds dependencies for the geocode service, injected by Fx.
type GeocodeServiceParams struct {
	fx.In

	Chain  service.GeoProviderChain
	Cache  service.GeocodeCache
	Config *config.Config
	Logger *slog.Logger
}

type geocodeService struct {
	primary  service.GeoProvider // nil when no API key is configured
	fallback service.GeoProvider
	cache    service.GeocodeCache
	logger   *slog.Logger

	countryCode string
	countryName string
	countryExpr *regexp.Regexp
	primaryTTL  time.Duration
	fallbackTTL time.Duration
}

// NewGeocodeService creates a new geocoding service instance
func NewGeocodeService(params GeocodeServiceParams) usecase.GeocodingUsecase {
	countryCode := defaultCountryCode
	countryName := defaultCountryName
	primaryTTL := defaultPrimaryCacheTTL
	fallbackTTL := defaultFallbackCacheTTL

	if cfg := params.Config.Geocoding; cfg != nil {
		if cfg.CountryCode != "" {
			countryCode = strings.ToLower(cfg.CountryCode)
		}
		if cfg.CountryName != "" {
			countryName = cfg.CountryName
		}
		if cfg.PrimaryCacheTTL > 0 {
			primaryTTL = cfg.PrimaryCacheTTL
		}
		if cfg.FallbackCacheTTL > 0 {
			fallbackTTL = cfg.FallbackCacheTTL
		}
	}

	return &geocodeService{
		primary:     params.Chain.Primary,
		fallback:    params.Chain.Fallback,
		cache:       params.Cache,
		logger:      params.Logger,
		countryCode: countryCode,
		countryName: countryName,
		countryExpr: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToUpper(countryCode)) + `\b`),
		primaryTTL:  primaryTTL,
		fallbackTTL: fallbackTTL,
	}
}

// Geocode resolves a free-text address to coordinates, trying the paid
// provider across all candidates before the free fallback. All failures are
// recoverable: the worst outcome is found=false.
func (s *geocodeService) Geocode(ctx context.Context, address string) (*usecase.GeocodeResult, bool, error) {
	normalized := s.normalizeAddress(address)
	if normalized == "" {
		return nil, false, nil
	}

	cacheKey := geocodeCacheKey(normalized)
	if point, ok, err := s.cache.Get(ctx, cacheKey); err != nil {
		s.logger.Debug("geocode cache read failed",
			slog.String("error", err.Error()),
		)
	} else if ok && point.Valid() {
		return &usecase.GeocodeResult{Point: point, Provider: cacheProviderName}, true, nil
	}

	candidates := candidateAddresses(normalized)

	if s.primary != nil {
		if point, ok := s.lookupAll(ctx, s.primary, candidates); ok {
			s.store(ctx, cacheKey, point, s.primaryTTL)

			return &usecase.GeocodeResult{Point: point, Provider: s.primary.Name()}, true, nil
		}
	}

	if point, ok := s.lookupAll(ctx, s.fallback, candidates); ok {
		s.store(ctx, cacheKey, point, s.fallbackTTL)

		return &usecase.GeocodeResult{Point: point, Provider: s.fallback.Name()}, true, nil
	}

	return nil, false, nil
}

// Candidates returns the candidate strings tried for an address.
func (s *geocodeService) Candidates(address string) []string {
	normalized := s.normalizeAddress(address)
	if normalized == "" {
		return nil
	}

	return candidateAddresses(normalized)
}

// lookupAll tries every candidate against one provider, in order.
func (s *geocodeService) lookupAll(ctx context.Context, provider service.GeoProvider, candidates []string) (entity.GeoPoint, bool) {
	for _, candidate := range candidates {
		point, err := provider.Lookup(ctx, candidate, s.countryCode)
		if err != nil {
			// Timeouts, malformed bodies and no-match responses are all
			// "try the next candidate".
			s.logger.Debug("geocode lookup failed",
				slog.String("provider", provider.Name()),
				slog.String("candidate", candidate),
				slog.String("error", err.Error()),
			)

			continue
		}
		if point.Valid() {
			return point, true
		}
	}

	return entity.GeoPoint{}, false
}

func (s *geocodeService) store(ctx context.Context, key string, point entity.GeoPoint, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, point, ttl); err != nil {
		s.logger.Warn("geocode cache write failed",
			slog.String("error", err.Error()),
		)
	}
}

// normalizeAddress canonicalizes an address for candidate generation and
// cache keying: the configured country code token is expanded to the full
// country name, the country name is appended when missing, and repeated
// whitespace and comma runs are collapsed.
func (s *geocodeService) normalizeAddress(address string) string {
	a := strings.TrimSpace(address)
	if a == "" {
		return ""
	}

	a = s.countryExpr.ReplaceAllString(a, s.countryName)

	if !strings.Contains(strings.ToLower(a), strings.ToLower(s.countryName)) {
		a = strings.TrimRight(a, ", ") + ", " + s.countryName
	}

	a = whitespacePattern.ReplaceAllString(a, " ")
	a = commaPattern.ReplaceAllString(a, ", ")
	a = emptySegPattern.ReplaceAllString(a, ", ")

	return strings.Trim(a, " ,")
}

// candidateAddresses generates progressively simplified strings to try,
// most specific first: the full address, a postal-code-stripped variant,
// then the last 3 and last 2 comma-separated segments.
func candidateAddresses(address string) []string {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}

	candidates := []string{address}

	noPostcode := postcodePattern.ReplaceAllString(address, "")
	noPostcode = commaPattern.ReplaceAllString(noPostcode, ", ")
	noPostcode = emptySegPattern.ReplaceAllString(noPostcode, ", ")
	noPostcode = strings.Trim(noPostcode, " ,")
	if noPostcode != "" && noPostcode != address {
		candidates = append(candidates, noPostcode)
	}

	var segments []string
	for _, part := range strings.Split(address, ",") {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) >= 3 {
		candidates = append(candidates, strings.Join(segments[len(segments)-3:], ", "))
	}
	if len(segments) >= 2 {
		candidates = append(candidates, strings.Join(segments[len(segments)-2:], ", "))
	}

	seen := make(map[string]struct{}, len(candidates))
	deduped := candidates[:0]
	for _, candidate := range candidates {
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		deduped = append(deduped, candidate)
	}

	return deduped
}

func geocodeCacheKey(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))

	return geocodeCacheKeyPrefix + hex.EncodeToString(sum[:])
}
