package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"depot/internal/domain/entity"
)

const (
	earthRadiusKm = 6371.0

	// unreachableDistanceKm keeps warehouses without resolvable coordinates
	// in the ranking, sorted last, instead of dropping them.
	unreachableDistanceKm = 999999.0
)

// Rank orders warehouses by haversine distance to origin. Warehouses
// lacking valid coordinates are geocoded lazily from their address; a
// successful result is written back to the directory so later passes skip
// the lookup. When origin is invalid the input order is returned untouched.
func (s *allocationService) Rank(ctx context.Context, origin entity.GeoPoint, warehouses []*entity.Warehouse) []entity.RankedWarehouse {
	ranked := make([]entity.RankedWarehouse, 0, len(warehouses))

	if !origin.Valid() {
		for _, warehouse := range warehouses {
			ranked = append(ranked, entity.RankedWarehouse{Warehouse: warehouse})
		}

		return ranked
	}

	for _, warehouse := range warehouses {
		s.ensureCoordinates(ctx, warehouse)

		distance := unreachableDistanceKm
		if warehouse.HasValidCoordinates() {
			distance = haversineKm(origin, warehouse.Coordinates())
		}

		ranked = append(ranked, entity.RankedWarehouse{
			Warehouse:  warehouse,
			DistanceKm: distance,
			Ranked:     true,
		})
	}

	// Ties keep input order: stability is the contract.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}

// ensureCoordinates resolves missing or invalid warehouse coordinates from
// the address. A warehouse with an empty address is left untouched.
func (s *allocationService) ensureCoordinates(ctx context.Context, warehouse *entity.Warehouse) {
	if warehouse.Address == "" || warehouse.HasValidCoordinates() {
		return
	}

	result, found, err := s.geocoder.Geocode(ctx, warehouse.Address)
	if err != nil || !found {
		return
	}

	warehouse.Lat = result.Point.Lat
	warehouse.Lng = result.Point.Lng

	// Write-through so future checkouts skip the geocoding round trip.
	// Best effort: on failure the warehouse is simply geocoded again.
	if err := s.warehouseRepo.PersistCoordinates(ctx, warehouse.ID, result.Point); err != nil {
		s.logger.Warn("failed to persist warehouse coordinates",
			slog.Int64("warehouseId", warehouse.ID),
			slog.String("error", err.Error()),
		)
	}
}

// haversineKm computes the great circle distance between two points in kilometers
func haversineKm(a, b entity.GeoPoint) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lng1Rad := a.Lng * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	lng2Rad := b.Lng * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
