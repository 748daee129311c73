// Package entity contains the core business objects of the project.
package entity

import "math"

// GeoPoint is a geographic coordinate pair in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point can be used for distance computation.
// The origin (0,0) is treated as absent rather than as a real location:
// it is what ends up stored when a NULL coordinate is written through a
// float column.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) ||
		math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	if p.Lat == 0 && p.Lng == 0 {
		return false
	}
	if p.Lat > 90 || p.Lat < -90 {
		return false
	}
	if p.Lng > 180 || p.Lng < -180 {
		return false
	}

	return true
}
