package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPoint_Valid(t *testing.T) {
	tests := []struct {
		name  string
		point GeoPoint
		valid bool
	}{
		{"cebu", GeoPoint{Lat: 10.3157, Lng: 123.8854}, true},
		{"negative coordinates", GeoPoint{Lat: -33.8688, Lng: -70.6693}, true},
		{"zero pair treated as absent", GeoPoint{}, false},
		{"zero latitude alone is fine", GeoPoint{Lat: 0, Lng: 123.9}, true},
		{"zero longitude alone is fine", GeoPoint{Lat: 10.3, Lng: 0}, true},
		{"latitude above range", GeoPoint{Lat: 90.1, Lng: 0}, false},
		{"latitude below range", GeoPoint{Lat: -90.1, Lng: 0}, false},
		{"longitude above range", GeoPoint{Lat: 0, Lng: 180.1}, false},
		{"longitude below range", GeoPoint{Lat: 0, Lng: -180.1}, false},
		{"latitude boundary", GeoPoint{Lat: 90, Lng: 1}, true},
		{"longitude boundary", GeoPoint{Lat: 1, Lng: -180}, true},
		{"NaN latitude", GeoPoint{Lat: math.NaN(), Lng: 1}, false},
		{"infinite longitude", GeoPoint{Lat: 1, Lng: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.point.Valid())
		})
	}
}
