package entity

import "time"

// Warehouse is a named fulfillment location with an address, an activity
// flag and derived geocoordinates.
type Warehouse struct {
	ID        int64     // Stable unique identifier.
	Name      string    // Display name, unique per deployment by convention.
	Address   string    // Free-text street address used for geocoding.
	IsActive  bool      // Inactive warehouses never receive allocations.
	Lat       float64   // Derived from Address; zero pair means "not geocoded".
	Lng       float64   // Derived from Address; zero pair means "not geocoded".
	CreatedAt time.Time // Timestamp of when this warehouse was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Coordinates returns the warehouse position as a GeoPoint.
func (w *Warehouse) Coordinates() GeoPoint {
	return GeoPoint{Lat: w.Lat, Lng: w.Lng}
}

// HasValidCoordinates reports whether the stored coordinates are usable.
// Coordinates are cached derived data; an invalid pair triggers re-geocoding.
func (w *Warehouse) HasValidCoordinates() bool {
	return w.Coordinates().Valid()
}
