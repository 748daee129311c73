// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"depot/internal/domain/entity"
	"depot/internal/errors"
)

// Domain-specific errors for warehouse persistence.
var (
	// ErrWarehouseNotFound is returned when a warehouse is not found.
	ErrWarehouseNotFound = errors.New("warehouse not found")
	// ErrWarehouseNameConflict is returned when a warehouse name is already taken.
	ErrWarehouseNameConflict = errors.New("warehouse name already exists")
)

// WarehouseRepository defines the interface for warehouse-related database operations.
type WarehouseRepository interface {
	// CreateWarehouse persists a new warehouse.
	CreateWarehouse(ctx context.Context, warehouse *entity.Warehouse) error

	// FindWarehouseByID retrieves a warehouse by its unique ID.
	FindWarehouseByID(ctx context.Context, id int64) (*entity.Warehouse, error)

	// ListWarehouses retrieves all warehouses ordered by name.
	ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error)

	// ListActiveWarehouses retrieves all active warehouses ordered by name.
	ListActiveWarehouses(ctx context.Context) ([]*entity.Warehouse, error)

	// UpdateWarehouse updates an existing warehouse record.
	UpdateWarehouse(ctx context.Context, warehouse *entity.Warehouse) error

	// DeleteWarehouse removes a warehouse by its ID.
	DeleteWarehouse(ctx context.Context, id int64) error

	// PersistCoordinates stores freshly geocoded coordinates for a warehouse.
	// Callers treat failures as best-effort: a warehouse that could not be
	// updated is simply geocoded again on the next pass.
	PersistCoordinates(ctx context.Context, id int64, point entity.GeoPoint) error
}
