package usecase

import (
	"context"

	"depot/internal/domain/entity"
)

// SaveWarehouseInput represents the input for creating or updating a warehouse
type SaveWarehouseInput struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active"`
}

// WarehouseUsecase defines the interface for warehouse directory use cases
type WarehouseUsecase interface {
	ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error)
	ListActiveWarehouses(ctx context.Context) ([]*entity.Warehouse, error)
	GetWarehouse(ctx context.Context, id int64) (*entity.Warehouse, error)

	// CreateWarehouse persists a new warehouse, geocoding its address when
	// one is provided.
	CreateWarehouse(ctx context.Context, input *SaveWarehouseInput) (*entity.Warehouse, error)

	// UpdateWarehouse replaces name, address and activity flag, re-geocoding
	// the address.
	UpdateWarehouse(ctx context.Context, id int64, input *SaveWarehouseInput) (*entity.Warehouse, error)

	DeleteWarehouse(ctx context.Context, id int64) error
}
