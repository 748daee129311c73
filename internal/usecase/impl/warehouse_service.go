package impl

import (
	"context"
	"log/slog"
	"strings"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/errors"
	"depot/internal/usecase"

	"go.uber.org/fx"
)

// WarehouseServiceParams holds dependencies for the warehouse service, injected by Fx.
type WarehouseServiceParams struct {
	fx.In

	WarehouseRepo repository.WarehouseRepository
	Geocoder      usecase.GeocodingUsecase
	Logger        *slog.Logger
}

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
	geocoder      usecase.GeocodingUsecase
	logger        *slog.Logger
}

// NewWarehouseService creates a new warehouse service instance
func NewWarehouseService(params WarehouseServiceParams) usecase.WarehouseUsecase {
	return &warehouseService{
		warehouseRepo: params.WarehouseRepo,
		geocoder:      params.Geocoder,
		logger:        params.Logger,
	}
}

func (s *warehouseService) ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	warehouses, err := s.warehouseRepo.ListWarehouses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warehouses")
	}

	return warehouses, nil
}

func (s *warehouseService) ListActiveWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	warehouses, err := s.warehouseRepo.ListActiveWarehouses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active warehouses")
	}

	return warehouses, nil
}

func (s *warehouseService) GetWarehouse(ctx context.Context, id int64) (*entity.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindWarehouseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWarehouseNotFound) {
			return nil, domainerrors.ErrWarehouseNotFound
		}

		return nil, errors.Wrap(err, "failed to find warehouse by ID")
	}

	return warehouse, nil
}

// CreateWarehouse persists a new warehouse. The address is geocoded up
// front so checkout-time ranking rarely has to; a warehouse with an empty
// address is stored without coordinates.
func (s *warehouseService) CreateWarehouse(ctx context.Context, input *usecase.SaveWarehouseInput) (*entity.Warehouse, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("warehouse name is required")
	}

	warehouse := &entity.Warehouse{
		Name:     name,
		Address:  strings.TrimSpace(input.Address),
		IsActive: input.IsActive,
	}
	s.applyGeocode(ctx, warehouse)

	if err := s.warehouseRepo.CreateWarehouse(ctx, warehouse); err != nil {
		if errors.Is(err, repository.ErrWarehouseNameConflict) {
			return nil, domainerrors.ErrWarehouseNameConflict
		}

		return nil, errors.Wrap(err, "failed to create warehouse")
	}

	return warehouse, nil
}

// UpdateWarehouse replaces the mutable fields and re-geocodes the address.
func (s *warehouseService) UpdateWarehouse(ctx context.Context, id int64, input *usecase.SaveWarehouseInput) (*entity.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindWarehouseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWarehouseNotFound) {
			return nil, domainerrors.ErrWarehouseNotFound
		}

		return nil, errors.Wrap(err, "failed to find warehouse by ID")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("warehouse name is required")
	}

	warehouse.Name = name
	warehouse.Address = strings.TrimSpace(input.Address)
	warehouse.IsActive = input.IsActive
	warehouse.Lat = 0
	warehouse.Lng = 0
	s.applyGeocode(ctx, warehouse)

	if err := s.warehouseRepo.UpdateWarehouse(ctx, warehouse); err != nil {
		if errors.Is(err, repository.ErrWarehouseNameConflict) {
			return nil, domainerrors.ErrWarehouseNameConflict
		}

		return nil, errors.Wrap(err, "failed to update warehouse")
	}

	return warehouse, nil
}

func (s *warehouseService) DeleteWarehouse(ctx context.Context, id int64) error {
	if err := s.warehouseRepo.DeleteWarehouse(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWarehouseNotFound) {
			return domainerrors.ErrWarehouseNotFound
		}

		return errors.Wrap(err, "failed to delete warehouse")
	}

	return nil
}

// applyGeocode fills coordinates from the address. An empty address is
// never geocoded, and a failed lookup leaves the zero (invalid) pair so
// ranking retries later.
func (s *warehouseService) applyGeocode(ctx context.Context, warehouse *entity.Warehouse) {
	if warehouse.Address == "" {
		return
	}

	result, found, err := s.geocoder.Geocode(ctx, warehouse.Address)
	if err != nil || !found {
		s.logger.Info("warehouse address did not geocode, storing without coordinates",
			slog.String("name", warehouse.Name),
		)

		return
	}

	warehouse.Lat = result.Point.Lat
	warehouse.Lng = result.Point.Lng
}
