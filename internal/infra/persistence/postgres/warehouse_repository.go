// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// warehouseRepository implements the domain.WarehouseRepository interface.
type warehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository is the constructor for warehouseRepository.
func NewWarehouseRepository(db *gorm.DB) repository.WarehouseRepository {
	return &warehouseRepository{db: db}
}

// CreateWarehouse persists a new warehouse.
func (repo *warehouseRepository) CreateWarehouse(ctx context.Context, warehouse *entity.Warehouse) error {
	warehouseM := fromWarehouseDomain(warehouse)

	if err := repo.db.WithContext(ctx).Create(warehouseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrWarehouseNameConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create warehouse")
	}

	// Update the entity with generated values
	warehouse.ID = warehouseM.ID
	warehouse.CreatedAt = warehouseM.CreatedAt
	warehouse.UpdatedAt = warehouseM.UpdatedAt

	return nil
}

// FindWarehouseByID retrieves a warehouse by its unique ID.
func (repo *warehouseRepository) FindWarehouseByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	var warehouseM model.WarehouseModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&warehouseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWarehouseNotFound
		}

		return nil, errors.Wrap(err, "failed to find warehouse by ID")
	}

	return toWarehouseDomain(&warehouseM), nil
}

// ListWarehouses retrieves all warehouses ordered by name.
func (repo *warehouseRepository) ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	var warehouseModels []*model.WarehouseModel

	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&warehouseModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warehouses")
	}

	return toWarehouseDomainList(warehouseModels), nil
}

// ListActiveWarehouses retrieves all active warehouses ordered by name.
// This is the hot path for every allocation quote, so it is pinned to the
// read pool.
func (repo *warehouseRepository) ListActiveWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	var warehouseModels []*model.WarehouseModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&warehouseModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active warehouses")
	}

	return toWarehouseDomainList(warehouseModels), nil
}

// UpdateWarehouse updates an existing warehouse record.
func (repo *warehouseRepository) UpdateWarehouse(ctx context.Context, warehouse *entity.Warehouse) error {
	warehouseM := fromWarehouseDomain(warehouse)

	result := repo.db.WithContext(ctx).
		Model(&model.WarehouseModel{}).
		Where("id = ?", warehouseM.ID).
		Updates(map[string]any{
			"name":      warehouseM.Name,
			"address":   warehouseM.Address,
			"is_active": warehouseM.IsActive,
			"lat":       warehouseM.Lat,
			"lng":       warehouseM.Lng,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrWarehouseNameConflict
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update warehouse")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWarehouseNotFound
	}

	return nil
}

// DeleteWarehouse removes a warehouse by its ID.
func (repo *warehouseRepository) DeleteWarehouse(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WarehouseModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete warehouse")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWarehouseNotFound
	}

	return nil
}

// PersistCoordinates stores freshly geocoded coordinates for a warehouse.
func (repo *warehouseRepository) PersistCoordinates(ctx context.Context, id int64, point entity.GeoPoint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WarehouseModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"lat": point.Lat,
			"lng": point.Lng,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to persist warehouse coordinates")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWarehouseNotFound
	}

	return nil
}

// fromWarehouseDomain converts a domain entity to its persistence model.
func fromWarehouseDomain(warehouse *entity.Warehouse) *model.WarehouseModel {
	return &model.WarehouseModel{
		ID:        warehouse.ID,
		Name:      warehouse.Name,
		Address:   warehouse.Address,
		IsActive:  warehouse.IsActive,
		Lat:       warehouse.Lat,
		Lng:       warehouse.Lng,
		CreatedAt: warehouse.CreatedAt,
		UpdatedAt: warehouse.UpdatedAt,
	}
}

// toWarehouseDomain converts a persistence model to its domain entity.
func toWarehouseDomain(warehouseM *model.WarehouseModel) *entity.Warehouse {
	return &entity.Warehouse{
		ID:        warehouseM.ID,
		Name:      warehouseM.Name,
		Address:   warehouseM.Address,
		IsActive:  warehouseM.IsActive,
		Lat:       warehouseM.Lat,
		Lng:       warehouseM.Lng,
		CreatedAt: warehouseM.CreatedAt,
		UpdatedAt: warehouseM.UpdatedAt,
	}
}

func toWarehouseDomainList(warehouseModels []*model.WarehouseModel) []*entity.Warehouse {
	warehouses := make([]*entity.Warehouse, 0, len(warehouseModels))
	for _, warehouseM := range warehouseModels {
		warehouses = append(warehouses, toWarehouseDomain(warehouseM))
	}

	return warehouses
}
