package postgres

import (
	"context"

	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stockRepository implements the domain.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{db: db}
}

// GetQty returns the stored quantity for (warehouseID, productID), or 0
// when no entry exists.
func (repo *stockRepository) GetQty(ctx context.Context, warehouseID, productID int64) (int64, error) {
	var stockM model.StockModel

	err := repo.db.WithContext(ctx).
		Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).
		First(&stockM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to get stock quantity")
	}

	return stockM.Qty, nil
}

// SetQty upserts the quantity for (warehouseID, productID).
func (repo *stockRepository) SetQty(ctx context.Context, warehouseID, productID, qty int64) error {
	stockM := &model.StockModel{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Qty:         qty,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"qty": qty}),
		}).
		Create(stockM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set stock quantity")
	}

	return nil
}

// AdjustQty applies a delta to the stored quantity, creating the entry when
// missing. The addition happens inside the database so concurrent
// adjustments never lose updates.
func (repo *stockRepository) AdjustQty(ctx context.Context, warehouseID, productID, delta int64) error {
	stockM := &model.StockModel{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Qty:         delta,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"qty": gorm.Expr("warehouse_stock.qty + ?", delta),
			}),
		}).
		Create(stockM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to adjust stock quantity")
	}

	return nil
}

// TotalActiveQty sums the quantity of a product across active warehouses.
func (repo *stockRepository) TotalActiveQty(ctx context.Context, productID int64) (int64, error) {
	var total int64

	err := repo.db.WithContext(ctx).
		Model(&model.StockModel{}).
		Select("COALESCE(SUM(warehouse_stock.qty), 0)").
		Joins("JOIN warehouses ON warehouses.id = warehouse_stock.warehouse_id").
		Where("warehouses.is_active = ? AND warehouse_stock.product_id = ?", true, productID).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to total active stock")
	}

	return total, nil
}

// RecordCommit inserts the dedup row for an order line decrement.
func (repo *stockRepository) RecordCommit(ctx context.Context, orderID string, productID int64) error {
	commitM := &model.AllocationCommitModel{
		OrderID:   orderID,
		ProductID: productID,
	}

	if err := repo.db.WithContext(ctx).Create(commitM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyCommitted
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record allocation commit")
	}

	return nil
}

// DecrementIfAvailable subtracts amount from (warehouseID, productID) only
// when the stored quantity covers it. The qty guard in the WHERE clause is
// what rejects commits planned against stale stock.
func (repo *stockRepository) DecrementIfAvailable(ctx context.Context, warehouseID, productID, amount int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockModel{}).
		Where("warehouse_id = ? AND product_id = ? AND qty >= ?", warehouseID, productID, amount).
		Update("qty", gorm.Expr("qty - ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}
