package model

import "time"

// StockModel is the GORM-specific struct for the 'warehouse_stock' table.
// One row per (warehouse, product) pair.
type StockModel struct {
	ID          int64 `gorm:"primary_key;autoIncrement"`
	WarehouseID int64 `gorm:"not null;uniqueIndex:idx_stock_on_warehouse_product"`
	ProductID   int64 `gorm:"not null;uniqueIndex:idx_stock_on_warehouse_product"`
	Qty         int64 `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockModel) TableName() string {
	return "warehouse_stock"
}

// AllocationCommitModel mirrors the 'allocation_commits' table. The unique
// index on (order, product) is what makes stock reduction idempotent per
// order line.
type AllocationCommitModel struct {
	ID        int64  `gorm:"primary_key;autoIncrement"`
	OrderID   string `gorm:"type:varchar(64);not null;uniqueIndex:idx_commits_on_order_product"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_commits_on_order_product"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AllocationCommitModel) TableName() string {
	return "allocation_commits"
}
