package entity

import "time"

// StockEntry is the quantity of one product held at one warehouse.
// At most one entry exists per (WarehouseID, ProductID) pair.
type StockEntry struct {
	WarehouseID int64
	ProductID   int64
	Qty         int64
	UpdatedAt   time.Time
}
