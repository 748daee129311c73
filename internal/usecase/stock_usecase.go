package usecase

import (
	"context"

	"depot/internal/domain/entity"
)

// Shortfall reports a product whose demand exceeds total active stock.
type Shortfall struct {
	ProductID int64 `json:"product_id"`
	Requested int64 `json:"requested"`
	Available int64 `json:"available"`
}

// StockUsecase defines the interface for per-warehouse stock use cases
type StockUsecase interface {
	GetQty(ctx context.Context, warehouseID, productID int64) (int64, error)
	SetQty(ctx context.Context, warehouseID, productID, qty int64) error
	AdjustQty(ctx context.Context, warehouseID, productID, delta int64) error

	// TotalActiveQty sums a product's stock across active warehouses.
	TotalActiveQty(ctx context.Context, productID int64) (int64, error)

	// ValidateDemand checks cart demand against total active stock and
	// returns one Shortfall per unsatisfiable product. An empty slice means
	// the cart passes the coarse availability check (a single warehouse may
	// still be unable to fulfill an item; that is the allocator's call).
	ValidateDemand(ctx context.Context, demand entity.CartDemand) ([]Shortfall, error)
}
