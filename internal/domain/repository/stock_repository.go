package repository

import (
	"context"

	"depot/internal/errors"
)

// Domain-specific errors for stock persistence.
var (
	// ErrInsufficientStock is returned when a conditional decrement finds
	// less stock than the requested amount.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrAlreadyCommitted is returned when a commit record for the same
	// order and product already exists.
	ErrAlreadyCommitted = errors.New("allocation already committed")
)

// StockRepository defines the interface for per-warehouse stock operations.
type StockRepository interface {
	// GetQty returns the stored quantity for (warehouseID, productID),
	// or 0 when no entry exists.
	GetQty(ctx context.Context, warehouseID, productID int64) (int64, error)

	// SetQty upserts the quantity for (warehouseID, productID).
	SetQty(ctx context.Context, warehouseID, productID, qty int64) error

	// AdjustQty applies a delta to the stored quantity, creating the entry
	// when missing.
	AdjustQty(ctx context.Context, warehouseID, productID, delta int64) error

	// TotalActiveQty sums the quantity of a product across active warehouses.
	TotalActiveQty(ctx context.Context, productID int64) (int64, error)

	// RecordCommit inserts the dedup row for an order line decrement.
	// Returns ErrAlreadyCommitted when the row already exists, which means
	// the decrement for this (orderID, productID) pair has been applied.
	RecordCommit(ctx context.Context, orderID string, productID int64) error

	// DecrementIfAvailable subtracts amount from (warehouseID, productID)
	// only when the stored quantity covers it; returns ErrInsufficientStock
	// otherwise.
	DecrementIfAvailable(ctx context.Context, warehouseID, productID, amount int64) error
}
