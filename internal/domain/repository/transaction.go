package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Every repository created from the same factory participates
// in the same unit of work.
type RepositoryFactory interface {
	NewWarehouseRepository() WarehouseRepository
	NewStockRepository() StockRepository
}

// TransactionManager runs a function within a single database transaction.
type TransactionManager interface {
	// Execute begins a transaction, invokes fn with a factory bound to it,
	// and commits when fn returns nil or rolls back when it returns an error.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
