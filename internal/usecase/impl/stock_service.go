package impl

import (
	"context"
	"log/slog"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/errors"
	"depot/internal/usecase"

	"go.uber.org/fx"
)

// StockServiceParams holds dependencies for the stock service, injected by Fx.
type StockServiceParams struct {
	fx.In

	StockRepo repository.StockRepository
	Logger    *slog.Logger
}

type stockService struct {
	stockRepo repository.StockRepository
	logger    *slog.Logger
}

// NewStockService creates a new stock service instance
func NewStockService(params StockServiceParams) usecase.StockUsecase {
	return &stockService{
		stockRepo: params.StockRepo,
		logger:    params.Logger,
	}
}

func (s *stockService) GetQty(ctx context.Context, warehouseID, productID int64) (int64, error) {
	qty, err := s.stockRepo.GetQty(ctx, warehouseID, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read stock quantity")
	}

	return qty, nil
}

func (s *stockService) SetQty(ctx context.Context, warehouseID, productID, qty int64) error {
	if qty < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("stock quantity must not be negative")
	}

	if err := s.stockRepo.SetQty(ctx, warehouseID, productID, qty); err != nil {
		return errors.Wrap(err, "failed to set stock quantity")
	}

	return nil
}

func (s *stockService) AdjustQty(ctx context.Context, warehouseID, productID, delta int64) error {
	if err := s.stockRepo.AdjustQty(ctx, warehouseID, productID, delta); err != nil {
		return errors.Wrap(err, "failed to adjust stock quantity")
	}

	return nil
}

func (s *stockService) TotalActiveQty(ctx context.Context, productID int64) (int64, error) {
	total, err := s.stockRepo.TotalActiveQty(ctx, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum active stock")
	}

	return total, nil
}

// ValidateDemand is the coarse availability check run when the cart
// changes: demand per product against stock summed across active
// warehouses. It cannot promise the allocator will succeed, only rule out
// carts that no combination of warehouses could cover.
func (s *stockService) ValidateDemand(ctx context.Context, demand entity.CartDemand) ([]usecase.Shortfall, error) {
	var shortfalls []usecase.Shortfall

	for _, productID := range sortedProductIDs(demand) {
		requested := demand[productID]

		available, err := s.stockRepo.TotalActiveQty(ctx, productID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sum active stock")
		}

		if available < requested {
			shortfalls = append(shortfalls, usecase.Shortfall{
				ProductID: productID,
				Requested: requested,
				Available: available,
			})
		}
	}

	return shortfalls, nil
}
