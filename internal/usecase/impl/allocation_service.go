package impl

import (
	"context"
	"log/slog"
	"slices"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/domain/service"
	"depot/internal/errors"
	"depot/internal/usecase"

	"go.uber.org/fx"
)

// AllocationServiceParams holds dependencies for the allocation service, injected by Fx.
type AllocationServiceParams struct {
	fx.In

	WarehouseRepo repository.WarehouseRepository
	StockRepo     repository.StockRepository
	TxManager     repository.TransactionManager
	Geocoder      usecase.GeocodingUsecase
	Publisher     service.EventPublisher
	Policy        *SurchargePolicy
	Logger        *slog.Logger
}

type allocationService struct {
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	txManager     repository.TransactionManager
	geocoder      usecase.GeocodingUsecase
	publisher     service.EventPublisher
	policy        *SurchargePolicy
	logger        *slog.Logger
}

// NewAllocationService creates a new allocation service instance
func NewAllocationService(params AllocationServiceParams) usecase.AllocationUsecase {
	return &allocationService{
		warehouseRepo: params.WarehouseRepo,
		stockRepo:     params.StockRepo,
		txManager:     params.TxManager,
		geocoder:      params.Geocoder,
		publisher:     params.Publisher,
		policy:        params.Policy,
		logger:        params.Logger,
	}
}

// Plan computes a snapshot-based allocation for the cart demand. It is not a
// reservation: quantities are read per product without decrementing, so two
// products may both count the same capacity within one pass.
func (s *allocationService) Plan(ctx context.Context, demand entity.CartDemand, customerAddress string) (*entity.AllocationPlan, error) {
	if len(demand) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cart demand is empty")
	}

	ranked, err := s.rankedForCustomer(ctx, customerAddress)
	if err != nil {
		return nil, err
	}

	var closestID int64
	if len(ranked) > 0 {
		closestID = ranked[0].Warehouse.ID
	}

	plan := &entity.AllocationPlan{
		Allocations: make(map[int64]entity.ItemAllocation, len(demand)),
		ClosestID:   closestID,
	}

	for _, productID := range sortedProductIDs(demand) {
		needed := demand[productID]

		picked := false
		for _, candidate := range ranked {
			warehouse := candidate.Warehouse
			available, err := s.stockRepo.GetQty(ctx, warehouse.ID, productID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to read stock quantity")
			}
			if available < needed {
				continue
			}

			plan.Allocations[productID] = entity.ItemAllocation{
				WarehouseID:   warehouse.ID,
				WarehouseName: warehouse.Name,
				Qty:           needed,
				WasClosest:    warehouse.ID == closestID,
			}
			if warehouse.ID != closestID {
				plan.NonClosestUsed = true
			}
			picked = true

			break
		}

		if !picked {
			return nil, domainerrors.ErrInsufficientStock
		}
	}

	return plan, nil
}

// Quote runs Plan and derives the surcharge fee and notice from the result.
func (s *allocationService) Quote(ctx context.Context, demand entity.CartDemand, customerAddress string) (*usecase.QuoteResult, error) {
	plan, err := s.Plan(ctx, demand, customerAddress)
	if err != nil {
		return nil, err
	}

	fee, applied := s.policy.Fee(plan.NonClosestUsed)

	return &usecase.QuoteResult{
		Plan:             plan,
		SurchargeAmount:  fee.String(),
		SurchargeApplied: applied,
		Notice:           s.policy.Notice(plan.NonClosestUsed),
	}, nil
}

// CheckFeasible runs the allocation pass and discards the plan. Only the
// typed error matters to pre-payment callers.
func (s *allocationService) CheckFeasible(ctx context.Context, demand entity.CartDemand, customerAddress string) error {
	_, err := s.Plan(ctx, demand, customerAddress)

	return err
}

// Commit applies the planned stock decrements, once per (order, product).
// Each line runs in its own transaction: the dedup row insert and the
// conditional decrement either both land or neither does, and a redelivered
// commit event finds the dedup row and skips the line.
func (s *allocationService) Commit(ctx context.Context, input *usecase.CommitInput) error {
	if input == nil || input.Plan == nil || len(input.Plan.Allocations) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("commit input is empty")
	}
	if input.OrderID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("order id is required")
	}

	productIDs := make([]int64, 0, len(input.Plan.Allocations))
	for productID := range input.Plan.Allocations {
		productIDs = append(productIDs, productID)
	}
	slices.Sort(productIDs)

	for _, productID := range productIDs {
		allocation := input.Plan.Allocations[productID]

		err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			stocks := repoFactory.NewStockRepository()

			if err := stocks.RecordCommit(ctx, input.OrderID, productID); err != nil {
				return err
			}

			return stocks.DecrementIfAvailable(ctx, allocation.WarehouseID, productID, allocation.Qty)
		})

		switch {
		case err == nil:
			s.publishCommitted(ctx, input.OrderID, productID, allocation)
		case errors.Is(err, repository.ErrAlreadyCommitted):
			s.logger.Info("allocation line already committed, skipping",
				slog.String("orderId", input.OrderID),
				slog.Int64("productId", productID),
			)
		case errors.Is(err, repository.ErrInsufficientStock):
			// Stock moved between planning and commit.
			return domainerrors.ErrCommitConflict
		default:
			return errors.Wrap(err, "failed to commit allocation line")
		}
	}

	return nil
}

// rankedForCustomer geocodes the customer address and ranks active
// warehouses by distance. A customer address that fails to geocode leaves
// the warehouses in their natural (by-name) order.
func (s *allocationService) rankedForCustomer(ctx context.Context, customerAddress string) ([]entity.RankedWarehouse, error) {
	warehouses, err := s.warehouseRepo.ListActiveWarehouses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active warehouses")
	}

	result, found, err := s.geocoder.Geocode(ctx, customerAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to geocode customer address")
	}
	if !found {
		return s.Rank(ctx, entity.GeoPoint{}, warehouses), nil
	}

	return s.Rank(ctx, result.Point, warehouses), nil
}

func (s *allocationService) publishCommitted(ctx context.Context, orderID string, productID int64, allocation entity.ItemAllocation) {
	event := &service.AllocationCommittedEvent{
		OrderID:       orderID,
		ProductID:     productID,
		WarehouseID:   allocation.WarehouseID,
		WarehouseName: allocation.WarehouseName,
		Qty:           allocation.Qty,
		WasClosest:    allocation.WasClosest,
	}

	// Best effort: the decrement already landed, a lost event must not fail
	// the commit.
	if err := s.publisher.PublishAllocationCommitted(ctx, event); err != nil {
		s.logger.Warn("failed to publish allocation committed event",
			slog.String("orderId", orderID),
			slog.Int64("productId", productID),
			slog.String("error", err.Error()),
		)
	}
}

func sortedProductIDs(demand entity.CartDemand) []int64 {
	ids := make([]int64, 0, len(demand))
	for id := range demand {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
