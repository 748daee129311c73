package impl

import (
	"context"
	"testing"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	domainservice "depot/internal/domain/service"
	mockRepo "depot/internal/mocks/repository"
	"depot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const customerAddress = "123 Main St, Cebu City, Philippines"

// activeWarehouses returns a far warehouse (Manila) and a near one (Cebu)
// for a customer located in Cebu.
func activeWarehouses() []*entity.Warehouse {
	return []*entity.Warehouse{
		{ID: 1, Name: "Cebu Hub", IsActive: true, Lat: cebu.Lat, Lng: cebu.Lng},
		{ID: 2, Name: "Manila Hub", IsActive: true, Lat: manila.Lat, Lng: manila.Lng},
	}
}

func expectCustomerInCebu(mocks *allocationMocks, ctx context.Context) {
	mocks.warehouseRepo.EXPECT().
		ListActiveWarehouses(ctx).
		Return(activeWarehouses(), nil)
	mocks.geocoder.EXPECT().
		Geocode(ctx, customerAddress).
		Return(&usecase.GeocodeResult{Point: cebu, Provider: "google"}, true, nil)
}

func TestAllocationService_Plan_AllocatesClosest(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	expectCustomerInCebu(mocks, ctx)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(5), nil)

	plan, err := service.Plan(ctx, entity.CartDemand{100: 3}, customerAddress)
	require.NoError(t, err)

	require.Contains(t, plan.Allocations, int64(100))
	allocation := plan.Allocations[100]
	assert.Equal(t, int64(1), allocation.WarehouseID)
	assert.Equal(t, "Cebu Hub", allocation.WarehouseName)
	assert.Equal(t, int64(3), allocation.Qty)
	assert.True(t, allocation.WasClosest)
	assert.False(t, plan.NonClosestUsed)
	assert.Equal(t, int64(1), plan.ClosestID)
}

func TestAllocationService_Plan_FallsBackToFartherWarehouse(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	expectCustomerInCebu(mocks, ctx)
	// Closest has 2 units, demand is 3: the whole line moves to Manila.
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(2), nil)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(2), int64(100)).
		Return(int64(5), nil)

	plan, err := service.Plan(ctx, entity.CartDemand{100: 3}, customerAddress)
	require.NoError(t, err)

	allocation := plan.Allocations[100]
	assert.Equal(t, int64(2), allocation.WarehouseID)
	assert.Equal(t, int64(3), allocation.Qty)
	assert.False(t, allocation.WasClosest)
	assert.True(t, plan.NonClosestUsed)
	assert.Equal(t, int64(1), plan.ClosestID)
}

func TestAllocationService_Plan_InsufficientEverywhere(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	expectCustomerInCebu(mocks, ctx)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(2), nil)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(2), int64(100)).
		Return(int64(1), nil)

	plan, err := service.Plan(ctx, entity.CartDemand{100: 3}, customerAddress)
	require.Error(t, err)
	assert.Nil(t, plan)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestAllocationService_Plan_UnresolvedAddressUsesDirectoryOrder(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	mocks.warehouseRepo.EXPECT().
		ListActiveWarehouses(ctx).
		Return(activeWarehouses(), nil)
	mocks.geocoder.EXPECT().
		Geocode(ctx, "gibberish").
		Return(nil, false, nil)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(5), nil)

	plan, err := service.Plan(ctx, entity.CartDemand{100: 1}, "gibberish")
	require.NoError(t, err)

	allocation := plan.Allocations[100]
	assert.Equal(t, int64(1), allocation.WarehouseID)
	assert.True(t, allocation.WasClosest)
	assert.False(t, plan.NonClosestUsed)
}

func TestAllocationService_Plan_EmptyDemand(t *testing.T) {
	service, _ := newAllocationService(t, "")

	plan, err := service.Plan(context.Background(), entity.CartDemand{}, customerAddress)
	require.Error(t, err)
	assert.Nil(t, plan)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAllocationService_CheckFeasible_Covered(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	expectCustomerInCebu(mocks, ctx)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(5), nil)

	require.NoError(t, service.CheckFeasible(ctx, entity.CartDemand{100: 3}, customerAddress))
}

func TestAllocationService_CheckFeasible_Shortfall(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	expectCustomerInCebu(mocks, ctx)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(1), nil)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(2), int64(100)).
		Return(int64(1), nil)

	err := service.CheckFeasible(ctx, entity.CartDemand{100: 3}, customerAddress)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestAllocationService_Quote_AppliesSurcharge(t *testing.T) {
	service, mocks := newAllocationService(t, "150.00")
	ctx := context.Background()

	expectCustomerInCebu(mocks, ctx)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(0), nil)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(2), int64(100)).
		Return(int64(4), nil)

	quote, err := service.Quote(ctx, entity.CartDemand{100: 2}, customerAddress)
	require.NoError(t, err)

	assert.True(t, quote.SurchargeApplied)
	assert.Equal(t, "150", quote.SurchargeAmount)
	assert.NotEmpty(t, quote.Notice)
	assert.True(t, quote.Plan.NonClosestUsed)
}

func TestAllocationService_Quote_NoSurchargeWhenClosest(t *testing.T) {
	service, mocks := newAllocationService(t, "150.00")
	ctx := context.Background()

	expectCustomerInCebu(mocks, ctx)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(4), nil)

	quote, err := service.Quote(ctx, entity.CartDemand{100: 2}, customerAddress)
	require.NoError(t, err)

	assert.False(t, quote.SurchargeApplied)
	assert.Equal(t, "0", quote.SurchargeAmount)
	assert.Empty(t, quote.Notice)
}

func TestAllocationService_Quote_ZeroAmountNeverApplies(t *testing.T) {
	service, mocks := newAllocationService(t, "0")
	ctx := context.Background()

	expectCustomerInCebu(mocks, ctx)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(0), nil)
	mocks.stockRepo.EXPECT().
		GetQty(ctx, int64(2), int64(100)).
		Return(int64(4), nil)

	quote, err := service.Quote(ctx, entity.CartDemand{100: 2}, customerAddress)
	require.NoError(t, err)

	assert.True(t, quote.Plan.NonClosestUsed)
	assert.False(t, quote.SurchargeApplied)
	assert.Equal(t, "0", quote.SurchargeAmount)
	assert.Empty(t, quote.Notice)
}

func commitPlan() *entity.AllocationPlan {
	return &entity.AllocationPlan{
		Allocations: map[int64]entity.ItemAllocation{
			100: {WarehouseID: 1, WarehouseName: "Cebu Hub", Qty: 3, WasClosest: true},
		},
		ClosestID: 1,
	}
}

// expectCommitLine routes txManager.Execute through a factory bound to a
// stock repository mock scripted with the given outcomes for the single
// plan line (order-42, product 100, warehouse 1, qty 3).
func expectCommitLine(t *testing.T, mocks *allocationMocks, ctx context.Context, recordErr, decrementErr error) {
	t.Helper()

	stocks := mockRepo.NewMockStockRepository(t)
	stocks.EXPECT().
		RecordCommit(ctx, "order-42", int64(100)).
		Return(recordErr)
	if recordErr == nil {
		stocks.EXPECT().
			DecrementIfAvailable(ctx, int64(1), int64(100), int64(3)).
			Return(decrementErr)
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewStockRepository().Return(stocks)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAllocationService_Commit_DecrementsAndPublishes(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	expectCommitLine(t, mocks, ctx, nil, nil)

	mocks.publisher.EXPECT().
		PublishAllocationCommitted(ctx, mock.AnythingOfType("*service.AllocationCommittedEvent")).
		RunAndReturn(func(_ context.Context, event *domainservice.AllocationCommittedEvent) error {
			assert.Equal(t, "order-42", event.OrderID)
			assert.Equal(t, int64(100), event.ProductID)
			assert.Equal(t, int64(1), event.WarehouseID)
			assert.Equal(t, int64(3), event.Qty)
			assert.True(t, event.WasClosest)

			return nil
		})

	err := service.Commit(ctx, &usecase.CommitInput{OrderID: "order-42", Plan: commitPlan()})
	require.NoError(t, err)
}

func TestAllocationService_Commit_SkipsAlreadyCommittedLine(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	expectCommitLine(t, mocks, ctx, repository.ErrAlreadyCommitted, nil)

	// No publish: the line was already applied by an earlier delivery.
	err := service.Commit(ctx, &usecase.CommitInput{OrderID: "order-42", Plan: commitPlan()})
	require.NoError(t, err)
}

func TestAllocationService_Commit_ConflictOnStaleStock(t *testing.T) {
	service, mocks := newAllocationService(t, "")
	ctx := context.Background()

	expectCommitLine(t, mocks, ctx, nil, repository.ErrInsufficientStock)

	err := service.Commit(ctx, &usecase.CommitInput{OrderID: "order-42", Plan: commitPlan()})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "COMMIT_CONFLICT", appErr.ErrorCode())
}

func TestAllocationService_Commit_RejectsEmptyInput(t *testing.T) {
	service, _ := newAllocationService(t, "")
	ctx := context.Background()

	err := service.Commit(ctx, nil)
	require.Error(t, err)

	err = service.Commit(ctx, &usecase.CommitInput{OrderID: "", Plan: commitPlan()})
	require.Error(t, err)

	err = service.Commit(ctx, &usecase.CommitInput{OrderID: "order-42", Plan: &entity.AllocationPlan{}})
	require.Error(t, err)
}
