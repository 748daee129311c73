package impl

import (
	"context"
	"testing"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	mockRepo "depot/internal/mocks/repository"
	"depot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStockService(t *testing.T) (usecase.StockUsecase, *mockRepo.MockStockRepository) {
	t.Helper()

	stockRepo := mockRepo.NewMockStockRepository(t)
	service := NewStockService(StockServiceParams{
		StockRepo: stockRepo,
		Logger:    testLogger(),
	})

	return service, stockRepo
}

func TestStockService_GetQty(t *testing.T) {
	service, stockRepo := newStockService(t)
	ctx := context.Background()

	stockRepo.EXPECT().
		GetQty(ctx, int64(1), int64(100)).
		Return(int64(7), nil)

	qty, err := service.GetQty(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty)
}

func TestStockService_SetQty_RejectsNegative(t *testing.T) {
	service, _ := newStockService(t)

	err := service.SetQty(context.Background(), 1, 100, -1)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestStockService_SetQty(t *testing.T) {
	service, stockRepo := newStockService(t)
	ctx := context.Background()

	stockRepo.EXPECT().
		SetQty(ctx, int64(1), int64(100), int64(0)).
		Return(nil)

	require.NoError(t, service.SetQty(ctx, 1, 100, 0))
}

func TestStockService_AdjustQty_AllowsNegativeDelta(t *testing.T) {
	service, stockRepo := newStockService(t)
	ctx := context.Background()

	stockRepo.EXPECT().
		AdjustQty(ctx, int64(1), int64(100), int64(-2)).
		Return(nil)

	require.NoError(t, service.AdjustQty(ctx, 1, 100, -2))
}

func TestStockService_ValidateDemand_AllCovered(t *testing.T) {
	service, stockRepo := newStockService(t)
	ctx := context.Background()

	stockRepo.EXPECT().
		TotalActiveQty(ctx, int64(100)).
		Return(int64(10), nil)
	stockRepo.EXPECT().
		TotalActiveQty(ctx, int64(200)).
		Return(int64(3), nil)

	shortfalls, err := service.ValidateDemand(ctx, entity.CartDemand{100: 5, 200: 3})
	require.NoError(t, err)
	assert.Empty(t, shortfalls)
}

func TestStockService_ValidateDemand_ReportsShortfalls(t *testing.T) {
	service, stockRepo := newStockService(t)
	ctx := context.Background()

	stockRepo.EXPECT().
		TotalActiveQty(ctx, int64(100)).
		Return(int64(1), nil)
	stockRepo.EXPECT().
		TotalActiveQty(ctx, int64(200)).
		Return(int64(5), nil)

	shortfalls, err := service.ValidateDemand(ctx, entity.CartDemand{200: 2, 100: 4})
	require.NoError(t, err)

	require.Len(t, shortfalls, 1)
	assert.Equal(t, usecase.Shortfall{ProductID: 100, Requested: 4, Available: 1}, shortfalls[0])
}
