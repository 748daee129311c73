package impl

import (
	"context"
	"testing"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	mockRepo "depot/internal/mocks/repository"
	mockUC "depot/internal/mocks/usecase"
	"depot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWarehouseService(t *testing.T) (usecase.WarehouseUsecase, *mockRepo.MockWarehouseRepository, *mockUC.MockGeocodingUsecase) {
	t.Helper()

	warehouseRepo := mockRepo.NewMockWarehouseRepository(t)
	geocoder := mockUC.NewMockGeocodingUsecase(t)

	service := NewWarehouseService(WarehouseServiceParams{
		WarehouseRepo: warehouseRepo,
		Geocoder:      geocoder,
		Logger:        testLogger(),
	})

	return service, warehouseRepo, geocoder
}

func TestWarehouseService_CreateWarehouse_GeocodesAddress(t *testing.T) {
	service, warehouseRepo, geocoder := newWarehouseService(t)
	ctx := context.Background()

	geocoder.EXPECT().
		Geocode(ctx, "Cebu City, Philippines").
		Return(&usecase.GeocodeResult{Point: cebu, Provider: "google"}, true, nil)
	warehouseRepo.EXPECT().
		CreateWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		RunAndReturn(func(_ context.Context, warehouse *entity.Warehouse) error {
			warehouse.ID = 9

			return nil
		})

	warehouse, err := service.CreateWarehouse(ctx, &usecase.SaveWarehouseInput{
		Name:     "  Cebu Hub  ",
		Address:  "Cebu City, Philippines",
		IsActive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), warehouse.ID)
	assert.Equal(t, "Cebu Hub", warehouse.Name)
	assert.Equal(t, cebu.Lat, warehouse.Lat)
	assert.Equal(t, cebu.Lng, warehouse.Lng)
	assert.True(t, warehouse.HasValidCoordinates())
}

func TestWarehouseService_CreateWarehouse_EmptyAddressSkipsGeocoding(t *testing.T) {
	service, warehouseRepo, _ := newWarehouseService(t)
	ctx := context.Background()

	warehouseRepo.EXPECT().
		CreateWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		Return(nil)

	warehouse, err := service.CreateWarehouse(ctx, &usecase.SaveWarehouseInput{
		Name:     "Ghost Hub",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.False(t, warehouse.HasValidCoordinates())
}

func TestWarehouseService_CreateWarehouse_FailedGeocodeStoresWithoutCoordinates(t *testing.T) {
	service, warehouseRepo, geocoder := newWarehouseService(t)
	ctx := context.Background()

	geocoder.EXPECT().
		Geocode(ctx, "nowhere").
		Return(nil, false, nil)
	warehouseRepo.EXPECT().
		CreateWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		Return(nil)

	warehouse, err := service.CreateWarehouse(ctx, &usecase.SaveWarehouseInput{
		Name:    "Cebu Hub",
		Address: "nowhere",
	})
	require.NoError(t, err)
	assert.False(t, warehouse.HasValidCoordinates())
}

func TestWarehouseService_CreateWarehouse_EmptyName(t *testing.T) {
	service, _, _ := newWarehouseService(t)

	_, err := service.CreateWarehouse(context.Background(), &usecase.SaveWarehouseInput{Name: "   "})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestWarehouseService_CreateWarehouse_NameConflict(t *testing.T) {
	service, warehouseRepo, _ := newWarehouseService(t)
	ctx := context.Background()

	warehouseRepo.EXPECT().
		CreateWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		Return(repository.ErrWarehouseNameConflict)

	_, err := service.CreateWarehouse(ctx, &usecase.SaveWarehouseInput{Name: "Cebu Hub"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAREHOUSE_NAME_CONFLICT", appErr.ErrorCode())
}

func TestWarehouseService_UpdateWarehouse_RegeocodesAddress(t *testing.T) {
	service, warehouseRepo, geocoder := newWarehouseService(t)
	ctx := context.Background()

	existing := &entity.Warehouse{
		ID: 3, Name: "Cebu Hub", Address: "Cebu City, Philippines",
		Lat: cebu.Lat, Lng: cebu.Lng, IsActive: true,
	}
	warehouseRepo.EXPECT().
		FindWarehouseByID(ctx, int64(3)).
		Return(existing, nil)
	geocoder.EXPECT().
		Geocode(ctx, "Manila, Philippines").
		Return(&usecase.GeocodeResult{Point: manila, Provider: "google"}, true, nil)
	warehouseRepo.EXPECT().
		UpdateWarehouse(ctx, mock.AnythingOfType("*entity.Warehouse")).
		Return(nil)

	warehouse, err := service.UpdateWarehouse(ctx, 3, &usecase.SaveWarehouseInput{
		Name:     "Manila Hub",
		Address:  "Manila, Philippines",
		IsActive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Manila Hub", warehouse.Name)
	assert.Equal(t, manila.Lat, warehouse.Lat)
	assert.Equal(t, manila.Lng, warehouse.Lng)
}

func TestWarehouseService_UpdateWarehouse_NotFound(t *testing.T) {
	service, warehouseRepo, _ := newWarehouseService(t)
	ctx := context.Background()

	warehouseRepo.EXPECT().
		FindWarehouseByID(ctx, int64(404)).
		Return(nil, repository.ErrWarehouseNotFound)

	_, err := service.UpdateWarehouse(ctx, 404, &usecase.SaveWarehouseInput{Name: "X"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAREHOUSE_NOT_FOUND", appErr.ErrorCode())
}

func TestWarehouseService_GetWarehouse_NotFound(t *testing.T) {
	service, warehouseRepo, _ := newWarehouseService(t)
	ctx := context.Background()

	warehouseRepo.EXPECT().
		FindWarehouseByID(ctx, int64(404)).
		Return(nil, repository.ErrWarehouseNotFound)

	_, err := service.GetWarehouse(ctx, 404)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAREHOUSE_NOT_FOUND", appErr.ErrorCode())
}

func TestWarehouseService_DeleteWarehouse(t *testing.T) {
	service, warehouseRepo, _ := newWarehouseService(t)
	ctx := context.Background()

	warehouseRepo.EXPECT().
		DeleteWarehouse(ctx, int64(3)).
		Return(nil)

	require.NoError(t, service.DeleteWarehouse(ctx, 3))
}
