package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"depot/internal/delivery/http/response"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WarehouseHandlerParams holds dependencies for WarehouseHandler, injected by Fx.
type WarehouseHandlerParams struct {
	fx.In

	WarehouseUC usecase.WarehouseUsecase
	Logger      *slog.Logger
}

// WarehouseHandler holds dependencies for warehouse directory handlers
type WarehouseHandler struct {
	warehouseUC usecase.WarehouseUsecase
	logger      *slog.Logger
}

// NewWarehouseHandler is the constructor for WarehouseHandler
func NewWarehouseHandler(params WarehouseHandlerParams) *WarehouseHandler {
	return &WarehouseHandler{
		warehouseUC: params.WarehouseUC,
		logger:      params.Logger,
	}
}

// SaveWarehouseRequest represents the request body for creating or updating a warehouse
type SaveWarehouseRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active"`
}

// ListWarehouses handles listing all warehouses. With ?active=true only
// active warehouses are returned.
func (h *WarehouseHandler) ListWarehouses(c echo.Context) error {
	var (
		warehouses any
		err        error
	)
	if c.QueryParam("active") == "true" {
		warehouses, err = h.warehouseUC.ListActiveWarehouses(c.Request().Context())
	} else {
		warehouses, err = h.warehouseUC.ListWarehouses(c.Request().Context())
	}
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, warehouses, "")
}

// GetWarehouse handles fetching a single warehouse by ID
func (h *WarehouseHandler) GetWarehouse(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid warehouse ID")
	}

	warehouse, err := h.warehouseUC.GetWarehouse(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, warehouse, "")
}

// CreateWarehouse handles creating a new warehouse
func (h *WarehouseHandler) CreateWarehouse(c echo.Context) error {
	var req SaveWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid warehouse input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	warehouse, err := h.warehouseUC.CreateWarehouse(c.Request().Context(), &usecase.SaveWarehouseInput{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, warehouse, "Warehouse created")
}

// UpdateWarehouse handles updating an existing warehouse
func (h *WarehouseHandler) UpdateWarehouse(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid warehouse ID")
	}

	var req SaveWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid warehouse input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	warehouse, err := h.warehouseUC.UpdateWarehouse(c.Request().Context(), id, &usecase.SaveWarehouseInput{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, warehouse, "Warehouse updated")
}

// DeleteWarehouse handles removing a warehouse
func (h *WarehouseHandler) DeleteWarehouse(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid warehouse ID")
	}

	if err := h.warehouseUC.DeleteWarehouse(c.Request().Context(), id); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Warehouse deleted")
}

func (h *WarehouseHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid %s parameter", name)
	}

	return id, nil
}
