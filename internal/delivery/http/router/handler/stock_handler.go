package handler

import (
	"log/slog"
	"net/http"

	"depot/internal/delivery/http/response"
	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockUsecase
	Logger  *slog.Logger
}

// StockHandler holds dependencies for stock-related handlers
type StockHandler struct {
	stockUC usecase.StockUsecase
	logger  *slog.Logger
}

// NewStockHandler is the constructor for StockHandler
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC: params.StockUC,
		logger:  params.Logger,
	}
}

// SetStockRequest represents the request body for setting a stock level
type SetStockRequest struct {
	Qty int64 `json:"qty" validate:"min=0"`
}

// AdjustStockRequest represents the request body for adjusting a stock level
type AdjustStockRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

// CartLineRequest represents one cart line in a demand payload
type CartLineRequest struct {
	ProductID   int64 `json:"product_id" validate:"required,min=1"`
	VariationID int64 `json:"variation_id"`
	Quantity    int64 `json:"quantity" validate:"required,min=1"`
}

// ValidateDemandRequest represents the request body for a cart availability check
type ValidateDemandRequest struct {
	Lines []CartLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// ValidateDemandResponse reports the outcome of a cart availability check
type ValidateDemandResponse struct {
	Valid      bool                `json:"valid"`
	Shortfalls []usecase.Shortfall `json:"shortfalls,omitempty"`
}

// GetStock handles fetching the stock level for a warehouse and product
func (h *StockHandler) GetStock(c echo.Context) error {
	warehouseID, err := parseIDParam(c, "warehouseID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid warehouse ID")
	}
	productID, err := parseIDParam(c, "productID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	qty, err := h.stockUC.GetQty(c.Request().Context(), warehouseID, productID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"warehouse_id": warehouseID,
		"product_id":   productID,
		"qty":          qty,
	}, "")
}

// SetStock handles replacing the stock level for a warehouse and product
func (h *StockHandler) SetStock(c echo.Context) error {
	warehouseID, err := parseIDParam(c, "warehouseID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid warehouse ID")
	}
	productID, err := parseIDParam(c, "productID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req SetStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.stockUC.SetQty(c.Request().Context(), warehouseID, productID, req.Qty); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Stock updated")
}

// AdjustStock handles applying a delta to the stock level
func (h *StockHandler) AdjustStock(c echo.Context) error {
	warehouseID, err := parseIDParam(c, "warehouseID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid warehouse ID")
	}
	productID, err := parseIDParam(c, "productID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req AdjustStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.stockUC.AdjustQty(c.Request().Context(), warehouseID, productID, req.Delta); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Stock adjusted")
}

// GetTotalActive handles summing a product's stock across active warehouses
func (h *StockHandler) GetTotalActive(c echo.Context) error {
	productID, err := parseIDParam(c, "productID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	total, err := h.stockUC.TotalActiveQty(c.Request().Context(), productID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product_id": productID,
		"total_qty":  total,
	}, "")
}

// ValidateDemand handles the coarse cart availability check
func (h *StockHandler) ValidateDemand(c echo.Context) error {
	var req ValidateDemandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	demand := entity.BuildDemand(toCartLines(req.Lines))

	shortfalls, err := h.stockUC.ValidateDemand(c.Request().Context(), demand)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ValidateDemandResponse{
		Valid:      len(shortfalls) == 0,
		Shortfalls: shortfalls,
	}, "")
}

func (h *StockHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func toCartLines(reqLines []CartLineRequest) []entity.CartLine {
	lines := make([]entity.CartLine, 0, len(reqLines))
	for _, line := range reqLines {
		lines = append(lines, entity.CartLine{
			ProductID:   line.ProductID,
			VariationID: line.VariationID,
			Quantity:    line.Quantity,
		})
	}

	return lines
}
