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

// AllocationHandlerParams holds dependencies for AllocationHandler, injected by Fx.
type AllocationHandlerParams struct {
	fx.In

	AllocationUC usecase.AllocationUsecase
	Logger       *slog.Logger
}

// AllocationHandler holds dependencies for allocation-related handlers
type AllocationHandler struct {
	allocationUC usecase.AllocationUsecase
	logger       *slog.Logger
}

// NewAllocationHandler is the constructor for AllocationHandler
func NewAllocationHandler(params AllocationHandlerParams) *AllocationHandler {
	return &AllocationHandler{
		allocationUC: params.AllocationUC,
		logger:       params.Logger,
	}
}

// QuoteRequest represents the request body for an allocation quote
type QuoteRequest struct {
	Address string            `json:"address"`
	Lines   []CartLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// CommitRequest represents the request body for committing a planned allocation
type CommitRequest struct {
	OrderID string                 `json:"order_id" validate:"required"`
	Plan    *entity.AllocationPlan `json:"plan" validate:"required"`
}

// Quote handles planning an allocation and deriving its surcharge
func (h *AllocationHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	demand := entity.BuildDemand(toCartLines(req.Lines))
	if len(demand) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "Cart has no allocatable lines")
	}

	quote, err := h.allocationUC.Quote(c.Request().Context(), demand, req.Address)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// Validate handles the pre-payment feasibility pass over the same
// allocation computation a later quote will run
func (h *AllocationHandler) Validate(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid validation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	demand := entity.BuildDemand(toCartLines(req.Lines))
	if len(demand) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "Cart has no allocatable lines")
	}

	if err := h.allocationUC.CheckFeasible(c.Request().Context(), demand, req.Address); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Demand can be fulfilled")
}

// Commit handles decrementing stock for a planned order
func (h *AllocationHandler) Commit(c echo.Context) error {
	var req CommitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid commit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.allocationUC.Commit(c.Request().Context(), &usecase.CommitInput{
		OrderID: req.OrderID,
		Plan:    req.Plan,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Allocation committed")
}

func (h *AllocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
