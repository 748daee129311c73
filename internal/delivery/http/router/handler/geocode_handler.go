package handler

import (
	"log/slog"
	"net/http"

	"depot/internal/delivery/http/response"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodingUC usecase.GeocodingUsecase
	Logger      *slog.Logger
}

// GeocodeHandler holds dependencies for address resolution handlers
type GeocodeHandler struct {
	geocodingUC usecase.GeocodingUsecase
	logger      *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{
		geocodingUC: params.GeocodingUC,
		logger:      params.Logger,
	}
}

// ResolveRequest represents the request body for resolving an address
type ResolveRequest struct {
	Address string `json:"address" validate:"required"`
}

// ResolveResponse reports the outcome of an address resolution
type ResolveResponse struct {
	Found  bool                   `json:"found"`
	Result *usecase.GeocodeResult `json:"result,omitempty"`
}

// Resolve handles resolving a free-text address to coordinates
func (h *GeocodeHandler) Resolve(c echo.Context) error {
	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, found, err := h.geocodingUC.Geocode(c.Request().Context(), req.Address)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ResolveResponse{
		Found:  found,
		Result: result,
	}, "")
}

// Candidates handles previewing the candidate strings tried for an address
func (h *GeocodeHandler) Candidates(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "address query parameter is required")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"candidates": h.geocodingUC.Candidates(address),
	}, "")
}

func (h *GeocodeHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
