// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"depot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WarehouseHandler  *handler.WarehouseHandler
	StockHandler      *handler.StockHandler
	AllocationHandler *handler.AllocationHandler
	GeocodeHandler    *handler.GeocodeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	warehouseHandler  *handler.WarehouseHandler
	stockHandler      *handler.StockHandler
	allocationHandler *handler.AllocationHandler
	geocodeHandler    *handler.GeocodeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		warehouseHandler:  params.WarehouseHandler,
		stockHandler:      params.StockHandler,
		allocationHandler: params.AllocationHandler,
		geocodeHandler:    params.GeocodeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Warehouse directory
	warehouseGroup := e.Group("/warehouses")
	{
		warehouseGroup.GET("", r.warehouseHandler.ListWarehouses)
		warehouseGroup.POST("", r.warehouseHandler.CreateWarehouse)
		warehouseGroup.GET("/:id", r.warehouseHandler.GetWarehouse)
		warehouseGroup.PUT("/:id", r.warehouseHandler.UpdateWarehouse)
		warehouseGroup.DELETE("/:id", r.warehouseHandler.DeleteWarehouse)
	}

	// Per-warehouse stock
	stockGroup := e.Group("/stock")
	{
		stockGroup.GET("/:warehouseID/:productID", r.stockHandler.GetStock)
		stockGroup.PUT("/:warehouseID/:productID", r.stockHandler.SetStock)
		stockGroup.POST("/:warehouseID/:productID/adjust", r.stockHandler.AdjustStock)
		stockGroup.GET("/products/:productID/total", r.stockHandler.GetTotalActive)
		stockGroup.POST("/validate", r.stockHandler.ValidateDemand)
	}

	// Allocation planning and commit
	allocationGroup := e.Group("/allocation")
	{
		allocationGroup.POST("/quote", r.allocationHandler.Quote)
		allocationGroup.POST("/validate", r.allocationHandler.Validate)
		allocationGroup.POST("/commit", r.allocationHandler.Commit)
	}

	// Address resolution
	geocodeGroup := e.Group("/geocode")
	{
		geocodeGroup.POST("/resolve", r.geocodeHandler.Resolve)
		geocodeGroup.GET("/candidates", r.geocodeHandler.Candidates)
	}
}
