package router

import (
	"magicwheel/internal/adapter/api/handler"
	"magicwheel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()
	listingOrderHandler := handler.GetListingOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)

	listingOrders := e.Group("/v1/listing-orders")
	listingOrders.Use(authMiddleware.Authenticate)
	listingOrders.POST("", listingOrderHandler.CreateOrder)
	listingOrders.GET("", listingOrderHandler.ListMyOrders)
	listingOrders.GET("/selling", listingOrderHandler.ListMySales)
	listingOrders.GET("/listing/:listingId", listingOrderHandler.ListForListing)
	listingOrders.GET("/:id", listingOrderHandler.GetOrder)
	listingOrders.PATCH("/:id/status", listingOrderHandler.UpdateStatus)
}
