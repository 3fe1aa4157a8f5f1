package router

import (
	"magicwheel/internal/adapter/api/handler"
	"magicwheel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)
	payments.GET("/pubkey", paymentHandler.GetPublishableKey)
	payments.POST("/sheet", paymentHandler.CreatePaymentSheet)
}
