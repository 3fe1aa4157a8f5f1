package router

import (
	"magicwheel/internal/adapter/api/handler"
	"magicwheel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.POST("", userHandler.Register)
	users.POST("/find", userHandler.FindByEmail)
	users.GET("/me", userHandler.Me)
	users.PUT("/me/shipping", userHandler.UpdateShipping)
}
