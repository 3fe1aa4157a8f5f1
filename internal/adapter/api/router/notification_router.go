package router

import (
	"magicwheel/internal/adapter/api/handler"
	"magicwheel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
}
