package router

import (
	"magicwheel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupUserRouter(e, authMiddleware)
	SetupCatalogRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
