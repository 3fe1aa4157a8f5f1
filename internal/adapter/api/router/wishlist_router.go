package router

import (
	"magicwheel/internal/adapter/api/handler"
	"magicwheel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlist := e.Group("/v1/wishlist")
	wishlist.Use(authMiddleware.Authenticate)
	wishlist.GET("", wishlistHandler.GetWishlist)
	wishlist.POST("/:productId", wishlistHandler.AddToWishlist)
	wishlist.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
}
