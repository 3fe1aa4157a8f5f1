package router

import (
	"magicwheel/internal/adapter/api/handler"
	"magicwheel/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()
	categoryHandler := handler.GetCategoryHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	productAdmin := e.Group("/v1/products")
	productAdmin.Use(authMiddleware.Authenticate)
	productAdmin.POST("", productHandler.CreateProduct)
	productAdmin.PUT("/:id", productHandler.UpdateProduct)
	productAdmin.DELETE("/:id", productHandler.DeleteProduct)

	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.ListCategories)

	categoryAdmin := e.Group("/v1/categories")
	categoryAdmin.Use(authMiddleware.Authenticate)
	categoryAdmin.POST("", categoryHandler.CreateCategory)
	categoryAdmin.PUT("/:id", categoryHandler.UpdateCategory)

	admin := e.Group("/v1/admin/categories")
	admin.Use(authMiddleware.Authenticate)
	admin.POST("/:id/sync-products", categoryHandler.SyncProducts)

	home := e.Group("/v1/home")
	home.Use(authMiddleware.Authenticate)
	home.GET("", productHandler.Home)
}
