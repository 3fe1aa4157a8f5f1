package handler

import (
	"magicwheel/internal/usecase"
	"magicwheel/pkg/response"
	"magicwheel/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
	}
}

type createProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Image        string  `json:"image"`
	CountInStock int     `json:"count_in_stock" validate:"min=0"`
	CategoryID   string  `json:"category_id" validate:"required"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		CountInStock: req.CountInStock,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	categoryID := c.QueryParam("category")

	products, total, err := h.catalogUseCase.ListProducts(
		c.Request().Context(),
		categoryID,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		CountInStock: req.CountInStock,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}

func (h *ProductHandler) Home(c echo.Context) error {
	uid := c.Get("uid").(string)

	bundle, err := h.catalogUseCase.Home(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bundle)
}
