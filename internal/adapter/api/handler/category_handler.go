package handler

import (
	"magicwheel/internal/usecase"
	"magicwheel/pkg/response"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCategoryHandler(catalogUseCase *usecase.CatalogUseCase) *CategoryHandler {
	return &CategoryHandler{
		catalogUseCase: catalogUseCase,
	}
}

type categoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.CreateCategory(c.Request().Context(), usecase.CreateCategoryInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.UpdateCategory(c.Request().Context(), c.Param("id"), usecase.CreateCategoryInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

// SyncProducts runs the snapshot backfill for one category.
func (h *CategoryHandler) SyncProducts(c echo.Context) error {
	updated, err := h.catalogUseCase.SyncCategorySnapshots(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"updated": updated,
	})
}
