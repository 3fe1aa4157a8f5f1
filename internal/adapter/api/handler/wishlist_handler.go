package handler

import (
	"magicwheel/internal/usecase"
	"magicwheel/pkg/errors"
	"magicwheel/pkg/response"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")

	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	products, err := h.wishlistUseCase.Add(c.Request().Context(), uid, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("productId")

	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	products, err := h.wishlistUseCase.Remove(c.Request().Context(), uid, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)

	products, err := h.wishlistUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}
