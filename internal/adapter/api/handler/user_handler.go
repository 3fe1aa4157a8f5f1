package handler

import (
	"magicwheel/internal/domain/entity"
	"magicwheel/internal/usecase"
	"magicwheel/pkg/response"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Phone    string `json:"phone"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.Register(c.Request().Context(), uid, usecase.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

type findUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *UserHandler) FindByEmail(c echo.Context) error {
	var req findUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.FindByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.Get(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type shippingRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

func (h *UserHandler) UpdateShipping(c echo.Context) error {
	var req shippingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateShipping(c.Request().Context(), uid, entity.ShippingAddress{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
