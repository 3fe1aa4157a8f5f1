package handler

import (
	"magicwheel/internal/usecase"
	"magicwheel/pkg/response"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

func (h *PaymentHandler) GetPublishableKey(c echo.Context) error {
	return response.Success(c, map[string]string{
		"publishable_key": h.paymentUseCase.PublishableKey(),
	})
}

type paymentSheetRequest struct {
	// Amount in minor units of the configured currency.
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (h *PaymentHandler) CreatePaymentSheet(c echo.Context) error {
	var req paymentSheetRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	sheet, err := h.paymentUseCase.CreatePaymentSheet(c.Request().Context(), uid, req.Amount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sheet)
}
