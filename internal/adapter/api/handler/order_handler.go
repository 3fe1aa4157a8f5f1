package handler

import (
	"magicwheel/internal/domain/entity"
	"magicwheel/internal/usecase"
	"magicwheel/pkg/response"
	"magicwheel/pkg/utils"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

type shippingAddressRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items" validate:"required,min=1,dive"`
	Shipping        shippingAddressRequest `json:"shipping" validate:"required"`
	Phone           string                 `json:"phone" validate:"required"`
	PaymentIntentID string                 `json:"payment_intent_id"`
	CustomerID      string                 `json:"customer_id"`
	PaymentMethod   string                 `json:"payment_method"`
	PaymentStatus   string                 `json:"payment_status"`
}

func orderItemInputs(items []orderItemRequest) []usecase.OrderItemInput {
	inputs := make([]usecase.OrderItemInput, len(items))
	for i, item := range items {
		inputs[i] = usecase.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return inputs
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Create(c.Request().Context(), uid, usecase.CreateOrderInput{
		Items: orderItemInputs(req.Items),
		Shipping: entity.ShippingAddress{
			Name:       req.Shipping.Name,
			Address:    req.Shipping.Address,
			City:       req.Shipping.City,
			PostalCode: req.Shipping.PostalCode,
		},
		Phone: req.Phone,
		Payment: entity.PaymentDetails{
			PaymentIntentID: req.PaymentIntentID,
			CustomerID:      req.CustomerID,
			Method:          req.PaymentMethod,
			Status:          req.PaymentStatus,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListForBuyer(
		c.Request().Context(),
		uid,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Get(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type statusChangeRequest struct {
	Status          string `json:"status" validate:"required"`
	CourierName     string `json:"courier_name"`
	TrackingID      string `json:"tracking_id"`
	ExpectedVersion *int64 `json:"expected_version"`
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req statusChangeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.RequestStatusChange(
		c.Request().Context(),
		c.Param("id"),
		entity.OrderStatus(req.Status),
		req.ExpectedVersion,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
