package handler

import (
	"magicwheel/internal/domain/entity"
	"magicwheel/internal/usecase"
	"magicwheel/pkg/response"
	"magicwheel/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ListingOrderHandler struct {
	listingOrderUseCase *usecase.ListingOrderUseCase
}

func NewListingOrderHandler(listingOrderUseCase *usecase.ListingOrderUseCase) *ListingOrderHandler {
	return &ListingOrderHandler{
		listingOrderUseCase: listingOrderUseCase,
	}
}

type createListingOrderRequest struct {
	SellerID        string                 `json:"seller_id" validate:"required"`
	ListingID       string                 `json:"listing_id" validate:"required"`
	Items           []orderItemRequest     `json:"items" validate:"required,min=1,dive"`
	Shipping        shippingAddressRequest `json:"shipping" validate:"required"`
	Phone           string                 `json:"phone" validate:"required"`
	PaymentIntentID string                 `json:"payment_intent_id"`
	CustomerID      string                 `json:"customer_id"`
	PaymentMethod   string                 `json:"payment_method"`
	PaymentStatus   string                 `json:"payment_status"`
}

func (h *ListingOrderHandler) CreateOrder(c echo.Context) error {
	var req createListingOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	order, err := h.listingOrderUseCase.Create(c.Request().Context(), uid, usecase.CreateListingOrderInput{
		SellerID:  req.SellerID,
		ListingID: req.ListingID,
		Items:     orderItemInputs(req.Items),
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

func (h *ListingOrderHandler) ListForListing(c echo.Context) error {
	orders, err := h.listingOrderUseCase.ListForListing(c.Request().Context(), c.Param("listingId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *ListingOrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.listingOrderUseCase.ListForBuyer(
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

func (h *ListingOrderHandler) ListMySales(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.listingOrderUseCase.ListForSeller(
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

func (h *ListingOrderHandler) GetOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.listingOrderUseCase.Get(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *ListingOrderHandler) UpdateStatus(c echo.Context) error {
	var req statusChangeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.listingOrderUseCase.RequestStatusChange(
		c.Request().Context(),
		c.Param("id"),
		usecase.StatusChangeInput{
			NewStatus:       entity.OrderStatus(req.Status),
			CourierName:     req.CourierName,
			TrackingID:      req.TrackingID,
			ExpectedVersion: req.ExpectedVersion,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
