package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicwheel/internal/adapter/api"
	"magicwheel/internal/domain/entity"
	"magicwheel/internal/usecase"
	"magicwheel/pkg/errors"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type stubListingOrderRepo struct {
	orders map[string]*entity.ListingOrder
}

func (r *stubListingOrderRepo) CreateWithNotifications(ctx context.Context, order *entity.ListingOrder, notifications []*entity.Notification) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders[order.ID] = order
	return nil
}

func (r *stubListingOrderRepo) GetByID(ctx context.Context, id string) (*entity.ListingOrder, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *stubListingOrderRepo) ListByListing(ctx context.Context, listingID string) ([]*entity.ListingOrder, error) {
	return []*entity.ListingOrder{}, nil
}

func (r *stubListingOrderRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.ListingOrder, int64, error) {
	return []*entity.ListingOrder{}, 0, nil
}

func (r *stubListingOrderRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.ListingOrder, int64, error) {
	return []*entity.ListingOrder{}, 0, nil
}

func (r *stubListingOrderRepo) UpdateStatus(ctx context.Context, id string, mutate func(*entity.ListingOrder) error) (*entity.ListingOrder, error) {
	stored, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}

	order := *stored
	if err := mutate(&order); err != nil {
		return nil, err
	}

	order.Version++
	order.UpdatedAt = time.Now()
	r.orders[id] = &order
	return &order, nil
}

type nopPusher struct{}

func (nopPusher) SendEvent(userID string, eventType string, payload interface{}) {}

func newHandlerFixture() (*echo.Echo, *ListingOrderHandler, *stubListingOrderRepo) {
	orderRepo := &stubListingOrderRepo{orders: map[string]*entity.ListingOrder{}}
	userRepo := &stubUserRepo{users: map[string]*entity.User{
		"buyer-1":  {ID: "buyer-1", Email: "buyer@example.com", Username: "Asha"},
		"seller-1": {ID: "seller-1", Email: "seller@example.com", Username: "Bilal"},
	}}

	uc := usecase.NewListingOrderUseCase(orderRepo, userRepo, nopPusher{}, "pkr")

	e := echo.New()
	e.Validator = api.NewValidator()

	return e, NewListingOrderHandler(uc), orderRepo
}

func TestUpdateStatusMissingStatusField(t *testing.T) {
	e, h, _ := newHandlerFixture()

	req := httptest.NewRequest(http.MethodPatch, "/v1/listing-orders/order-1/status", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestUpdateStatusTerminalOrderEnvelope(t *testing.T) {
	e, h, orderRepo := newHandlerFixture()
	orderRepo.orders["order-1"] = &entity.ListingOrder{
		ID:       "order-1",
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Status:   entity.StatusDelivered,
		Terminal: true,
	}

	req := httptest.NewRequest(http.MethodPatch, "/v1/listing-orders/order-1/status", strings.NewReader(`{"status":"processing"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATE")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestUpdateStatusVersionConflictEnvelope(t *testing.T) {
	e, h, orderRepo := newHandlerFixture()
	orderRepo.orders["order-1"] = &entity.ListingOrder{
		ID:       "order-1",
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Status:   entity.StatusPending,
		Version:  4,
	}

	req := httptest.NewRequest(http.MethodPatch, "/v1/listing-orders/order-1/status",
		strings.NewReader(`{"status":"processing","expected_version":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFLICT")
}

func TestCreateOrderEnvelope(t *testing.T) {
	e, h, orderRepo := newHandlerFixture()

	body := `{
		"seller_id": "seller-1",
		"listing_id": "listing-1",
		"items": [{"product_id": "p1", "name": "Brass lamp", "unit_price": 800, "quantity": 2}],
		"shipping": {"name": "Asha", "address": "12 Mall Rd", "city": "Lahore", "postal_code": "54000"},
		"phone": "+92-300-1234567"
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/listing-orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "buyer-1")

	require.NoError(t, h.CreateOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	assert.Len(t, orderRepo.orders, 1)
}
