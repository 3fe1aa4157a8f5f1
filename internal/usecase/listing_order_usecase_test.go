package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicwheel/internal/domain/entity"
	"magicwheel/pkg/errors"
)

func newListingOrderFixture() (*ListingOrderUseCase, *fakeListingOrderRepo, *fakePusher) {
	orderRepo := newFakeListingOrderRepo()
	userRepo := newFakeUserRepo(
		&entity.User{ID: "buyer-1", Email: "buyer@example.com", Username: "Asha"},
		&entity.User{ID: "seller-1", Email: "seller@example.com", Username: "Bilal"},
	)
	pusher := &fakePusher{}
	uc := NewListingOrderUseCase(orderRepo, userRepo, pusher, "pkr")
	return uc, orderRepo, pusher
}

func placeOrder(t *testing.T, uc *ListingOrderUseCase) *entity.ListingOrder {
	t.Helper()
	order, err := uc.Create(context.Background(), "buyer-1", CreateListingOrderInput{
		SellerID:  "seller-1",
		ListingID: "listing-1",
		Items: []OrderItemInput{
			{ProductID: "p1", Name: "Hand-carved chess set", UnitPrice: 1500, Quantity: 2},
			{ProductID: "p2", Name: "Brass lamp", UnitPrice: 800, Quantity: 1},
		},
		Shipping: entity.ShippingAddress{Name: "Asha", Address: "12 Mall Rd", City: "Lahore", PostalCode: "54000"},
		Phone:    "+92-300-1234567",
	})
	require.NoError(t, err)
	return order
}

func TestCreateListingOrder(t *testing.T) {
	uc, orderRepo, pusher := newListingOrderFixture()

	order := placeOrder(t, uc)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.False(t, order.Terminal)
	assert.Equal(t, 3800.0, order.TotalAmount)
	assert.Equal(t, "pkr", order.Currency)

	// One notification for each side of the trade, both naming the order.
	require.Len(t, orderRepo.notifications, 2)
	assert.Equal(t, "buyer-1", orderRepo.notifications[0].UserID)
	assert.Equal(t, "seller-1", orderRepo.notifications[1].UserID)
	for _, n := range orderRepo.notifications {
		assert.Contains(t, n.Message, order.ID)
	}

	require.Len(t, pusher.events, 2)
	assert.Equal(t, "notification", pusher.events[0].Type)
}

func TestCreateListingOrderUnknownSeller(t *testing.T) {
	uc, orderRepo, _ := newListingOrderFixture()

	_, err := uc.Create(context.Background(), "buyer-1", CreateListingOrderInput{
		SellerID:  "ghost",
		ListingID: "listing-1",
		Items:     []OrderItemInput{{ProductID: "p1", Name: "Lamp", UnitPrice: 100, Quantity: 1}},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Empty(t, orderRepo.orders)
	assert.Empty(t, orderRepo.notifications)
}

func TestShipRequiresCourierDetails(t *testing.T) {
	uc, orderRepo, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	_, err := uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus: entity.StatusShipped,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// A rejected transition leaves the stored order untouched.
	stored := orderRepo.orders[order.ID]
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Equal(t, int64(0), stored.Version)
	assert.Nil(t, stored.ShippedAt)
}

func TestShipSetsCourierAndShippedAt(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	updated, err := uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus:   entity.StatusShipped,
		CourierName: "TCS",
		TrackingID:  "TRK-445",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusShipped, updated.Status)
	assert.Equal(t, "TCS", updated.CourierName)
	assert.Equal(t, "TRK-445", updated.TrackingID)
	require.NotNil(t, updated.ShippedAt)
	assert.Equal(t, int64(1), updated.Version)
	assert.False(t, updated.Terminal)
}

func TestDeliveredRequiresShippedFirst(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	_, err := uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus: entity.StatusDelivered,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestTerminalOrderRejectsAllChanges(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	_, err := uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus: entity.StatusCancelled,
	})
	require.NoError(t, err)

	_, err = uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus: entity.StatusProcessing,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestCancelClosesOrderWithoutShipment(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	updated, err := uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus: entity.StatusCancelled,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, updated.Status)
	assert.True(t, updated.Terminal)
	assert.Nil(t, updated.ShippedAt)
	assert.Empty(t, updated.CourierName)
}

func TestStaleVersionIsConflict(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	_, err := uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus: entity.StatusProcessing,
	})
	require.NoError(t, err)

	stale := int64(0)
	_, err = uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus:       entity.StatusShipped,
		CourierName:     "TCS",
		TrackingID:      "TRK-1",
		ExpectedVersion: &stale,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestMatchingVersionPasses(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	current := int64(0)
	updated, err := uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus:       entity.StatusProcessing,
		ExpectedVersion: &current,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)
}

func TestUnknownStatusRejected(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	_, err := uc.RequestStatusChange(context.Background(), order.ID, StatusChangeInput{
		NewStatus: entity.OrderStatus("returned"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListForListingReturnsPlacedOrder(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	orders, err := uc.ListForListing(context.Background(), "listing-1")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, entity.StatusPending, orders[0].Status)
}

func TestListForListingEmptyIsNotAnError(t *testing.T) {
	uc, _, _ := newListingOrderFixture()

	orders, err := uc.ListForListing(context.Background(), "listing-without-orders")

	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NotNil(t, orders)
}

func TestGetScopedToParticipants(t *testing.T) {
	uc, _, _ := newListingOrderFixture()
	order := placeOrder(t, uc)

	got, err := uc.Get(context.Background(), "buyer-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	got, err = uc.Get(context.Background(), "seller-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = uc.Get(context.Background(), "stranger", order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
