package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicwheel/internal/domain/entity"
	"magicwheel/pkg/errors"
)

func newWishlistFixture(t *testing.T) (*WishlistUseCase, *fakeNotificationRepo, *entity.Product) {
	t.Helper()

	userRepo := newFakeUserRepo(&entity.User{ID: "u1", Email: "u1@example.com", Username: "Asha"})
	productRepo := newFakeProductRepo()
	notificationRepo := &fakeNotificationRepo{}
	wishlistRepo := newFakeWishlistRepo()

	product := &entity.Product{Name: "Brass lamp", Price: 800}
	require.NoError(t, productRepo.Create(context.Background(), product))

	notifications := NewNotificationUseCase(notificationRepo, userRepo, &fakePusher{})
	uc := NewWishlistUseCase(wishlistRepo, productRepo, userRepo, notifications)
	return uc, notificationRepo, product
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	uc, notificationRepo, product := newWishlistFixture(t)
	ctx := context.Background()

	first, err := uc.Add(ctx, "u1", product.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := uc.Add(ctx, "u1", product.ID)
	require.NoError(t, err)
	assert.Len(t, second, 1)

	// The duplicate add is silent: no second notification either.
	assert.Len(t, notificationRepo.notifications, 1)
	assert.Contains(t, notificationRepo.notifications[0].Message, "Brass lamp")
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	uc, _, _ := newWishlistFixture(t)

	_, err := uc.Add(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestWishlistRemoveMissingIsNotFound(t *testing.T) {
	uc, _, product := newWishlistFixture(t)

	_, err := uc.Remove(context.Background(), "u1", product.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestWishlistAddThenRemoveRoundTrip(t *testing.T) {
	uc, notificationRepo, product := newWishlistFixture(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, "u1", product.ID)
	require.NoError(t, err)

	remaining, err := uc.Remove(ctx, "u1", product.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Add and remove each leave a notification behind.
	assert.Len(t, notificationRepo.notifications, 2)
}

func TestWishlistListEmpty(t *testing.T) {
	uc, _, _ := newWishlistFixture(t)

	list, err := uc.List(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
