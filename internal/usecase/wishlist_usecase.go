package usecase

import (
	"context"
	"fmt"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	"magicwheel/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo  repository.WishlistRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	notifications *NotificationUseCase
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notifications *NotificationUseCase,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo:  wishlistRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Add puts a product on the user's wishlist and returns the full hydrated
// list. Adding a product that is already wishlisted is a no-op that still
// returns the current list.
func (u *WishlistUseCase) Add(ctx context.Context, userID, productID string) ([]*entity.Product, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	already, err := u.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if !already {
		item := &entity.WishlistItem{UserID: userID, ProductID: productID}
		if err := u.wishlistRepo.Add(ctx, item); err != nil {
			return nil, err
		}

		if _, err := u.notifications.Append(ctx, userID,
			fmt.Sprintf("%s was added to your wishlist", product.Name),
			"wishlist", "heart", "#e91e63"); err != nil {
			logger.Warn("Failed to append wishlist notification for %s: %v", userID, err)
		}
	}

	return u.List(ctx, userID)
}

// Remove takes a product off the wishlist and returns the remaining hydrated
// list. Removing something that was never added is NotFound.
func (u *WishlistUseCase) Remove(ctx context.Context, userID, productID string) ([]*entity.Product, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := u.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}

	message := "An item was removed from your wishlist"
	if product, err := u.productRepo.GetByID(ctx, productID); err == nil {
		message = fmt.Sprintf("%s was removed from your wishlist", product.Name)
	}

	if _, err := u.notifications.Append(ctx, userID, message,
		"wishlist", "heart-broken", "#9e9e9e"); err != nil {
		logger.Warn("Failed to append wishlist notification for %s: %v", userID, err)
	}

	return u.List(ctx, userID)
}

// List re-hydrates every wishlisted product from the catalog. Ids that no
// longer resolve are dropped silently.
func (u *WishlistUseCase) List(ctx context.Context, userID string) ([]*entity.Product, error) {
	ids, err := u.wishlistRepo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	return u.productRepo.GetByIDs(ctx, ids)
}
