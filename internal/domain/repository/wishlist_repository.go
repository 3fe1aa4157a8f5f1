package repository

import (
	"context"

	"magicwheel/internal/domain/entity"
)

type WishlistRepository interface {
	// Add is idempotent: adding a product already in the wishlist is a no-op.
	Add(ctx context.Context, item *entity.WishlistItem) error
	Remove(ctx context.Context, userID, productID string) error
	Exists(ctx context.Context, userID, productID string) (bool, error)
	ListProductIDs(ctx context.Context, userID string) ([]string, error)
}
