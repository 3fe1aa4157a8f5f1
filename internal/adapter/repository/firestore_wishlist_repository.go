package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"magicwheel/internal/domain/entity"
	"magicwheel/internal/domain/repository"
	"magicwheel/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

func wishlistDocID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

// Add is idempotent: the deterministic document id makes a repeated add
// overwrite the same entry instead of duplicating it.
func (r *firestoreWishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	item.ID = wishlistDocID(item.UserID, item.ProductID)
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("wishlists").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to add to wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	id := wishlistDocID(userID, productID)

	doc, err := r.client.Collection("wishlists").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Wishlist item", err)
		}
		return errors.Internal("Failed to check wishlist", err)
	}
	if !doc.Exists() {
		return errors.NotFound("Wishlist item", nil)
	}

	_, err = r.client.Collection("wishlists").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove from wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	doc, err := r.client.Collection("wishlists").Doc(wishlistDocID(userID, productID)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check wishlist", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreWishlistRepository) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	iter := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	ids := []string{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate wishlist", err)
		}

		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse wishlist item", err)
		}
		ids = append(ids, item.ProductID)
	}

	return ids, nil
}
