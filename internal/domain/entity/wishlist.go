package entity

import (
	"time"
)

// WishlistItem uses a deterministic "uid_productId" document id, which gives
// the wishlist set semantics at the storage layer.
type WishlistItem struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ProductID string    `json:"product_id" firestore:"productId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
