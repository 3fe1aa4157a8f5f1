package entity

import (
	"time"
)

// CategorySnapshot is the id+name copy embedded in a product at creation
// time. Renaming a category does not touch existing products until the
// explicit backfill operation runs.
type CategorySnapshot struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
}

type Product struct {
	ID           string           `json:"id" firestore:"id"`
	Name         string           `json:"name" firestore:"name"`
	Description  string           `json:"description,omitempty" firestore:"description,omitempty"`
	Price        float64          `json:"price" firestore:"price"`
	Image        string           `json:"image,omitempty" firestore:"image,omitempty"`
	CountInStock int              `json:"count_in_stock" firestore:"countInStock"`
	Rating       float64          `json:"rating" firestore:"rating"`
	Category     CategorySnapshot `json:"category" firestore:"category"`
	CreatedAt    time.Time        `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time        `json:"updated_at" firestore:"updatedAt"`
}
