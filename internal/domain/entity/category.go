package entity

import (
	"time"
)

type Category struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Icon      string    `json:"icon,omitempty" firestore:"icon,omitempty"`
	Color     string    `json:"color,omitempty" firestore:"color,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
