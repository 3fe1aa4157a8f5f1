package entity

import (
	"time"
)

// Notification is an append-only, per-user informational record. The type,
// icon and color tuple is caller-chosen and free-form.
type Notification struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Message   string    `json:"message" firestore:"message"`
	Type      string    `json:"type,omitempty" firestore:"type,omitempty"`
	Icon      string    `json:"icon,omitempty" firestore:"icon,omitempty"`
	Color     string    `json:"color,omitempty" firestore:"color,omitempty"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
