package entity

import (
	"time"
)

// User is keyed by the external auth uid. Wishlist entries and notifications
// live in their own collections, not embedded here.
type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`

	Shipping ShippingAddress `json:"shipping" firestore:"shipping"`

	// Payment-processor customer id; actual payment methods stay with the
	// processor, never stored here.
	PaymentCustomerID string `json:"payment_customer_id,omitempty" firestore:"paymentCustomerId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
