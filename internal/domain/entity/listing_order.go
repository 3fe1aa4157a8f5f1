package entity

import (
	"time"
)

// ListingOrder is a peer-to-peer marketplace purchase. On top of the platform
// order shape it tracks the seller, the listing, and a shipping sub-lifecycle
// (courier assignment) plus a post-delivery review gate.
type ListingOrder struct {
	ID        string `json:"id" firestore:"id"`
	BuyerID   string `json:"buyer_id" firestore:"buyerId"`
	SellerID  string `json:"seller_id" firestore:"sellerId"`
	ListingID string `json:"listing_id" firestore:"listingId"`

	Items       []OrderItem     `json:"items" firestore:"items"`
	TotalAmount float64         `json:"total_amount" firestore:"totalAmount"`
	Currency    string          `json:"currency" firestore:"currency"`
	Shipping    ShippingAddress `json:"shipping" firestore:"shipping"`
	Phone       string          `json:"phone" firestore:"phone"`
	Payment     PaymentDetails  `json:"payment" firestore:"payment"`

	Status   OrderStatus `json:"status" firestore:"status"`
	Terminal bool        `json:"terminal" firestore:"terminal"`

	// Courier fields are set once on the transition to shipped and never
	// cleared afterwards.
	CourierName string     `json:"courier_name,omitempty" firestore:"courierName,omitempty"`
	TrackingID  string     `json:"tracking_id,omitempty" firestore:"trackingId,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty" firestore:"shippedAt,omitempty"`

	ReviewSubmitted bool `json:"review_submitted" firestore:"reviewSubmitted"`

	Version int64 `json:"version" firestore:"version"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
