package entity

import (
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// allowedTransitions is the forward-only order lifecycle. Delivered and
// cancelled have no outgoing edges; re-entering pending or processing after
// shipment is rejected.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	StatusPending: {
		StatusProcessing: true,
		StatusShipped:    true,
		StatusCancelled:  true,
	},
	StatusProcessing: {
		StatusShipped:   true,
		StatusCancelled: true,
	},
	StatusShipped: {
		StatusDelivered: true,
	},
	StatusDelivered: {},
	StatusCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return allowedTransitions[s][next]
}

// IsTerminal reports whether the status closes the order for good.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	UnitPrice float64 `json:"unit_price" firestore:"unitPrice"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

type ShippingAddress struct {
	Name       string `json:"name" firestore:"name"`
	Address    string `json:"address" firestore:"address"`
	City       string `json:"city" firestore:"city"`
	PostalCode string `json:"postal_code" firestore:"postalCode"`
}

type PaymentDetails struct {
	PaymentIntentID string `json:"payment_intent_id,omitempty" firestore:"paymentIntentId,omitempty"`
	CustomerID      string `json:"customer_id,omitempty" firestore:"customerId,omitempty"`
	Method          string `json:"method,omitempty" firestore:"method,omitempty"`
	Status          string `json:"status,omitempty" firestore:"status,omitempty"`
}

// Order is a platform-catalog purchase. Owned by the buyer who created it;
// mutated only through status changes, never deleted.
type Order struct {
	ID          string          `json:"id" firestore:"id"`
	BuyerID     string          `json:"buyer_id" firestore:"buyerId"`
	Items       []OrderItem     `json:"items" firestore:"items"`
	TotalAmount float64         `json:"total_amount" firestore:"totalAmount"`
	Currency    string          `json:"currency" firestore:"currency"`
	Shipping    ShippingAddress `json:"shipping" firestore:"shipping"`
	Phone       string          `json:"phone" firestore:"phone"`
	Payment     PaymentDetails  `json:"payment" firestore:"payment"`

	Status   OrderStatus `json:"status" firestore:"status"`
	Terminal bool        `json:"terminal" firestore:"terminal"`

	// Version is bumped on every persisted mutation and checked on
	// compare-and-swap status updates.
	Version int64 `json:"version" firestore:"version"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
