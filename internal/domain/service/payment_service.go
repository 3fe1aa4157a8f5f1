package service

import (
	"context"
)

// PaymentSheet bundles everything the mobile payment UI needs to collect a
// payment: processor-generated client secrets plus the customer id. The
// backend stores only the ids; card data never touches this service.
type PaymentSheet struct {
	CustomerID        string `json:"customer_id"`
	EphemeralKey      string `json:"ephemeral_key"`
	SetupIntent       string `json:"setup_intent"`
	PaymentIntent     string `json:"payment_intent"`
	PaymentIntentID   string `json:"payment_intent_id"`
	PublishableKey    string `json:"publishable_key"`
}

type PaymentSheetRequest struct {
	Email string
	// Amount in minor units of the configured currency.
	Amount   int64
	Currency string
}

type PaymentService interface {
	CreatePaymentSheet(ctx context.Context, req PaymentSheetRequest) (*PaymentSheet, error)
	PublishableKey() string
}
