package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"magicwheel/pkg/logger"
)

// StripePaymentService talks to the processor's REST API directly. Requests
// are form-encoded with the secret key as a Bearer token; responses are JSON.
type StripePaymentService struct {
	secretKey      string
	publishableKey string
	baseURL        string
	httpClient     *http.Client
}

func NewStripePaymentService(secretKey, publishableKey, baseURL string) *StripePaymentService {
	return &StripePaymentService{
		secretKey:      secretKey,
		publishableKey: publishableKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *StripePaymentService) PublishableKey() string {
	return s.publishableKey
}

// CreatePaymentSheet finds or creates a customer keyed by email, then issues
// an ephemeral key, a setup intent (saving the card for off-session use) and
// a payment intent for the given amount.
func (s *StripePaymentService) CreatePaymentSheet(ctx context.Context, req PaymentSheetRequest) (*PaymentSheet, error) {
	logger.Info("Creating payment sheet for %s, amount %d %s", req.Email, req.Amount, req.Currency)

	customerID, err := s.findOrCreateCustomer(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	ephemeralKey, err := s.createEphemeralKey(ctx, customerID)
	if err != nil {
		return nil, err
	}

	setupIntent, err := s.createSetupIntent(ctx, customerID)
	if err != nil {
		return nil, err
	}

	intentID, intentSecret, err := s.createPaymentIntent(ctx, customerID, req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	return &PaymentSheet{
		CustomerID:      customerID,
		EphemeralKey:    ephemeralKey,
		SetupIntent:     setupIntent,
		PaymentIntent:   intentSecret,
		PaymentIntentID: intentID,
		PublishableKey:  s.publishableKey,
	}, nil
}

func (s *StripePaymentService) findOrCreateCustomer(ctx context.Context, email string) (string, error) {
	listResp, err := s.do(ctx, http.MethodGet, "/customers?email="+url.QueryEscape(email)+"&limit=1", nil)
	if err != nil {
		return "", err
	}

	var list struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(listResp, &list); err != nil {
		return "", fmt.Errorf("failed to parse customer list: %v", err)
	}
	if len(list.Data) > 0 {
		return list.Data[0].ID, nil
	}

	form := url.Values{}
	form.Set("email", email)
	created, err := s.do(ctx, http.MethodPost, "/customers", form)
	if err != nil {
		return "", err
	}

	var customer struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(created, &customer); err != nil {
		return "", fmt.Errorf("failed to parse customer: %v", err)
	}

	logger.Info("Created processor customer %s", customer.ID)
	return customer.ID, nil
}

func (s *StripePaymentService) createEphemeralKey(ctx context.Context, customerID string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)

	body, err := s.do(ctx, http.MethodPost, "/ephemeral_keys", form)
	if err != nil {
		return "", err
	}

	var key struct {
		Secret string `json:"secret"`
	}
	if err := json.Unmarshal(body, &key); err != nil {
		return "", fmt.Errorf("failed to parse ephemeral key: %v", err)
	}
	return key.Secret, nil
}

func (s *StripePaymentService) createSetupIntent(ctx context.Context, customerID string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)

	body, err := s.do(ctx, http.MethodPost, "/setup_intents", form)
	if err != nil {
		return "", err
	}

	var intent struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", fmt.Errorf("failed to parse setup intent: %v", err)
	}
	return intent.ClientSecret, nil
}

func (s *StripePaymentService) createPaymentIntent(ctx context.Context, customerID string, amount int64, currency string) (string, string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("setup_future_usage", "off_session")

	body, err := s.do(ctx, http.MethodPost, "/payment_intents", form)
	if err != nil {
		return "", "", err
	}

	var intent struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", "", fmt.Errorf("failed to parse payment intent: %v", err)
	}

	logger.Info("Created payment intent %s", intent.ID)
	return intent.ID, intent.ClientSecret, nil
}

func (s *StripePaymentService) do(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.secretKey)
	if form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Error("Processor API error on %s %s: %s", method, path, string(body))
		return nil, fmt.Errorf("processor API error: status %d", resp.StatusCode)
	}

	return body, nil
}
