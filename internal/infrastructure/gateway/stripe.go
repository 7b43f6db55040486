// Package gateway wraps the external payment provider behind a small
// request/response contract: create an intent, get back a client secret.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const requestTimeout = 15 * time.Second

// StripeGateway creates payment intents through the provider's REST API.
type StripeGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

// NewStripeGateway returns a gateway pointed at baseURL (the provider's
// API root, overridable for tests) authenticating with secretKey.
func NewStripeGateway(secretKey, baseURL string) *StripeGateway {
	return &StripeGateway{
		secretKey: secretKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: requestTimeout},
	}
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent registers a payment intent for amount (smallest currency
// unit) and returns the provider's client secret verbatim.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("payment intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment intent call: %w", err)
	}
	defer resp.Body.Close()

	var body intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("payment intent response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "unknown provider error"
		if body.Error != nil && body.Error.Message != "" {
			msg = body.Error.Message
		}
		return "", fmt.Errorf("payment provider: %s (status %d)", msg, resp.StatusCode)
	}
	if body.ClientSecret == "" {
		return "", fmt.Errorf("payment provider: empty client secret")
	}

	return body.ClientSecret, nil
}
