// Package gateway talks to the external payment provider. The service only
// needs two calls: create a payment intent before the client pays, and
// retrieve one when gateway re-verification is switched on.
package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Intent mirrors the fields of a Stripe PaymentIntent the service reads.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// IntentSucceeded is the gateway-side status of a completed charge.
const IntentSucceeded = "succeeded"

// Client is the surface the payment controller depends on.
type Client interface {
	CreateIntent(ctx context.Context, amountMinor int64) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (*Intent, error)
}

type StripeClient struct {
	http *resty.Client
}

// NewStripeClient builds a client for the Stripe REST API. baseURL is
// overridable so tests can point it at a stub server.
func NewStripeClient(secretKey, baseURL string) *StripeClient {
	return &StripeClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetBasicAuth(secretKey, "").
			SetTimeout(10 * time.Second),
	}
}

// CreateIntent registers a pending card charge for the given amount in minor
// units (usd). No money moves until the client completes payment with the
// returned client secret.
func (s *StripeClient) CreateIntent(ctx context.Context, amountMinor int64) (*Intent, error) {
	var intent Intent
	resp, err := s.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amountMinor, 10),
			"currency":               "usd",
			"payment_method_types[]": "card",
		}).
		SetResult(&intent).
		Post("/payment_intents")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stripe: create intent failed: %s", resp.Status())
	}
	return &intent, nil
}

// RetrieveIntent fetches an intent by id.
func (s *StripeClient) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	var intent Intent
	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&intent).
		Get("/payment_intents/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stripe: retrieve intent failed: %s", resp.Status())
	}
	return &intent, nil
}
