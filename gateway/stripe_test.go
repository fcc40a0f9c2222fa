package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio/gateway"

	"github.com/stretchr/testify/assert"
)

func TestCreateIntentPostsFormFields(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		form = map[string]string{
			"amount":               r.FormValue("amount"),
			"currency":             r.FormValue("currency"),
			"payment_method_types": r.FormValue("payment_method_types[]"),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":            "pi_123",
			"client_secret": "pi_123_secret",
			"status":        "requires_payment_method",
			"amount":        1999,
			"currency":      "usd",
		})
	}))
	defer srv.Close()

	client := gateway.NewStripeClient("sk_test", srv.URL)
	intent, err := client.CreateIntent(context.Background(), 1999)
	assert.NoError(t, err)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, "1999", form["amount"])
	assert.Equal(t, "usd", form["currency"])
	assert.Equal(t, "card", form["payment_method_types"])
}

func TestRetrieveIntentParsesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payment_intents/pi_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "pi_123",
			"status": "succeeded",
		})
	}))
	defer srv.Close()

	client := gateway.NewStripeClient("sk_test", srv.URL)
	intent, err := client.RetrieveIntent(context.Background(), "pi_123")
	assert.NoError(t, err)
	assert.Equal(t, gateway.IntentSucceeded, intent.Status)
}

func TestGatewayErrorSurface(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := gateway.NewStripeClient("sk_test", srv.URL)
	_, err := client.CreateIntent(context.Background(), 100)
	assert.Error(t, err)
}
