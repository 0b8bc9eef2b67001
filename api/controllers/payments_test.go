package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubPaymentIntents struct {
	clientSecret string
	err          error
	gotAmount    int64
}

func (s *stubPaymentIntents) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	s.gotAmount = amountMinorUnits
	return s.clientSecret, s.err
}

func TestPaymentIntentCreate(t *testing.T) {
	stub := &stubPaymentIntents{clientSecret: "pi_123_secret_abc"}

	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(`{"amount": "35.99"}`))
	rec := httptest.NewRecorder()
	PaymentIntentCreate(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.gotAmount != 3599 {
		t.Fatalf("expected 3599 minor units, got %d", stub.gotAmount)
	}

	var body struct {
		Data struct {
			ClientSecret string `json:"clientSecret"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Data.ClientSecret != "pi_123_secret_abc" {
		t.Fatalf("expected client secret in response, got %q", body.Data.ClientSecret)
	}
}

func TestPaymentIntentCreateZeroAmount(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(`{"amount": "0"}`))
	rec := httptest.NewRecorder()
	PaymentIntentCreate(&stubPaymentIntents{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero amount, got %d", rec.Code)
	}
}

func TestPaymentIntentCreateUnconfigured(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(`{"amount": "10.00"}`))
	rec := httptest.NewRecorder()
	PaymentIntentCreate(nil, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when stripe unconfigured, got %d", rec.Code)
	}
}
