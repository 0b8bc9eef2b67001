package stripe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v84"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/config"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/logger"
)

var errAPIKeyRequired = errors.New("stripe api key is required")

// Client wraps Stripe's API client for the payment-intent bridge. Card/UPI
// checkout collects payment through Stripe before the order is created; the
// order service itself never talks to Stripe.
type Client struct {
	api      *stripe.Client
	currency string
}

// NewClient initializes Stripe once with the configured secret.
func NewClient(ctx context.Context, cfg config.StripeConfig, logg *logger.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	currency := strings.ToLower(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = "usd"
	}

	api := stripe.NewClient(apiKey)

	if logg != nil {
		logg.Info(ctx, fmt.Sprintf("stripe client initialized (%s)", currency))
	}

	return &Client{
		api:      api,
		currency: currency,
	}, nil
}

// CreatePaymentIntent opens a payment intent for the given amount in the
// smallest currency unit and returns its client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	if c == nil || c.api == nil {
		return "", errors.New("stripe client not initialized")
	}
	if amountMinorUnits <= 0 {
		return "", errors.New("amount must be positive")
	}

	intent, err := c.api.V1PaymentIntents.Create(ctx, &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(c.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// Currency reports the configured settlement currency.
func (c *Client) Currency() string {
	if c == nil {
		return ""
	}
	return c.currency
}
