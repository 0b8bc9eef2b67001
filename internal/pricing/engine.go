package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/config"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/types"
)

// PromoRejectedReason is the user-facing signal for a promo code that did
// not match any configured rule. It travels in the quote body, not as an
// error, because a bad code is a recoverable UI state.
const PromoRejectedReason = "invalid promo code"

// Engine computes deterministic price breakdowns for a cart. It is pure:
// the same items and promo code always produce the same quote.
type Engine struct {
	freeDeliveryThreshold decimal.Decimal
	deliveryFee           decimal.Decimal
	taxRate               decimal.Decimal
	taxEnabled            bool
	promoRules            map[string]decimal.Decimal
}

// NewEngine builds an engine from the pricing configuration.
func NewEngine(cfg config.PricingConfig) (*Engine, error) {
	threshold, err := decimal.NewFromString(cfg.FreeDeliveryThreshold)
	if err != nil {
		return nil, fmt.Errorf("free delivery threshold: %w", err)
	}
	fee, err := decimal.NewFromString(cfg.DeliveryFee)
	if err != nil {
		return nil, fmt.Errorf("delivery fee: %w", err)
	}
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("tax rate: %w", err)
	}
	rules, err := cfg.ParsePromoRules()
	if err != nil {
		return nil, err
	}
	return &Engine{
		freeDeliveryThreshold: threshold,
		deliveryFee:           fee,
		taxRate:               taxRate,
		taxEnabled:            cfg.TaxEnabled,
		promoRules:            rules,
	}, nil
}

// Quote is the price breakdown returned to the storefront.
type Quote struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PromoApplied  bool            `json:"promoApplied"`
	PromoRejected string          `json:"promoRejected,omitempty"`
}

// Quote computes the breakdown for the given lines and optional promo code.
// An empty cart quotes to all-zero values.
func (e *Engine) Quote(items types.OrderLineItems, promoCode string) Quote {
	subtotal := items.Subtotal().Round(2)
	if subtotal.IsZero() {
		return Quote{
			Subtotal:    decimal.Zero,
			DeliveryFee: decimal.Zero,
			Tax:         decimal.Zero,
			Discount:    decimal.Zero,
			Total:       decimal.Zero,
		}
	}

	quote := Quote{Subtotal: subtotal}

	if subtotal.GreaterThanOrEqual(e.freeDeliveryThreshold) {
		quote.DeliveryFee = decimal.Zero
	} else {
		quote.DeliveryFee = e.deliveryFee
	}

	quote.Tax = decimal.Zero
	if e.taxEnabled {
		quote.Tax = subtotal.Mul(e.taxRate).Round(2)
	}

	quote.Discount = decimal.Zero
	if code := strings.ToLower(strings.TrimSpace(promoCode)); code != "" {
		if rate, ok := e.promoRules[code]; ok {
			quote.Discount = subtotal.Mul(rate).Round(2)
			quote.PromoApplied = true
		} else {
			quote.PromoRejected = PromoRejectedReason
		}
	}

	total := subtotal.Add(quote.DeliveryFee).Add(quote.Tax).Sub(quote.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	quote.Total = total

	return quote
}

// ValidateCheckout rejects carts that cannot proceed to an order: empty
// carts and lines with a quantity below one.
func (e *Engine) ValidateCheckout(items types.OrderLineItems) error {
	if len(items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if err := items.Validate(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart items")
	}
	return nil
}
