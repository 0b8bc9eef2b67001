package controllers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/aryan-dudharejiya/savoria-backend/api/responses"
	"github.com/aryan-dudharejiya/savoria-backend/api/validators"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/logger"
)

// PaymentIntentCreator is the slice of the Stripe client used here.
type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountMinorUnits int64) (string, error)
}

type createPaymentIntentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentIntentCreate asks Stripe for a payment intent covering the cart
// total and hands the client secret back to the storefront. A nil client
// means Stripe is not configured for this deployment.
func PaymentIntentCreate(stripe PaymentIntentCreator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if stripe == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "payment processing is not configured"))
			return
		}

		var payload createPaymentIntentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !payload.Amount.IsPositive() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "amount must be greater than zero"))
			return
		}

		minorUnits := payload.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		clientSecret, err := stripe.CreatePaymentIntent(r.Context(), minorUnits)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create payment intent"))
			return
		}

		responses.WriteSuccess(w, createPaymentIntentResponse{ClientSecret: clientSecret})
	}
}
