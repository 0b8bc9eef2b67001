package controllers

import (
	"net/http"

	"github.com/aryan-dudharejiya/savoria-backend/api/responses"
	"github.com/aryan-dudharejiya/savoria-backend/api/validators"
	"github.com/aryan-dudharejiya/savoria-backend/internal/pricing"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/logger"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/types"
)

type cartQuoteRequest struct {
	Items     types.OrderLineItems `json:"items" validate:"required,dive"`
	PromoCode string               `json:"promoCode"`
}

// CartQuote prices a cart without persisting anything. Carts are
// client-held; this endpoint lets the storefront show a server-authoritative
// breakdown before checkout.
func CartQuote(engine *pricing.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing engine unavailable"))
			return
		}

		var payload cartQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := engine.ValidateCheckout(payload.Items); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, engine.Quote(payload.Items, payload.PromoCode))
	}
}
