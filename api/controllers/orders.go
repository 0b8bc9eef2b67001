package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/aryan-dudharejiya/savoria-backend/api/responses"
	"github.com/aryan-dudharejiya/savoria-backend/api/validators"
	internalorders "github.com/aryan-dudharejiya/savoria-backend/internal/orders"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/logger"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/types"
)

type createOrderRequest struct {
	FullName              string               `json:"fullName" validate:"required"`
	PhoneNumber           string               `json:"phoneNumber" validate:"required"`
	DeliveryAddress       string               `json:"deliveryAddress" validate:"required"`
	Notes                 string               `json:"notes"`
	Items                 types.OrderLineItems `json:"items" validate:"required,dive"`
	TotalAmount           decimal.Decimal      `json:"totalAmount"`
	PaymentMethod         string               `json:"paymentMethod" validate:"required"`
	PaymentStatus         *string              `json:"paymentStatus"`
	TrackingID            string               `json:"trackingId"`
	EstimatedDeliveryTime string               `json:"estimatedDeliveryTime"`
}

func (req createOrderRequest) toInput() (internalorders.CreateOrderInput, error) {
	method, err := enums.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return internalorders.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method")
	}

	input := internalorders.CreateOrderInput{
		FullName:              strings.TrimSpace(req.FullName),
		PhoneNumber:           strings.TrimSpace(req.PhoneNumber),
		DeliveryAddress:       strings.TrimSpace(req.DeliveryAddress),
		Notes:                 strings.TrimSpace(req.Notes),
		Items:                 req.Items,
		TotalAmount:           req.TotalAmount,
		PaymentMethod:         method,
		TrackingID:            strings.TrimSpace(req.TrackingID),
		EstimatedDeliveryTime: strings.TrimSpace(req.EstimatedDeliveryTime),
	}

	if req.PaymentStatus != nil {
		status, err := enums.ParsePaymentStatus(*req.PaymentStatus)
		if err != nil {
			return internalorders.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment status")
		}
		input.PaymentStatus = &status
	}

	return input, nil
}

type updateOrderRequest struct {
	Notes                 *string `json:"notes"`
	Status                *string `json:"status"`
	PaymentStatus         *string `json:"paymentStatus"`
	EstimatedDeliveryTime *string `json:"estimatedDeliveryTime"`
}

func (req updateOrderRequest) toInput() (internalorders.UpdateOrderInput, error) {
	patch := internalorders.UpdateOrderInput{
		Notes:                 req.Notes,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
	}

	if req.Status != nil {
		status, err := enums.ParseOrderStatus(*req.Status)
		if err != nil {
			return internalorders.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
		}
		patch.Status = &status
	}
	if req.PaymentStatus != nil {
		status, err := enums.ParsePaymentStatus(*req.PaymentStatus)
		if err != nil {
			return internalorders.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment status")
		}
		patch.PaymentStatus = &status
	}

	return patch, nil
}

// OrderCreate places an order from a checkout submission.
func OrderCreate(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithTrackingID(ctx, order.TrackingID)
			logg.Info(ctx, "order.created")
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// OrderByTrackingID fetches one order by its tracking id.
func OrderByTrackingID(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		trackingID := strings.TrimSpace(chi.URLParam(r, "trackingId"))
		if trackingID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "tracking id is required"))
			return
		}

		order, err := svc.GetByTrackingID(r.Context(), trackingID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// OrdersByPhone lists a customer's orders by phone number, newest first.
// No match is a valid empty page, not an error.
func OrdersByPhone(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		phone := strings.TrimSpace(chi.URLParam(r, "phoneNumber"))
		if phone == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "phone number is required"))
			return
		}

		list, err := svc.ListByPhoneNumber(r.Context(), phone)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// OrderUpdate applies a partial patch to an order: notes, status advance,
// payment status, or a revised delivery estimate.
func OrderUpdate(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		trackingID := strings.TrimSpace(chi.URLParam(r, "trackingId"))
		if trackingID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "tracking id is required"))
			return
		}

		var payload updateOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Update(r.Context(), trackingID, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithTrackingID(ctx, order.TrackingID)
			logg.Info(ctx, "order.updated")
		}

		responses.WriteSuccess(w, order)
	}
}
