package controllers

import (
	"net/http"
	"strings"

	"github.com/aryan-dudharejiya/savoria-backend/api/responses"
	"github.com/aryan-dudharejiya/savoria-backend/api/validators"
	"github.com/aryan-dudharejiya/savoria-backend/internal/contact"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/logger"
)

type createContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=500"`
}

// ContactCreate stores a contact form submission.
func ContactCreate(svc contact.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var payload createContactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := svc.Create(r.Context(), contact.CreateContactInput{
			Name:    strings.TrimSpace(payload.Name),
			Email:   strings.TrimSpace(payload.Email),
			Message: strings.TrimSpace(payload.Message),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, message)
	}
}
