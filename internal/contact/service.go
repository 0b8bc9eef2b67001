package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/db/models"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
)

const (
	minMessageLength = 10
	maxMessageLength = 500
)

// CreateContactInput captures a contact form submission.
type CreateContactInput struct {
	Name    string
	Email   string
	Message string
}

// Service validates and stores contact messages.
type Service interface {
	Create(ctx context.Context, input CreateContactInput) (*models.ContactMessage, error)
}

type service struct {
	repo Repository
}

// NewService builds a contact service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateContactInput) (*models.ContactMessage, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	message := &models.ContactMessage{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Message: strings.TrimSpace(input.Message),
	}

	saved, err := s.repo.Create(ctx, message)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist contact message")
	}
	return saved, nil
}

func validate(input CreateContactInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required").
			WithDetails(map[string]any{"fields": []string{"name"}})
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "email must be a valid address").
			WithDetails(map[string]any{"fields": []string{"email"}})
	}
	length := utf8.RuneCountInString(strings.TrimSpace(input.Message))
	if length < minMessageLength || length > maxMessageLength {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("message must be between %d and %d characters", minMessageLength, maxMessageLength)).
			WithDetails(map[string]any{"fields": []string{"message"}, "length": length})
	}
	return nil
}
