package reservations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/db/models"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// CreateReservationInput captures a table booking submission.
type CreateReservationInput struct {
	Name   string
	Email  string
	Date   string
	Time   string
	Guests string
	Notes  string
}

// Service validates and stores reservations. There is no lifecycle beyond
// creation.
type Service interface {
	Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error)
	List(ctx context.Context) ([]models.Reservation, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a reservations service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reservations repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(input.Name),
		Email:  strings.TrimSpace(input.Email),
		Date:   strings.TrimSpace(input.Date),
		Time:   strings.TrimSpace(input.Time),
		Guests: strings.TrimSpace(input.Guests),
		Notes:  strings.TrimSpace(input.Notes),
	}

	saved, err := s.repo.Create(ctx, reservation)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist reservation")
	}
	return saved, nil
}

func (s *service) List(ctx context.Context) ([]models.Reservation, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reservations")
	}
	if list == nil {
		list = []models.Reservation{}
	}
	return list, nil
}

func (s *service) validate(input CreateReservationInput) error {
	missing := []string{}
	for field, value := range map[string]string{
		"name":   input.Name,
		"email":  input.Email,
		"date":   input.Date,
		"time":   input.Time,
		"guests": input.Guests,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))).
			WithDetails(map[string]any{"fields": missing})
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("date must be formatted %s", dateLayout))
	}

	// Compared at day granularity: booking for today is allowed, yesterday
	// is not.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return pkgerrors.New(pkgerrors.CodeValidation, "date cannot be in the past")
	}
	return nil
}
