package orders

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/config"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/db/models"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service owns the order lifecycle: creation at checkout, tracking lookups
// and guarded status advancement.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*models.Order, error)
	ListByPhoneNumber(ctx context.Context, phoneNumber string) ([]models.Order, error)
	Update(ctx context.Context, trackingID string, patch UpdateOrderInput) (*models.Order, error)
}

type service struct {
	repo               Repository
	tx                 txRunner
	minDeliveryMinutes int
	maxDeliveryMinutes int
	now                func() time.Time
}

// NewService builds an order service backed by the provided stack.
func NewService(repo Repository, tx txRunner, pricing config.PricingConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if pricing.MinDeliveryMinutes <= 0 || pricing.MaxDeliveryMinutes < pricing.MinDeliveryMinutes {
		return nil, fmt.Errorf("delivery minute window %d..%d is invalid", pricing.MinDeliveryMinutes, pricing.MaxDeliveryMinutes)
	}
	return &service{
		repo:               repo,
		tx:                 tx,
		minDeliveryMinutes: pricing.MinDeliveryMinutes,
		maxDeliveryMinutes: pricing.MaxDeliveryMinutes,
		now:                time.Now,
	}, nil
}

// Create validates the checkout submission, assigns identity and defaults,
// and persists the order. Order number and tracking ID are allocated inside
// the transaction so two concurrent checkouts never collide.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	paymentStatus := input.PaymentMethod.DefaultPaymentStatus()
	if input.PaymentStatus != nil {
		if !input.PaymentStatus.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid payment status %q", *input.PaymentStatus))
		}
		paymentStatus = *input.PaymentStatus
	}

	estimate := strings.TrimSpace(input.EstimatedDeliveryTime)
	if estimate == "" {
		estimate = s.deliveryEstimate()
	}

	order := &models.Order{
		ID:                    uuid.New(),
		FullName:              strings.TrimSpace(input.FullName),
		PhoneNumber:           strings.TrimSpace(input.PhoneNumber),
		DeliveryAddress:       strings.TrimSpace(input.DeliveryAddress),
		Notes:                 strings.TrimSpace(input.Notes),
		Items:                 input.Items,
		TotalAmount:           input.TotalAmount,
		Status:                enums.OrderStatusPending,
		PaymentMethod:         input.PaymentMethod,
		PaymentStatus:         paymentStatus,
		EstimatedDeliveryTime: estimate,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		number, err := repo.NextOrderNumber(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "allocate order number")
		}
		order.OrderNumber = number

		order.TrackingID = strings.TrimSpace(input.TrackingID)
		if order.TrackingID == "" {
			order.TrackingID = GenerateTrackingID(number)
		}

		if _, err := repo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) GetByTrackingID(ctx context.Context, trackingID string) (*models.Order, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tracking id is required")
	}
	order, err := s.repo.FindByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

// ListByPhoneNumber returns the customer's orders, newest first. No orders
// is a valid empty result, not an error.
func (s *service) ListByPhoneNumber(ctx context.Context, phoneNumber string) ([]models.Order, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone number is required")
	}
	list, err := s.repo.ListByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders by phone")
	}
	if list == nil {
		list = []models.Order{}
	}
	return list, nil
}

// Update merges the patch over the stored order. Status may only advance to
// its immediate successor; payment status may only leave pending. Items and
// totals are frozen at creation and cannot be patched.
func (s *service) Update(ctx context.Context, trackingID string, patch UpdateOrderInput) (*models.Order, error) {
	if patch.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "update requires at least one field")
	}

	order, err := s.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		next := *patch.Status
		if !next.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", next))
		}
		if next != order.Status {
			if !order.Status.CanAdvanceTo(next) {
				return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
					fmt.Sprintf("order status cannot move from %q to %q", order.Status, next)).
					WithDetails(map[string]any{"from": order.Status, "to": next})
			}
			order.Status = next
		}
	}

	if patch.PaymentStatus != nil {
		next := *patch.PaymentStatus
		if !next.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid payment status %q", next))
		}
		if next != order.PaymentStatus {
			if order.PaymentStatus.IsTerminal() {
				return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
					fmt.Sprintf("payment status %q is final", order.PaymentStatus)).
					WithDetails(map[string]any{"from": order.PaymentStatus, "to": next})
			}
			order.PaymentStatus = next
		}
	}

	if patch.Notes != nil {
		order.Notes = strings.TrimSpace(*patch.Notes)
	}
	if patch.EstimatedDeliveryTime != nil {
		estimate := strings.TrimSpace(*patch.EstimatedDeliveryTime)
		if estimate == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "estimated delivery time cannot be blank")
		}
		order.EstimatedDeliveryTime = estimate
	}

	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save order")
	}
	return saved, nil
}

func validateCreateInput(input CreateOrderInput) error {
	missing := []string{}
	if strings.TrimSpace(input.FullName) == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(input.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	if strings.TrimSpace(input.DeliveryAddress) == "" {
		missing = append(missing, "deliveryAddress")
	}
	if input.PaymentMethod == "" {
		missing = append(missing, "paymentMethod")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))).
			WithDetails(map[string]any{"fields": missing})
	}
	if !input.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid payment method %q", input.PaymentMethod))
	}
	if err := input.Items.Validate(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order items")
	}
	if input.TotalAmount.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "total amount cannot be negative")
	}
	return nil
}

// deliveryEstimate picks a point 30..45 minutes out (configurable bounds)
// once at creation; the estimate never changes afterwards unless patched.
func (s *service) deliveryEstimate() string {
	window := s.maxDeliveryMinutes - s.minDeliveryMinutes
	minutes := s.minDeliveryMinutes
	if window > 0 {
		minutes += rand.Intn(window + 1)
	}
	return s.now().Add(time.Duration(minutes) * time.Minute).UTC().Format(time.RFC3339)
}
