package orders

import (
	"github.com/shopspring/decimal"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/types"
)

// CreateOrderInput captures a checkout submission. TrackingID,
// PaymentStatus and EstimatedDeliveryTime are optional; the service fills
// them when absent.
type CreateOrderInput struct {
	FullName              string
	PhoneNumber           string
	DeliveryAddress       string
	Notes                 string
	Items                 types.OrderLineItems
	TotalAmount           decimal.Decimal
	PaymentMethod         enums.PaymentMethod
	PaymentStatus         *enums.PaymentStatus
	TrackingID            string
	EstimatedDeliveryTime string
}

// UpdateOrderInput is a partial order patch. Nil fields are left unchanged.
type UpdateOrderInput struct {
	Notes                 *string
	Status                *enums.OrderStatus
	PaymentStatus         *enums.PaymentStatus
	EstimatedDeliveryTime *string
}

// IsEmpty reports whether the patch would change nothing.
func (u UpdateOrderInput) IsEmpty() bool {
	return u.Notes == nil && u.Status == nil && u.PaymentStatus == nil && u.EstimatedDeliveryTime == nil
}
