package enums

import "fmt"

// OrderStatus tracks the kitchen-to-doorstep lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// validOrderStatuses is ordered: each status may only advance to its
// immediate successor.
var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further advancement is possible.
func (o OrderStatus) IsTerminal() bool {
	return o == OrderStatusDelivered
}

// CanAdvanceTo reports whether next is the immediate successor of o.
// Backward moves and skip-ahead moves are both disallowed.
func (o OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	for i, candidate := range validOrderStatuses {
		if candidate != o {
			continue
		}
		return i+1 < len(validOrderStatuses) && validOrderStatuses[i+1] == next
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
