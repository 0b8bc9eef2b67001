package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderLineItem is the snapshot of one cart line frozen into an order at
// checkout. The client owns line identity (a timestamp token in the web
// cart); the server validates shape and never edits lines after creation.
type OrderLineItem struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menuItemId" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity" validate:"required,min=1"`
	Image      string          `json:"image,omitempty"`
}

// OrderLineItems is stored on the order as a JSON column via the gorm json
// serializer; each element is schema-checked at the boundary rather than
// kept opaque.
type OrderLineItems []OrderLineItem

// Validate enforces the structural rules every stored line must satisfy.
func (items OrderLineItems) Validate() error {
	if len(items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}
	for i, item := range items {
		if item.MenuItemID == "" {
			return fmt.Errorf("item %d: menuItemId is required", i)
		}
		if item.Name == "" {
			return fmt.Errorf("item %d: name is required", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("item %d: quantity must be at least 1", i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("item %d: price cannot be negative", i)
		}
	}
	return nil
}

// Subtotal sums price times quantity across all lines.
func (items OrderLineItems) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}
