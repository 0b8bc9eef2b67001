package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/types"
)

// Order is the server-side record of a checkout. Items are frozen at
// creation; only notes, the two status axes and the delivery estimate may
// change afterwards.
type Order struct {
	ID                    uuid.UUID            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderNumber           int64                `gorm:"column:order_number;not null;uniqueIndex" json:"orderNumber"`
	TrackingID            string               `gorm:"column:tracking_id;not null;uniqueIndex" json:"trackingId"`
	FullName              string               `gorm:"column:full_name;not null" json:"fullName"`
	PhoneNumber           string               `gorm:"column:phone_number;not null;index" json:"phoneNumber"`
	DeliveryAddress       string               `gorm:"column:delivery_address;not null" json:"deliveryAddress"`
	Notes                 string               `gorm:"column:notes;not null;default:''" json:"notes"`
	Items                 types.OrderLineItems `gorm:"column:items;serializer:json;not null" json:"items"`
	TotalAmount           decimal.Decimal      `gorm:"column:total_amount;type:decimal(10,2);not null" json:"totalAmount"`
	Status                enums.OrderStatus    `gorm:"column:status;type:text;not null;default:'pending'" json:"status"`
	PaymentMethod         enums.PaymentMethod  `gorm:"column:payment_method;type:text;not null" json:"paymentMethod"`
	PaymentStatus         enums.PaymentStatus  `gorm:"column:payment_status;type:text;not null;default:'pending'" json:"paymentStatus"`
	EstimatedDeliveryTime string               `gorm:"column:estimated_delivery_time;not null" json:"estimatedDeliveryTime"`
	CreatedAt             time.Time            `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
