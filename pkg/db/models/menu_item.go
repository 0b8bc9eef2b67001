package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
)

// MenuItem is a catalog entry. Rows are seeded at boot and never written
// afterwards.
type MenuItem struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string             `gorm:"column:name;not null" json:"name"`
	Description string             `gorm:"column:description;not null" json:"description"`
	Price       decimal.Decimal    `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Category    enums.MenuCategory `gorm:"column:category;type:text;not null" json:"category"`
	ImageURL    string             `gorm:"column:image_url" json:"imageUrl"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
