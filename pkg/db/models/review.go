package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is seeded storefront social proof; read-only after boot.
type Review struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Avatar    string    `gorm:"column:avatar" json:"avatar"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Review    string    `gorm:"column:review;not null" json:"review"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
