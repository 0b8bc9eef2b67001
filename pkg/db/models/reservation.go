package models

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a table booking request. Created once, never mutated.
type Reservation struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Date      string    `gorm:"column:date;not null" json:"date"`
	Time      string    `gorm:"column:time;not null" json:"time"`
	Guests    string    `gorm:"column:guests;not null" json:"guests"`
	Notes     string    `gorm:"column:notes;not null;default:''" json:"notes"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
