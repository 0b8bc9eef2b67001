package contact

import (
	"context"

	"gorm.io/gorm"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/db/models"
)

// Repository persists contact messages.
type Repository interface {
	Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a contact repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}
