package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aryan-dudharejiya/savoria-backend/pkg/db/models"
	"github.com/aryan-dudharejiya/savoria-backend/pkg/enums"
	pkgerrors "github.com/aryan-dudharejiya/savoria-backend/pkg/errors"
)

// Service exposes the read-only catalog operations.
type Service interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	ListMenuItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	SearchMenuItems(ctx context.Context, query string) ([]models.MenuItem, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	return items, nil
}

// ListMenuItemsByCategory matches category as free text; an unknown category
// is an empty result, not an error.
func (s *service) ListMenuItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	parsed, err := enums.ParseMenuCategory(strings.ToLower(strings.TrimSpace(category)))
	if err != nil {
		return []models.MenuItem{}, nil
	}
	items, err := s.repo.ListMenuItemsByCategory(ctx, parsed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items by category")
	}
	return items, nil
}

func (s *service) GetMenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	item, err := s.repo.FindMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}
	return item, nil
}

func (s *service) SearchMenuItems(ctx context.Context, query string) ([]models.MenuItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.MenuItem{}, nil
	}
	items, err := s.repo.SearchMenuItems(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search menu items")
	}
	return items, nil
}

func (s *service) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	return reviews, nil
}
