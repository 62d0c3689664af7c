package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/infinity-lifestyle/storefront/internal/models"
	"github.com/infinity-lifestyle/storefront/internal/repo"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	return product, err
}

// ListProducts returns a page of products. Unknown category slugs or brands
// match nothing and yield an empty page, not an error.
func (s *CatalogService) ListProducts(ctx context.Context, f repo.ProductFilter, offset, limit int) (int64, []models.Product, error) {
	if f.Brand != "" && !f.Brand.Valid() {
		return 0, []models.Product{}, nil
	}
	return s.Repo.ListProducts(ctx, f, offset, limit)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	cat, err := s.Repo.GetCategoryBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %q: %w", slug, ErrNotFound)
	}
	return cat, err
}

func (s *CatalogService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.Repo.GetEvent(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("event %q: %w", id, ErrNotFound)
	}
	return event, err
}

func (s *CatalogService) ListEvents(ctx context.Context, f repo.EventFilter) ([]models.Event, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("unknown event status %q: %w", f.Status, ErrValidation)
	}
	return s.Repo.ListEvents(ctx, f)
}
