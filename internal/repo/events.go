package repo

import (
	"context"

	"github.com/infinity-lifestyle/storefront/internal/models"
)

// EventFilter narrows event listings. Nil/zero values mean "no filter".
type EventFilter struct {
	Status   models.EventStatus
	Brand    models.Brand
	Featured *bool
}

func (r *GormRepo) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *GormRepo) ListEvents(ctx context.Context, f EventFilter) ([]models.Event, error) {
	q := r.DB.WithContext(ctx).Model(&models.Event{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}

	var events []models.Event
	if err := q.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
