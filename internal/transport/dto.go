package transport

import "github.com/infinity-lifestyle/storefront/internal/models"

type AddItemRequest struct {
	ProductID string      `json:"product_id"`
	Size      models.Size `json:"size"`
	Quantity  int         `json:"quantity"`
}

type UpdateItemRequest struct {
	ProductID string      `json:"product_id"`
	Size      models.Size `json:"size"`
	Quantity  int         `json:"quantity"`
}

type RemoveItemRequest struct {
	ProductID string      `json:"product_id"`
	Size      models.Size `json:"size"`
}

type DrawerRequest struct {
	Open bool `json:"open"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

func NewPageMeta(page, size, offset int, total int64) PageMeta {
	return PageMeta{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: (total + int64(size) - 1) / int64(size),
		HasPrev:    page > 1,
		HasNext:    int64(offset+size) < total,
	}
}
