package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/infinity-lifestyle/storefront/internal/cart"
	"github.com/infinity-lifestyle/storefront/internal/logging"
	"github.com/infinity-lifestyle/storefront/internal/models"
	"github.com/infinity-lifestyle/storefront/internal/repo"
	"github.com/infinity-lifestyle/storefront/internal/stream"
)

// CartItemView is one cart line joined with its product and priced at the
// discounted price.
type CartItemView struct {
	Product  models.Product `json:"product"`
	Size     models.Size    `json:"size"`
	Quantity int            `json:"quantity"`
	Subtotal int64          `json:"subtotal"`
}

// CartView is the read model of a session cart: its lines plus the derived
// aggregates, recomputed on every read.
type CartView struct {
	Items      []CartItemView `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice int64          `json:"total_price"`
	Open       bool           `json:"open"`
}

type CartService struct {
	Store    cart.Store
	Repo     *repo.GormRepo
	Producer *stream.Producer
}

func (s *CartService) view(ctx context.Context, c models.Cart) (CartView, error) {
	v := CartView{Items: make([]CartItemView, 0, len(c.Lines)), Open: c.Open}
	for _, line := range c.Lines {
		product, err := s.Repo.GetProduct(ctx, line.ProductID)
		if err != nil {
			// A cart can only reference seeded products; a dangling line
			// means the catalog and cart stores are out of sync.
			return CartView{}, fmt.Errorf("cart line product %q: %w", line.ProductID, err)
		}
		sub := product.DiscountedPrice * int64(line.Quantity)
		v.Items = append(v.Items, CartItemView{
			Product:  *product,
			Size:     line.Size,
			Quantity: line.Quantity,
			Subtotal: sub,
		})
		v.TotalItems += line.Quantity
		v.TotalPrice += sub
	}
	return v, nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) (CartView, error) {
	c, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	return s.view(ctx, c)
}

func (s *CartService) publish(ctx context.Context, sessionID string, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, sessionID, event); err != nil {
		logging.FromContext(ctx).Error("cart_event_publish_failed", "error", err)
	}
}

// AddToCart merges quantity into the existing (productID, size) line or
// appends a new one, opens the cart drawer and returns the updated view
// plus a user-facing confirmation notice.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productID string, size models.Size, quantity int) (CartView, string, error) {
	if quantity < 1 {
		return CartView{}, "", fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CartView{}, "", fmt.Errorf("product %q: %w", productID, ErrNotFound)
	}
	if err != nil {
		return CartView{}, "", err
	}
	if !product.HasSize(size) {
		return CartView{}, "", fmt.Errorf("size %q not offered for product %q: %w", size, productID, ErrValidation)
	}

	c, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return CartView{}, "", err
	}

	if i := c.Find(productID, size); i >= 0 {
		c.Lines[i].Quantity += quantity
	} else {
		c.Lines = append(c.Lines, models.CartLine{ProductID: productID, Size: size, Quantity: quantity})
	}
	c.Open = true

	if err := s.Store.Put(ctx, sessionID, c); err != nil {
		return CartView{}, "", err
	}

	s.publish(ctx, sessionID, map[string]any{
		"type":       "cart_item_added",
		"session_id": sessionID,
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	})

	notice := fmt.Sprintf("Added to cart: %s (%s) x%d - %s",
		product.Name, size, quantity, models.FormatBDT(product.DiscountedPrice*int64(quantity)))

	v, err := s.view(ctx, c)
	return v, notice, err
}

// RemoveFromCart drops the matching line. Removing an absent line is a
// no-op, not an error.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productID string, size models.Size) (CartView, error) {
	c, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}

	if i := c.Find(productID, size); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		if err := s.Store.Put(ctx, sessionID, c); err != nil {
			return CartView{}, err
		}
		s.publish(ctx, sessionID, map[string]any{
			"type":       "cart_item_removed",
			"session_id": sessionID,
			"product_id": productID,
			"size":       size,
		})
	}
	return s.view(ctx, c)
}

// UpdateQuantity replaces the matching line's quantity. Any quantity <= 0
// removes the line instead; updating an absent line is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, size models.Size, quantity int) (CartView, error) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, sessionID, productID, size)
	}

	c, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}

	if i := c.Find(productID, size); i >= 0 {
		c.Lines[i].Quantity = quantity
		if err := s.Store.Put(ctx, sessionID, c); err != nil {
			return CartView{}, err
		}
	}
	return s.view(ctx, c)
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.Store.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.publish(ctx, sessionID, map[string]any{
		"type":       "cart_cleared",
		"session_id": sessionID,
	})
	return nil
}

// SetDrawer flips the cart drawer visibility flag without touching lines.
func (s *CartService) SetDrawer(ctx context.Context, sessionID string, open bool) (CartView, error) {
	c, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	c.Open = open
	if err := s.Store.Put(ctx, sessionID, c); err != nil {
		return CartView{}, err
	}
	return s.view(ctx, c)
}
