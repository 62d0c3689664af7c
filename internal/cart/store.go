// Package cart holds the per-session shopping cart state. Carts are
// volatile: they live for one browsing session and are never shared
// between sessions.
package cart

import (
	"context"

	"github.com/infinity-lifestyle/storefront/internal/models"
)

// Store persists session carts keyed by session ID. Get on an unknown
// session returns an empty cart, never an error; carts come into
// existence on first write.
type Store interface {
	Get(ctx context.Context, sessionID string) (models.Cart, error)
	Put(ctx context.Context, sessionID string, c models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
