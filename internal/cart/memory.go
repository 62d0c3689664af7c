package cart

import (
	"context"
	"sync"

	"github.com/infinity-lifestyle/storefront/internal/models"
)

// MemoryStore keeps session carts in process memory. Contents are lost on
// restart, matching the storefront's no-persistence cart lifecycle. Each
// instance is independent, so tests can build one store per case.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return models.Cart{}, nil
	}
	return c.Clone(), nil
}

func (s *MemoryStore) Put(ctx context.Context, sessionID string, c models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = c.Clone()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
