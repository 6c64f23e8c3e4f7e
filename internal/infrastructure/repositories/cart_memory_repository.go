package repositories

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/repositories"
	"github.com/alphanifty/alphanifty_service/pkg/metrics"
)

type userCart struct {
	mu    sync.Mutex
	items []entities.CartItem
}

// MemoryCartRepository keeps carts in process memory. Each user's cart has its own lock.
type MemoryCartRepository struct {
	mu     sync.RWMutex
	carts  map[string]*userCart
	logger *zap.Logger
}

var _ repositories.CartStore = (*MemoryCartRepository)(nil)

// NewMemoryCartRepository creates an empty in-memory cart store
func NewMemoryCartRepository(logger *zap.Logger) *MemoryCartRepository {
	return &MemoryCartRepository{
		carts:  make(map[string]*userCart),
		logger: logger,
	}
}

func (r *MemoryCartRepository) lookup(userID string) (*userCart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[userID]
	return c, ok
}

func (r *MemoryCartRepository) getOrCreate(userID string) *userCart {
	if c, ok := r.lookup(userID); ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.carts[userID]; ok {
		return c
	}
	c := &userCart{items: []entities.CartItem{}}
	r.carts[userID] = c
	return c
}

func observe(op string, start time.Time) {
	metrics.RecordCartStoreOperation("memory", op, time.Since(start).Seconds())
}

// List returns a copy of the user's items
func (r *MemoryCartRepository) List(ctx context.Context, userID string) ([]entities.CartItem, error) {
	defer observe("list", time.Now())

	c, ok := r.lookup(userID)
	if !ok {
		return []entities.CartItem{}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.CartItem, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Append adds an item, creating the cart on first use
func (r *MemoryCartRepository) Append(ctx context.Context, userID string, item entities.CartItem) error {
	defer observe("append", time.Now())

	c := r.getOrCreate(userID)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return nil
}

// Update mutates a copy of the item and stores it only if mutate succeeds
func (r *MemoryCartRepository) Update(ctx context.Context, userID, itemID string, mutate func(*entities.CartItem) error) (*entities.CartItem, error) {
	defer observe("update", time.Now())

	c, ok := r.lookup(userID)
	if !ok {
		return nil, repositories.ErrCartNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		updated := c.items[i]
		if err := mutate(&updated); err != nil {
			return nil, err
		}
		c.items[i] = updated
		return &updated, nil
	}
	return nil, repositories.ErrCartItemNotFound
}

// Remove filters out the item
func (r *MemoryCartRepository) Remove(ctx context.Context, userID, itemID string) error {
	defer observe("remove", time.Now())

	c, ok := r.lookup(userID)
	if !ok {
		return repositories.ErrCartNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return nil
}

// Clear empties an existing cart
func (r *MemoryCartRepository) Clear(ctx context.Context, userID string) error {
	defer observe("clear", time.Now())

	c, ok := r.lookup(userID)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []entities.CartItem{}
	r.logger.Debug("cart cleared", zap.String("user_id", userID))
	return nil
}
