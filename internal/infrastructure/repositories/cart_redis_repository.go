package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/repositories"
	"github.com/alphanifty/alphanifty_service/pkg/metrics"
)

const maxTxRetries = 5

// ErrTxConflict is returned when a cart key keeps changing under an optimistic transaction
var ErrTxConflict = errors.New("cart transaction conflict")

// RedisCartRepository stores each cart as a JSON array under prefix+userID.
// Writes use WATCH/MULTI so concurrent requests for one user do not lose updates.
type RedisCartRepository struct {
	client  redis.UniversalClient
	breaker *gobreaker.CircuitBreaker
	prefix  string
	ttl     time.Duration
	logger  *zap.Logger
}

var _ repositories.CartStore = (*RedisCartRepository)(nil)

// NewRedisCartRepository creates a Redis backed cart store. A zero ttl keeps carts until cleared.
func NewRedisCartRepository(client redis.UniversalClient, breaker *gobreaker.CircuitBreaker, prefix string, ttl time.Duration, logger *zap.Logger) *RedisCartRepository {
	return &RedisCartRepository{
		client:  client,
		breaker: breaker,
		prefix:  prefix,
		ttl:     ttl,
		logger:  logger,
	}
}

func (r *RedisCartRepository) key(userID string) string {
	return r.prefix + userID
}

// domainError marks outcomes that are not backend failures so the breaker ignores them
type domainError struct {
	err error
}

func (e domainError) Error() string { return e.err.Error() }

// execute runs fn through the circuit breaker
func (r *RedisCartRepository) execute(op string, fn func() error) error {
	start := time.Now()
	defer func() {
		metrics.RecordCartStoreOperation("redis", op, time.Since(start).Seconds())
	}()

	var outcome error
	_, err := r.breaker.Execute(func() (interface{}, error) {
		err := fn()
		var de domainError
		if errors.As(err, &de) {
			outcome = de.err
			return nil, nil
		}
		return nil, err
	})
	if err != nil {
		r.logger.Error("redis cart operation failed", zap.String("operation", op), zap.Error(err))
		return err
	}
	return outcome
}

func decodeItems(data []byte) ([]entities.CartItem, error) {
	items := []entities.CartItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// read returns the cart under key and whether it exists
func read(ctx context.Context, cmd stringGetter, key string) ([]entities.CartItem, bool, error) {
	data, err := cmd.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entities.CartItem{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	items, err := decodeItems(data)
	return items, true, err
}

// transact retries fn under WATCH until it commits without a conflicting write
func (r *RedisCartRepository) transact(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, fn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrTxConflict
}

func (r *RedisCartRepository) write(ctx context.Context, tx *redis.Tx, key string, items []entities.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, r.ttl)
		return nil
	})
	return err
}

// List returns the user's items
func (r *RedisCartRepository) List(ctx context.Context, userID string) ([]entities.CartItem, error) {
	var items []entities.CartItem
	err := r.execute("list", func() error {
		var err error
		items, _, err = read(ctx, r.client, r.key(userID))
		return err
	})
	return items, err
}

// Append adds an item to the end of the user's cart
func (r *RedisCartRepository) Append(ctx context.Context, userID string, item entities.CartItem) error {
	key := r.key(userID)
	return r.execute("append", func() error {
		return r.transact(ctx, key, func(tx *redis.Tx) error {
			items, _, err := read(ctx, tx, key)
			if err != nil {
				return err
			}
			return r.write(ctx, tx, key, append(items, item))
		})
	})
}

// Update applies mutate to the stored item inside a transaction
func (r *RedisCartRepository) Update(ctx context.Context, userID, itemID string, mutate func(*entities.CartItem) error) (*entities.CartItem, error) {
	key := r.key(userID)
	var updated *entities.CartItem

	err := r.execute("update", func() error {
		return r.transact(ctx, key, func(tx *redis.Tx) error {
			items, exists, err := read(ctx, tx, key)
			if err != nil {
				return err
			}
			if !exists {
				return domainError{repositories.ErrCartNotFound}
			}

			for i := range items {
				if items[i].ID != itemID {
					continue
				}
				item := items[i]
				if err := mutate(&item); err != nil {
					return domainError{err}
				}
				items[i] = item
				if err := r.write(ctx, tx, key, items); err != nil {
					return err
				}
				updated = &item
				return nil
			}
			return domainError{repositories.ErrCartItemNotFound}
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove filters out the item; the cart must exist
func (r *RedisCartRepository) Remove(ctx context.Context, userID, itemID string) error {
	key := r.key(userID)

	return r.execute("remove", func() error {
		return r.transact(ctx, key, func(tx *redis.Tx) error {
			items, exists, err := read(ctx, tx, key)
			if err != nil {
				return err
			}
			if !exists {
				return domainError{repositories.ErrCartNotFound}
			}

			kept := make([]entities.CartItem, 0, len(items))
			for _, item := range items {
				if item.ID != itemID {
					kept = append(kept, item)
				}
			}
			return r.write(ctx, tx, key, kept)
		})
	})
}

// Clear empties an existing cart and leaves unknown users untouched
func (r *RedisCartRepository) Clear(ctx context.Context, userID string) error {
	key := r.key(userID)

	return r.execute("clear", func() error {
		return r.transact(ctx, key, func(tx *redis.Tx) error {
			n, err := tx.Exists(ctx, key).Result()
			if err != nil {
				return err
			}
			if n == 0 {
				return nil
			}
			return r.write(ctx, tx, key, []entities.CartItem{})
		})
	})
}
