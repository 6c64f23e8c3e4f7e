package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/repositories"
)

// runCartStoreContract exercises the behaviour every CartStore must share
func runCartStoreContract(t *testing.T, store repositories.CartStore, user string) {
	ctx := context.Background()

	items, err := store.List(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, store.Remove(ctx, user, "x"), repositories.ErrCartNotFound)
	_, err = store.Update(ctx, user, "x", func(*entities.CartItem) error { return nil })
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
	require.NoError(t, store.Clear(ctx, user))

	first := entities.CartItem{ID: "a", BasketID: "1", InvestmentType: entities.InvestmentTypeSIP, Amount: 5000, Frequency: "Monthly"}
	second := entities.CartItem{ID: "b", BasketID: "2", InvestmentType: entities.InvestmentTypeLumpsum, Amount: 25000, Frequency: "Monthly"}
	require.NoError(t, store.Append(ctx, user, first))
	require.NoError(t, store.Append(ctx, user, second))

	items, err = store.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)

	updated, err := store.Update(ctx, user, "b", func(item *entities.CartItem) error {
		item.Amount = 30000
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 30000.0, updated.Amount)

	_, err = store.Update(ctx, user, "missing", func(*entities.CartItem) error { return nil })
	assert.ErrorIs(t, err, repositories.ErrCartItemNotFound)

	rejected := errors.New("rejected")
	_, err = store.Update(ctx, user, "a", func(item *entities.CartItem) error {
		item.Amount = -1
		return rejected
	})
	assert.ErrorIs(t, err, rejected)

	items, err = store.List(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, items[0].Amount)
	assert.Equal(t, 30000.0, items[1].Amount)

	require.NoError(t, store.Remove(ctx, user, "missing"))
	require.NoError(t, store.Remove(ctx, user, "a"))
	items, err = store.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	require.NoError(t, store.Clear(ctx, user))
	items, err = store.List(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, items)

	// a cleared cart still exists
	require.NoError(t, store.Remove(ctx, user, "b"))
	_, err = store.Update(ctx, user, "b", func(*entities.CartItem) error { return nil })
	assert.ErrorIs(t, err, repositories.ErrCartItemNotFound)
}

func TestMemoryCartRepository_Contract(t *testing.T) {
	runCartStoreContract(t, NewMemoryCartRepository(zaptest.NewLogger(t)), "guest")
}

func TestMemoryCartRepository_ListReturnsCopy(t *testing.T) {
	store := NewMemoryCartRepository(zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "u1", entities.CartItem{ID: "a", Amount: 100}))
	items, err := store.List(ctx, "u1")
	require.NoError(t, err)
	items[0].Amount = 1

	items, err = store.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, items[0].Amount)
}

func TestMemoryCartRepository_ConcurrentAppends(t *testing.T) {
	store := NewMemoryCartRepository(zaptest.NewLogger(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	for u := 0; u < 4; u++ {
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(u, i int) {
				defer wg.Done()
				user := fmt.Sprintf("user-%d", u)
				assert.NoError(t, store.Append(ctx, user, entities.CartItem{ID: fmt.Sprintf("%d", i)}))
			}(u, i)
		}
	}
	wg.Wait()

	for u := 0; u < 4; u++ {
		items, err := store.List(ctx, fmt.Sprintf("user-%d", u))
		require.NoError(t, err)
		assert.Len(t, items, 50)
	}
}
