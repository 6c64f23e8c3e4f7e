package repositories

import (
	"context"
	"errors"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
)

var (
	// ErrNotFound is returned by catalog lookups for unknown identifiers
	ErrNotFound = errors.New("not found")

	// ErrCartNotFound is returned when the user has never created a cart
	ErrCartNotFound = errors.New("cart not found")

	// ErrCartItemNotFound is returned when the item id is not in the user's cart
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CatalogRepository is the read-only source of baskets, funds and card performance data
type CatalogRepository interface {
	ListBaskets(ctx context.Context) ([]entities.Basket, error)
	GetBasket(ctx context.Context, id entities.EntityID) (*entities.Basket, error)
	ListFunds(ctx context.Context) ([]entities.Fund, error)
	GetFund(ctx context.Context, id entities.EntityID) (*entities.Fund, error)
	GetBasketPerformance(ctx context.Context, key string) (*entities.BasketPerformance, error)
}

// CartStore maps a user id to an ordered sequence of cart items
type CartStore interface {
	// List returns the user's items in insertion order, empty when the user has no cart
	List(ctx context.Context, userID string) ([]entities.CartItem, error)
	// Append adds item to the end of the user's cart, creating the cart if needed
	Append(ctx context.Context, userID string, item entities.CartItem) error
	// Update applies mutate to the item with itemID and returns the stored result.
	// If mutate returns an error nothing is written.
	Update(ctx context.Context, userID, itemID string, mutate func(*entities.CartItem) error) (*entities.CartItem, error)
	// Remove drops the item with itemID; a missing item is not an error but a missing cart is
	Remove(ctx context.Context, userID, itemID string) error
	// Clear empties an existing cart and does nothing otherwise
	Clear(ctx context.Context, userID string) error
}
