package cart

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/repositories"
	apperrors "github.com/alphanifty/alphanifty_service/pkg/errors"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
	"github.com/alphanifty/alphanifty_service/pkg/metrics"
	"github.com/alphanifty/alphanifty_service/pkg/sanitize"
)

// Service manages per-user carts on top of a CartStore
type Service struct {
	store         repositories.CartStore
	defaultUserID string
	now           func() time.Time
	logger        *logger.Logger
}

// NewService creates a cart service. An empty defaultUserID falls back to "guest".
func NewService(store repositories.CartStore, defaultUserID string, log *logger.Logger) *Service {
	if defaultUserID == "" {
		defaultUserID = entities.DefaultCartUserID
	}
	return &Service{
		store:         store,
		defaultUserID: defaultUserID,
		now:           time.Now,
		logger:        log,
	}
}

// WithClock overrides the clock used to stamp new items
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) userID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return s.defaultUserID
}

// Get returns the user's items, empty for unknown users
func (s *Service) Get(ctx context.Context, userID string) ([]entities.CartItem, error) {
	items, err := s.store.List(ctx, s.userID(userID))
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	metrics.RecordCartOperation("get", "success")
	if items == nil {
		items = []entities.CartItem{}
	}
	return items, nil
}

// Add appends a new item, applying defaults for absent fields
func (s *Service) Add(ctx context.Context, req entities.AddCartItemRequest) (*entities.CartItem, error) {
	if req.BasketID == nil || *req.BasketID == "" {
		metrics.RecordCartOperation("add", "invalid")
		return nil, apperrors.Validation("basketId is required")
	}

	amount := req.Amount.Or(entities.DefaultCartAmount)
	if amount <= 0 {
		metrics.RecordCartOperation("add", "invalid")
		return nil, apperrors.Validation("amount must be greater than zero")
	}

	item := entities.CartItem{
		ID:             uuid.New().String(),
		BasketID:       *req.BasketID,
		InvestmentType: entities.DefaultCartInvestmentType,
		Amount:         amount,
		Frequency:      entities.DefaultCartFrequency,
		AddedAt:        s.now(),
	}
	if req.InvestmentType != nil {
		item.InvestmentType = *req.InvestmentType
	}
	if req.Frequency != nil {
		item.Frequency = *req.Frequency
	}

	userID := s.userID(req.UserID)
	if err := s.store.Append(ctx, userID, item); err != nil {
		return nil, s.fail(ctx, "add", err)
	}

	metrics.RecordCartOperation("add", "success")
	s.logger.CtxInfo(ctx, "Cart item added",
		"user_id", sanitize.LogString(userID),
		"item_id", item.ID,
		"basket_id", item.BasketID)
	return &item, nil
}

// Update merges the present fields of patch into the item
func (s *Service) Update(ctx context.Context, itemID string, patch entities.CartItemPatch) (*entities.CartItem, error) {
	if patch.Amount != nil && float64(*patch.Amount) <= 0 {
		metrics.RecordCartOperation("update", "invalid")
		return nil, apperrors.Validation("amount must be greater than zero")
	}

	item, err := s.store.Update(ctx, s.userID(patch.UserID), itemID, func(item *entities.CartItem) error {
		patch.Apply(item)
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) || errors.Is(err, repositories.ErrCartItemNotFound) {
			metrics.RecordCartOperation("update", "not_found")
			return nil, apperrors.WrapNotFound(err, "Cart item not found")
		}
		return nil, s.fail(ctx, "update", err)
	}

	metrics.RecordCartOperation("update", "success")
	return item, nil
}

// Remove drops an item. A missing item is fine, a missing cart is not.
func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	if err := s.store.Remove(ctx, s.userID(userID), itemID); err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			metrics.RecordCartOperation("remove", "not_found")
			return apperrors.WrapNotFound(err, "Cart not found")
		}
		return s.fail(ctx, "remove", err)
	}
	metrics.RecordCartOperation("remove", "success")
	return nil
}

// Clear empties the user's cart if it exists
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Clear(ctx, s.userID(userID)); err != nil {
		return s.fail(ctx, "clear", err)
	}
	metrics.RecordCartOperation("clear", "success")
	return nil
}

func (s *Service) fail(ctx context.Context, op string, err error) error {
	metrics.RecordCartOperation(op, "error")
	s.logger.CtxError(ctx, "Cart store operation failed", "operation", op, "error", err)
	return apperrors.WrapExternal(err, "cart_store", "Cart is temporarily unavailable")
}
