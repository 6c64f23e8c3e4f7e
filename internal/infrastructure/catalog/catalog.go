package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/repositories"
)

// Snapshot is the on-disk shape of a catalog file
type Snapshot struct {
	Baskets     []entities.Basket                     `json:"baskets"`
	Funds       []entities.Fund                       `json:"funds"`
	Performance map[string]entities.BasketPerformance `json:"performance"`
}

// StaticCatalog serves an immutable catalog. Identifiers are canonicalized once at construction
// so lookups are plain string comparisons.
type StaticCatalog struct {
	baskets     []entities.Basket
	funds       []entities.Fund
	basketIndex map[entities.EntityID]int
	fundIndex   map[entities.EntityID]int
	performance map[string]entities.BasketPerformance
}

var _ repositories.CatalogRepository = (*StaticCatalog)(nil)

// NewStaticCatalog builds a catalog from snap. Later duplicates of an id are ignored.
func NewStaticCatalog(snap Snapshot) *StaticCatalog {
	c := &StaticCatalog{
		baskets:     make([]entities.Basket, 0, len(snap.Baskets)),
		funds:       make([]entities.Fund, 0, len(snap.Funds)),
		basketIndex: make(map[entities.EntityID]int, len(snap.Baskets)),
		fundIndex:   make(map[entities.EntityID]int, len(snap.Funds)),
		performance: make(map[string]entities.BasketPerformance, len(snap.Performance)),
	}

	for _, b := range snap.Baskets {
		b.ID = canonical(b.ID)
		if _, dup := c.basketIndex[b.ID]; dup {
			continue
		}
		c.basketIndex[b.ID] = len(c.baskets)
		c.baskets = append(c.baskets, b)
	}
	for _, f := range snap.Funds {
		f.ID = canonical(f.ID)
		if _, dup := c.fundIndex[f.ID]; dup {
			continue
		}
		c.fundIndex[f.ID] = len(c.funds)
		c.funds = append(c.funds, f)
	}
	for k, v := range snap.Performance {
		c.performance[strings.TrimSpace(k)] = v
	}
	return c
}

// Default returns the built-in catalog
func Default() *StaticCatalog {
	return NewStaticCatalog(Snapshot{
		Baskets:     defaultBaskets,
		Funds:       defaultFunds,
		Performance: defaultPerformance,
	})
}

// Load reads a catalog file, falling back to the built-in catalog when path is empty
func Load(path string, logger *zap.Logger) (*StaticCatalog, error) {
	if path == "" {
		logger.Info("Using built-in catalog",
			zap.Int("baskets", len(defaultBaskets)),
			zap.Int("funds", len(defaultFunds)))
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	logger.Info("Loaded catalog file",
		zap.String("path", path),
		zap.Int("baskets", len(snap.Baskets)),
		zap.Int("funds", len(snap.Funds)))
	return NewStaticCatalog(snap), nil
}

func canonical(id entities.EntityID) entities.EntityID {
	return entities.EntityID(strings.TrimSpace(string(id)))
}

// ListBaskets returns all baskets in catalog order
func (c *StaticCatalog) ListBaskets(ctx context.Context) ([]entities.Basket, error) {
	out := make([]entities.Basket, len(c.baskets))
	copy(out, c.baskets)
	return out, nil
}

// GetBasket finds a basket by canonical id
func (c *StaticCatalog) GetBasket(ctx context.Context, id entities.EntityID) (*entities.Basket, error) {
	i, ok := c.basketIndex[canonical(id)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	b := c.baskets[i]
	return &b, nil
}

// ListFunds returns all funds in catalog order
func (c *StaticCatalog) ListFunds(ctx context.Context) ([]entities.Fund, error) {
	out := make([]entities.Fund, len(c.funds))
	copy(out, c.funds)
	return out, nil
}

// GetFund finds a fund by canonical id
func (c *StaticCatalog) GetFund(ctx context.Context, id entities.EntityID) (*entities.Fund, error) {
	i, ok := c.fundIndex[canonical(id)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	f := c.funds[i]
	return &f, nil
}

// GetBasketPerformance returns the card performance series stored under key
func (c *StaticCatalog) GetBasketPerformance(ctx context.Context, key string) (*entities.BasketPerformance, error) {
	p, ok := c.performance[strings.TrimSpace(key)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}
