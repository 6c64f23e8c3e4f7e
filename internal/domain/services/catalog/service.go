package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/repositories"
	apperrors "github.com/alphanifty/alphanifty_service/pkg/errors"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
	"github.com/alphanifty/alphanifty_service/pkg/metrics"
	"github.com/alphanifty/alphanifty_service/pkg/sanitize"
)

const performanceKeyPrefix = "basket-"

// Service exposes catalog lookups and search
type Service struct {
	repo   repositories.CatalogRepository
	logger *logger.Logger
}

// NewService creates a catalog service
func NewService(repo repositories.CatalogRepository, log *logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// ListBaskets returns every basket
func (s *Service) ListBaskets(ctx context.Context) ([]entities.Basket, error) {
	baskets, err := s.repo.ListBaskets(ctx)
	if err != nil {
		return nil, apperrors.Processing(err, "Failed to list baskets")
	}
	return baskets, nil
}

// GetBasket returns a basket by id
func (s *Service) GetBasket(ctx context.Context, id entities.EntityID) (*entities.Basket, error) {
	basket, err := s.repo.GetBasket(ctx, id)
	metrics.RecordCatalogLookup("basket", err == nil)
	if err != nil {
		return nil, s.lookupError(err, "Basket not found")
	}
	return basket, nil
}

// BasketPerformance returns the card series for a basket. Ids may already carry the basket- prefix.
func (s *Service) BasketPerformance(ctx context.Context, id string) (*entities.BasketPerformance, error) {
	key := strings.TrimSpace(id)
	if !strings.HasPrefix(key, performanceKeyPrefix) {
		key = performanceKeyPrefix + key
	}

	perf, err := s.repo.GetBasketPerformance(ctx, key)
	metrics.RecordCatalogLookup("basket_performance", err == nil)
	if err != nil {
		return nil, s.lookupError(err, "Performance data not found")
	}
	return perf, nil
}

// ListFunds returns every fund
func (s *Service) ListFunds(ctx context.Context) ([]entities.Fund, error) {
	funds, err := s.repo.ListFunds(ctx)
	if err != nil {
		return nil, apperrors.Processing(err, "Failed to list funds")
	}
	return funds, nil
}

// GetFund returns a fund by id
func (s *Service) GetFund(ctx context.Context, id entities.EntityID) (*entities.Fund, error) {
	fund, err := s.repo.GetFund(ctx, id)
	metrics.RecordCatalogLookup("fund", err == nil)
	if err != nil {
		return nil, s.lookupError(err, "Fund not found")
	}
	return fund, nil
}

// Search matches baskets on name or description and funds on name or AMC, ignoring case.
// An empty query matches everything.
func (s *Service) Search(ctx context.Context, query string) (*entities.SearchResult, error) {
	q := sanitize.Query(query)

	baskets, err := s.ListBaskets(ctx)
	if err != nil {
		return nil, err
	}
	funds, err := s.ListFunds(ctx)
	if err != nil {
		return nil, err
	}

	result := &entities.SearchResult{
		Baskets: []entities.Basket{},
		Funds:   []entities.Fund{},
	}
	for _, b := range baskets {
		if strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(strings.ToLower(b.Description), q) {
			result.Baskets = append(result.Baskets, b)
		}
	}
	for _, f := range funds {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.AMC), q) {
			result.Funds = append(result.Funds, f)
		}
	}

	s.logger.CtxInfo(ctx, "Catalog search",
		"query", sanitize.LogString(query),
		"baskets", len(result.Baskets),
		"funds", len(result.Funds))
	return result, nil
}

func (s *Service) lookupError(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.WrapNotFound(err, message)
	}
	return apperrors.Processing(err, message)
}
