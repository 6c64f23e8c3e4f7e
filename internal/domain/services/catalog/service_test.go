package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	infracatalog "github.com/alphanifty/alphanifty_service/internal/infrastructure/catalog"
	apperrors "github.com/alphanifty/alphanifty_service/pkg/errors"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	repo := infracatalog.NewStaticCatalog(infracatalog.Snapshot{
		Baskets: []entities.Basket{
			{ID: "1", Name: "Blue-chip Elite", Description: "Large-cap leaders"},
			{ID: "2", Name: "Tech Innovators", Description: "Digital economy and AXIS of growth"},
			{ID: "3", Name: "Safe Harbour", Description: "Debt and gold"},
		},
		Funds: []entities.Fund{
			{ID: "101", Name: "Axis Bluechip Fund", AMC: "Axis Mutual Fund"},
			{ID: "102", Name: "Parag Parikh Flexi Cap", AMC: "PPFAS Mutual Fund"},
			{ID: "103", Name: "Liquid Fund", AMC: "AXIS Mutual Fund"},
		},
		Performance: map[string]entities.BasketPerformance{
			"basket-1": {Basket: []float64{100, 104}, Nifty50: []float64{100, 102}, Labels: []string{"Jan", "Feb"}},
		},
	})
	return NewService(repo, logger.NewLogger(zaptest.NewLogger(t)))
}

func TestService_Search(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	result, err := svc.Search(ctx, "AxIs")
	require.NoError(t, err)

	require.Len(t, result.Baskets, 1)
	assert.Equal(t, entities.EntityID("2"), result.Baskets[0].ID)
	require.Len(t, result.Funds, 2)
	assert.Equal(t, entities.EntityID("101"), result.Funds[0].ID)
	assert.Equal(t, entities.EntityID("103"), result.Funds[1].ID)

	result, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, result.Baskets, 3)
	assert.Len(t, result.Funds, 3)

	result, err = svc.Search(ctx, "no such thing")
	require.NoError(t, err)
	assert.NotNil(t, result.Baskets)
	assert.Empty(t, result.Baskets)
	assert.Empty(t, result.Funds)
}

func TestService_Lookups(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	basket, err := svc.GetBasket(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Safe Harbour", basket.Name)

	_, err = svc.GetBasket(ctx, "9")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Basket not found", apperrors.Message(err))

	fund, err := svc.GetFund(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, "PPFAS Mutual Fund", fund.AMC)

	_, err = svc.GetFund(ctx, "1")
	assert.Equal(t, "Fund not found", apperrors.Message(err))
}

func TestService_BasketPerformance(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	perf, err := svc.BasketPerformance(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 104}, perf.Basket)

	perf, err = svc.BasketPerformance(ctx, "basket-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan", "Feb"}, perf.Labels)

	_, err = svc.BasketPerformance(ctx, "2")
	assert.Equal(t, 404, apperrors.GetStatusCode(err))
	assert.Equal(t, "Performance data not found", apperrors.Message(err))
}
