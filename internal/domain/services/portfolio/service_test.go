package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
)

func TestService_Get(t *testing.T) {
	now := time.Date(2025, time.December, 28, 15, 0, 0, 0, time.UTC)
	svc := NewService("", logger.NewLogger(zaptest.NewLogger(t))).WithClock(func() time.Time { return now })

	p, err := svc.Get(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 525000.0, p.TotalValue)
	assert.Equal(t, 450000.0, p.Invested)
	assert.Equal(t, 75000.0, p.Returns)
	assert.Equal(t, 16.67, p.ReturnsPercent)

	require.Len(t, p.Holdings, 4)
	assert.Equal(t, entities.PortfolioHolding{
		BasketID:       "1",
		BasketName:     "Blue-chip Elite",
		Invested:       120000,
		Current:        145000,
		Returns:        25000,
		ReturnsPercent: 20.83,
	}, p.Holdings[0])
	assert.Equal(t, 18.0, p.Holdings[1].ReturnsPercent)
	assert.Equal(t, 15.0, p.Holdings[2].ReturnsPercent)
	assert.Equal(t, 13.33, p.Holdings[3].ReturnsPercent)

	require.Len(t, p.SIPs, 2)
	assert.Equal(t, "2026-01-05", p.SIPs[0].NextDate)
	assert.Equal(t, "2026-01-09", p.SIPs[1].NextDate)
	assert.Equal(t, entities.SIPStatusActive, p.SIPs[1].Status)

	require.Len(t, p.Transactions, 2)
	assert.Equal(t, "2025-12-28", p.Transactions[0].Date)
	assert.Equal(t, "2025-12-23", p.Transactions[1].Date)
	assert.Equal(t, 50000.0, p.Transactions[1].Amount)

	assert.Len(t, p.Performance.Labels, 12)
	assert.Equal(t, 525000.0, p.Performance.Values[11])
}

func TestService_GetReturnsIndependentCopies(t *testing.T) {
	svc := NewService("demo-user", logger.NewLogger(zaptest.NewLogger(t)))

	first, err := svc.Get(context.Background(), "someone")
	require.NoError(t, err)
	first.Performance.Values[0] = 0
	first.Holdings[0].BasketName = "changed"

	second, err := svc.Get(context.Background(), "someone")
	require.NoError(t, err)
	assert.Equal(t, 450000.0, second.Performance.Values[0])
	assert.Equal(t, "Blue-chip Elite", second.Holdings[0].BasketName)
}
