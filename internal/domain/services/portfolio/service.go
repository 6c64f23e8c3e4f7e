package portfolio

import (
	"context"
	"strings"
	"time"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
	"github.com/alphanifty/alphanifty_service/pkg/money"
	"github.com/alphanifty/alphanifty_service/pkg/sanitize"
)

// DefaultUserID is used when the request names no user
const DefaultUserID = "demo-user"

const dateFormat = "2006-01-02"

// Service returns the demo portfolio summary. Dates are relative to the injected clock.
type Service struct {
	defaultUserID string
	now           func() time.Time
	logger        *logger.Logger
}

// NewService creates a portfolio service
func NewService(defaultUserID string, log *logger.Logger) *Service {
	if defaultUserID == "" {
		defaultUserID = DefaultUserID
	}
	return &Service{
		defaultUserID: defaultUserID,
		now:           time.Now,
		logger:        log,
	}
}

// WithClock overrides the clock used for SIP and transaction dates
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type position struct {
	basketID entities.EntityID
	name     string
	invested float64
	current  float64
}

var positions = []position{
	{"1", "Blue-chip Elite", 120000, 145000},
	{"3", "Tech Innovators", 100000, 118000},
	{"2", "Dividend Champions", 80000, 92000},
	{"6", "Green Energy", 150000, 170000},
}

// The summary totals include cash and closed positions, so they are not the sum of the holdings.
const (
	totalValue    = 525000
	totalInvested = 450000
)

var performanceValues = []float64{450000, 455000, 465000, 472000, 485000, 490000, 498000, 505000, 510000, 515000, 520000, 525000}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Get returns the portfolio summary for userID
func (s *Service) Get(ctx context.Context, userID string) (*entities.Portfolio, error) {
	if userID = strings.TrimSpace(userID); userID == "" {
		userID = s.defaultUserID
	}
	now := s.now()

	holdings := make([]entities.PortfolioHolding, len(positions))
	for i, p := range positions {
		holdings[i] = entities.PortfolioHolding{
			BasketID:       p.basketID,
			BasketName:     p.name,
			Invested:       p.invested,
			Current:        p.current,
			Returns:        p.current - p.invested,
			ReturnsPercent: money.Percent(p.current-p.invested, p.invested),
		}
	}

	portfolio := &entities.Portfolio{
		TotalValue:     totalValue,
		Invested:       totalInvested,
		Returns:        totalValue - totalInvested,
		ReturnsPercent: money.Percent(totalValue-totalInvested, totalInvested),
		Holdings:       holdings,
		SIPs: []entities.PortfolioSIP{
			{
				BasketID:   "1",
				BasketName: "Blue-chip Elite",
				Amount:     10000,
				Frequency:  entities.DefaultCartFrequency,
				NextDate:   now.AddDate(0, 0, 8).Format(dateFormat),
				Status:     entities.SIPStatusActive,
			},
			{
				BasketID:   "3",
				BasketName: "Tech Innovators",
				Amount:     5000,
				Frequency:  entities.DefaultCartFrequency,
				NextDate:   now.AddDate(0, 0, 12).Format(dateFormat),
				Status:     entities.SIPStatusActive,
			},
		},
		Transactions: []entities.PortfolioTransaction{
			{
				Date:       now.Format(dateFormat),
				Type:       "SIP",
				BasketName: "Blue-chip Elite",
				Amount:     10000,
				Status:     "Completed",
			},
			{
				Date:       now.AddDate(0, 0, -5).Format(dateFormat),
				Type:       "Buy",
				BasketName: "Green Energy",
				Amount:     50000,
				Status:     "Completed",
			},
		},
		Performance: entities.PortfolioPerformance{
			Labels: append([]string(nil), monthLabels...),
			Values: append([]float64(nil), performanceValues...),
		},
	}

	s.logger.CtxInfo(ctx, "Portfolio summary served", "user_id", sanitize.LogString(userID))
	return portfolio, nil
}
