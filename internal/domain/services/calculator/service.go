package calculator

import (
	"context"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	apperrors "github.com/alphanifty/alphanifty_service/pkg/errors"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
	"github.com/alphanifty/alphanifty_service/pkg/metrics"
)

// Defaults applied to absent request fields
const (
	DefaultAnnualReturn = 12
	DefaultSIPYears     = 5
	DefaultLumpsumYears = 5
	DefaultGoalYears    = 10
)

// Service applies request defaults and runs the calculators
type Service struct {
	logger *logger.Logger
}

// NewService creates a calculator service
func NewService(log *logger.Logger) *Service {
	return &Service{logger: log}
}

// SIP handles a SIP projection request
func (s *Service) SIP(ctx context.Context, req entities.SIPRequest) (*entities.ProjectionResult, error) {
	result, err := SIP(
		req.MonthlyInvestment.Or(0),
		req.AnnualReturn.Or(DefaultAnnualReturn),
		req.Years.IntOr(DefaultSIPYears),
	)
	if err != nil {
		return nil, s.fail(ctx, "sip", err)
	}
	metrics.RecordCalculation("sip", "success")
	return &result, nil
}

// Lumpsum handles a lumpsum projection request
func (s *Service) Lumpsum(ctx context.Context, req entities.LumpsumRequest) (*entities.ProjectionResult, error) {
	result, err := Lumpsum(
		req.Principal.Or(0),
		req.AnnualReturn.Or(DefaultAnnualReturn),
		req.Years.IntOr(DefaultLumpsumYears),
	)
	if err != nil {
		return nil, s.fail(ctx, "lumpsum", err)
	}
	metrics.RecordCalculation("lumpsum", "success")
	return &result, nil
}

// Goal handles a goal-based SIP request
func (s *Service) Goal(ctx context.Context, req entities.GoalRequest) (*entities.GoalResult, error) {
	result, err := Goal(
		req.TargetAmount.Or(0),
		req.Years.IntOr(DefaultGoalYears),
		req.AnnualReturn.Or(DefaultAnnualReturn),
		req.ExistingInvestment.Or(0),
	)
	if err != nil {
		return nil, s.fail(ctx, "goal", err)
	}

	metrics.RecordCalculation("goal", "success")
	return &result, nil
}

func (s *Service) fail(ctx context.Context, kind string, err error) error {
	metrics.RecordCalculation(kind, "error")
	s.logger.CtxWarn(ctx, "Calculation failed", "calculator", kind, "error", err)
	return apperrors.Processing(err, "Calculation failed")
}
