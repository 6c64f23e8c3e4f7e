package performance

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/repositories"
	apperrors "github.com/alphanifty/alphanifty_service/pkg/errors"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
	"github.com/alphanifty/alphanifty_service/pkg/metrics"
	"github.com/alphanifty/alphanifty_service/pkg/sanitize"
)

var tracer = otel.Tracer("alphanifty-performance")

// SeriesLoader reads a NAV series by file reference
type SeriesLoader interface {
	Load(ctx context.Context, ref string) ([]entities.TimeSeriesRecord, error)
}

// Service builds normalized basket-vs-benchmark performance from NAV workbooks
type Service struct {
	catalog repositories.CatalogRepository
	loader  SeriesLoader
	logger  *logger.Logger
}

// NewService creates a performance service
func NewService(catalog repositories.CatalogRepository, loader SeriesLoader, log *logger.Logger) *Service {
	return &Service{
		catalog: catalog,
		loader:  loader,
		logger:  log,
	}
}

// ExcelPerformance runs the load, filter, downsample, normalize and format stages for a basket
func (s *Service) ExcelPerformance(ctx context.Context, basketID entities.EntityID, period string) (*entities.ExcelPerformance, error) {
	if strings.TrimSpace(period) == "" {
		period = DefaultPeriod
	}

	ctx, span := tracer.Start(ctx, "performance.excel")
	defer span.End()
	span.SetAttributes(
		attribute.String("basket.id", basketID.String()),
		attribute.String("performance.period", period),
	)

	start := time.Now()
	result, err := s.run(ctx, basketID, period)

	outcome := "success"
	points := 0
	switch {
	case err == nil:
		points = len(result.Performance)
		span.SetAttributes(attribute.Int("performance.points", points))
	case apperrors.IsNotFound(err):
		outcome = "not_found"
	default:
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.CtxError(ctx, "Failed to build excel performance",
			"basket_id", sanitize.LogString(basketID.String()),
			"period", sanitize.LogString(period),
			"error", err)
	}
	metrics.RecordPerformancePipeline(ParsePeriod(period).Name, outcome, time.Since(start).Seconds(), points)

	return result, err
}

func (s *Service) run(ctx context.Context, basketID entities.EntityID, period string) (*entities.ExcelPerformance, error) {
	basket, err := s.catalog.GetBasket(ctx, basketID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.WrapNotFound(err, "Basket not found")
		}
		return nil, apperrors.Processing(err, "Error reading basket")
	}

	if basket.ExcelFile == "" {
		return nil, apperrors.NotFound("No Excel file associated with this basket")
	}

	records, err := s.load(ctx, basket.ExcelFile)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return nil, apperrors.WrapNotFound(err, "Excel file not found: "+basket.ExcelFile)
		}
		return nil, apperrors.Processing(err, "Error reading Excel file")
	}

	window := ParsePeriod(period)
	filtered, startDate, endDate := FilterByPeriod(records, window)
	sampled := Downsample(filtered, window.Stride)

	normalized, err := Normalize(sampled)
	if err != nil {
		return nil, apperrors.Processing(err, "Error reading Excel file")
	}

	s.logger.CtxInfo(ctx, "Built excel performance",
		"basket_id", basketID,
		"period", sanitize.LogString(period),
		"records", len(records),
		"filtered", len(filtered),
		"points", len(normalized))

	return &entities.ExcelPerformance{
		Performance: Format(normalized),
		Period:      period,
		StartDate:   startDate.Format(dateFormat),
		EndDate:     endDate.Format(dateFormat),
	}, nil
}

func (s *Service) load(ctx context.Context, ref string) ([]entities.TimeSeriesRecord, error) {
	ctx, span := tracer.Start(ctx, "performance.load")
	defer span.End()
	span.SetAttributes(attribute.String("performance.file", ref))

	records, err := s.loader.Load(ctx, ref)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("performance.records", len(records)))
	return records, nil
}
