package performance

import (
	"fmt"
	"math"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/pkg/money"
)

const (
	dateFormat  = "2006-01-02"
	labelFormat = "Jan 2006"
)

// Downsample keeps the records at indices 0, stride, 2*stride and so on
func Downsample(records []entities.TimeSeriesRecord, stride int) []entities.TimeSeriesRecord {
	if stride < 1 {
		stride = 1
	}
	out := make([]entities.TimeSeriesRecord, 0, (len(records)+stride-1)/stride)
	for i := 0; i < len(records); i += stride {
		out = append(out, records[i])
	}
	return out
}

// Normalize rebases both NAV columns so the first record equals 100
func Normalize(records []entities.TimeSeriesRecord) ([]entities.NormalizedRecord, error) {
	if len(records) == 0 {
		return []entities.NormalizedRecord{}, nil
	}

	basePortfolio := records[0].PortfolioNAV
	baseBenchmark := records[0].BenchmarkNAV
	if basePortfolio == 0 || baseBenchmark == 0 {
		return nil, fmt.Errorf("%w: base value on %s is zero", ErrDataFormat, records[0].Date.Format(dateFormat))
	}

	out := make([]entities.NormalizedRecord, len(records))
	for i, r := range records {
		n := entities.NormalizedRecord{
			TimeSeriesRecord: r,
			PortfolioIndex:   r.PortfolioNAV / basePortfolio * 100,
			BenchmarkIndex:   r.BenchmarkNAV / baseBenchmark * 100,
		}
		if !isFinite(n.PortfolioNAV, n.BenchmarkNAV, n.PortfolioIndex, n.BenchmarkIndex) {
			return nil, fmt.Errorf("%w: non-finite value on %s", ErrDataFormat, r.Date.Format(dateFormat))
		}
		out[i] = n
	}
	return out, nil
}

// Format renders normalized records for the wire. Rounding happens here only.
func Format(records []entities.NormalizedRecord) []entities.PerformancePoint {
	out := make([]entities.PerformancePoint, len(records))
	for i, r := range records {
		out[i] = entities.PerformancePoint{
			Date:           r.Date.Format(dateFormat),
			Label:          r.Date.Format(labelFormat),
			PortfolioIndex: money.Round2(r.PortfolioIndex),
			BenchmarkIndex: money.Round2(r.BenchmarkIndex),
			PortfolioNAV:   money.Round2(r.PortfolioNAV),
			BenchmarkNAV:   money.Round2(r.BenchmarkNAV),
		}
	}
	return out
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
