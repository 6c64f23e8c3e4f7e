package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/pkg/metrics"
)

// SeriesLoader reads a NAV series by file reference
type SeriesLoader interface {
	Load(ctx context.Context, ref string) ([]entities.TimeSeriesRecord, error)
}

type seriesEntry struct {
	records  []entities.TimeSeriesRecord
	loadedAt time.Time
}

// SeriesCache keeps parsed NAV series in memory for ttl so repeated
// performance requests skip the workbook parse. Failed loads are not cached.
type SeriesCache struct {
	next   SeriesLoader
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	mu      sync.RWMutex
	entries map[string]seriesEntry
}

// NewSeriesCache wraps next. A non-positive ttl returns next unchanged.
func NewSeriesCache(next SeriesLoader, ttl time.Duration, logger *zap.Logger) SeriesLoader {
	if ttl <= 0 {
		return next
	}
	return newSeriesCache(next, ttl, logger)
}

func newSeriesCache(next SeriesLoader, ttl time.Duration, logger *zap.Logger) *SeriesCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeriesCache{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
		entries: make(map[string]seriesEntry),
	}
}

// Load returns a copy of the cached series for ref, loading it on a miss
func (c *SeriesCache) Load(ctx context.Context, ref string) ([]entities.TimeSeriesRecord, error) {
	c.mu.RLock()
	entry, ok := c.entries[ref]
	c.mu.RUnlock()

	if ok && c.now().Sub(entry.loadedAt) < c.ttl {
		metrics.RecordSeriesCacheLookup(true)
		return copyRecords(entry.records), nil
	}
	metrics.RecordSeriesCacheLookup(false)

	records, err := c.next.Load(ctx, ref)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[ref] = seriesEntry{records: copyRecords(records), loadedAt: c.now()}
	c.mu.Unlock()

	c.logger.Debug("Cached NAV series", zap.String("ref", ref), zap.Int("records", len(records)))
	return records, nil
}

func copyRecords(records []entities.TimeSeriesRecord) []entities.TimeSeriesRecord {
	out := make([]entities.TimeSeriesRecord, len(records))
	copy(out, records)
	return out
}
