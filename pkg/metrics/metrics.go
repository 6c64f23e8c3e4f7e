package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alphanifty_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alphanifty_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	RateLimitHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alphanifty_rate_limit_hits_total",
			Help: "Total number of rate limit hits",
		},
		[]string{"endpoint"},
	)

	// Performance pipeline metrics
	PerformancePipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alphanifty_performance_pipeline_duration_seconds",
			Help:    "Time spent loading and resampling a basket time series",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"period", "outcome"},
	)

	PerformancePointsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alphanifty_performance_points_returned",
			Help:    "Number of points in an excel performance response",
			Buckets: []float64{0, 10, 25, 50, 100, 250, 500},
		},
		[]string{"period"},
	)

	// Business metrics
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alphanifty_calculations_total",
			Help: "Total number of calculator invocations",
		},
		[]string{"calculator", "status"},
	)

	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alphanifty_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "status"},
	)

	CatalogLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alphanifty_catalog_lookups_total",
			Help: "Total number of catalog lookups by entity and result",
		},
		[]string{"entity", "result"},
	)

	// Store metrics
	CartStoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alphanifty_cart_store_operation_duration_seconds",
			Help:    "Cart store operation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"backend", "operation"},
	)

	SeriesCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alphanifty_series_cache_lookups_total",
			Help: "NAV series cache lookups by result",
		},
		[]string{"result"},
	)

	CircuitBreakerStateGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "alphanifty_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"service"},
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint, statusCode string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordRateLimitHit records a rejected request
func RecordRateLimitHit(endpoint string) {
	RateLimitHitsTotal.WithLabelValues(endpoint).Inc()
}

// RecordPerformancePipeline records one run of the excel performance pipeline
func RecordPerformancePipeline(period, outcome string, duration float64, points int) {
	PerformancePipelineDuration.WithLabelValues(period, outcome).Observe(duration)
	if outcome == "success" {
		PerformancePointsReturned.WithLabelValues(period).Observe(float64(points))
	}
}

// RecordCalculation records a calculator invocation
func RecordCalculation(calculator, status string) {
	CalculationsTotal.WithLabelValues(calculator, status).Inc()
}

// RecordCartOperation records a cart operation outcome
func RecordCartOperation(operation, status string) {
	CartOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordCatalogLookup records a catalog lookup
func RecordCatalogLookup(entity string, found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	CatalogLookupsTotal.WithLabelValues(entity, result).Inc()
}

// RecordCartStoreOperation records cart store latency
func RecordCartStoreOperation(backend, operation string, duration float64) {
	CartStoreOperationDuration.WithLabelValues(backend, operation).Observe(duration)
}

// RecordSeriesCacheLookup records a NAV series cache hit or miss
func RecordSeriesCacheLookup(hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}
	SeriesCacheLookupsTotal.WithLabelValues(result).Inc()
}

// UpdateCircuitBreakerState updates circuit breaker state
func UpdateCircuitBreakerState(service string, state float64) {
	CircuitBreakerStateGauge.WithLabelValues(service).Set(state)
}
