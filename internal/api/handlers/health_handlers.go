package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/pkg/health"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
	"github.com/alphanifty/alphanifty_service/pkg/version"
)

var startTime = time.Now()

// HealthHandler handles health check endpoints
type HealthHandler struct {
	checker *health.HealthChecker
	logger  *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker *health.HealthChecker, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// APIHealth handles GET /api/health
func (h *HealthHandler) APIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, entities.HealthStatus{
		Status:  entities.StatusSuccess,
		Message: "Alphanifty API is running",
		Version: version.APIVersion,
	})
}

// Health runs every registered check
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	status, checks := h.checker.Check(ctx)

	statusCode := http.StatusOK
	if status == health.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
		h.logger.Warnw("Health check failed", "checks", checks)
	}

	c.JSON(statusCode, health.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   version.Get().Version,
		Uptime:    time.Since(startTime).String(),
		Checks:    checks,
	})
}

// Ready reports whether the service can take traffic. Degraded components do not block readiness.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, checks := h.checker.Check(ctx)

	ready := status != health.StatusUnhealthy
	statusCode := http.StatusOK
	label := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		label = "not_ready"
	}

	c.JSON(statusCode, gin.H{
		"status":    label,
		"timestamp": time.Now(),
		"checks":    checks,
	})
}

// Live checks if the application is alive
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	})
}
