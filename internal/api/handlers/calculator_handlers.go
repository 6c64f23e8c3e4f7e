package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/services/calculator"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
	"github.com/alphanifty/alphanifty_service/pkg/metrics"
)

// CalculatorHandler serves the SIP, lumpsum and goal calculators
type CalculatorHandler struct {
	calculator *calculator.Service
	logger     *logger.Logger
}

// NewCalculatorHandler creates a calculator handler
func NewCalculatorHandler(calculatorService *calculator.Service, log *logger.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		calculator: calculatorService,
		logger:     log,
	}
}

// SIP handles POST /api/calculators/sip
func (h *CalculatorHandler) SIP(c *gin.Context) {
	var req entities.SIPRequest
	if err := bindJSON(c, &req); err != nil {
		metrics.RecordCalculation("sip", "invalid")
		respondError(c, h.logger, err)
		return
	}

	result, err := h.calculator.SIP(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, result)
}

// Lumpsum handles POST /api/calculators/lumpsum
func (h *CalculatorHandler) Lumpsum(c *gin.Context) {
	var req entities.LumpsumRequest
	if err := bindJSON(c, &req); err != nil {
		metrics.RecordCalculation("lumpsum", "invalid")
		respondError(c, h.logger, err)
		return
	}

	result, err := h.calculator.Lumpsum(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, result)
}

// Goal handles POST /api/calculators/goal
func (h *CalculatorHandler) Goal(c *gin.Context) {
	var req entities.GoalRequest
	if err := bindJSON(c, &req); err != nil {
		metrics.RecordCalculation("goal", "invalid")
		respondError(c, h.logger, err)
		return
	}

	result, err := h.calculator.Goal(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, result)
}
