package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alphanifty/alphanifty_service/internal/domain/services/portfolio"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
)

// PortfolioHandler serves the portfolio summary
type PortfolioHandler struct {
	portfolio *portfolio.Service
	logger    *logger.Logger
}

// NewPortfolioHandler creates a portfolio handler
func NewPortfolioHandler(portfolioService *portfolio.Service, log *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolio: portfolioService,
		logger:    log,
	}
}

// GetPortfolio handles GET /api/portfolio?userId=
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	summary, err := h.portfolio.Get(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, summary)
}
