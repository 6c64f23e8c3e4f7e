package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/services/catalog"
	"github.com/alphanifty/alphanifty_service/internal/domain/services/performance"
	"github.com/alphanifty/alphanifty_service/pkg/logger"
)

// CatalogHandler serves baskets, funds, performance and search
type CatalogHandler struct {
	catalog     *catalog.Service
	performance *performance.Service
	logger      *logger.Logger
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(catalogService *catalog.Service, performanceService *performance.Service, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog:     catalogService,
		performance: performanceService,
		logger:      log,
	}
}

// ListBaskets handles GET /api/baskets
func (h *CatalogHandler) ListBaskets(c *gin.Context) {
	baskets, err := h.catalog.ListBaskets(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, baskets)
}

// GetBasket handles GET /api/baskets/:id
func (h *CatalogHandler) GetBasket(c *gin.Context) {
	basket, err := h.catalog.GetBasket(c.Request.Context(), entities.EntityID(c.Param("id")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, basket)
}

// GetBasketPerformance handles GET /api/baskets/:id/performance
func (h *CatalogHandler) GetBasketPerformance(c *gin.Context) {
	perf, err := h.catalog.BasketPerformance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, perf)
}

// GetBasketExcelPerformance handles GET /api/baskets/:id/excel-performance?period=
func (h *CatalogHandler) GetBasketExcelPerformance(c *gin.Context) {
	result, err := h.performance.ExcelPerformance(
		c.Request.Context(),
		entities.EntityID(c.Param("id")),
		c.DefaultQuery("period", performance.DefaultPeriod),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, result)
}

// ListFunds handles GET /api/funds
func (h *CatalogHandler) ListFunds(c *gin.Context) {
	funds, err := h.catalog.ListFunds(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, funds)
}

// GetFund handles GET /api/funds/:id
func (h *CatalogHandler) GetFund(c *gin.Context) {
	fund, err := h.catalog.GetFund(c.Request.Context(), entities.EntityID(c.Param("id")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, fund)
}

// Search handles GET /api/search?q=
func (h *CatalogHandler) Search(c *gin.Context) {
	result, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondSuccess(c, result)
}
