package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alphanifty/alphanifty_service/internal/api/handlers"
	"github.com/alphanifty/alphanifty_service/internal/api/middleware"
	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/infrastructure/di"
	"github.com/alphanifty/alphanifty_service/pkg/ratelimit"
	"github.com/alphanifty/alphanifty_service/pkg/tracing"
)

// SetupRoutes configures all application routes
func SetupRoutes(container *di.Container) *gin.Engine {
	router := gin.New()

	// Tracing first so every later middleware runs inside the request span
	router.Use(tracing.HTTPMiddleware())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger(container.Logger))
	router.Use(middleware.Recovery(container.Logger))
	router.Use(middleware.CORS(container.Config.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(
		ratelimit.New(container.Config.Server.RateLimitPerMin, container.Redis, container.ZapLog),
		container.Logger,
	))
	router.Use(middleware.SecurityHeaders())

	healthHandler := handlers.NewHealthHandler(container.HealthChecker, container.Logger)
	catalogHandler := handlers.NewCatalogHandler(container.CatalogService, container.PerformanceService, container.Logger)
	calculatorHandler := handlers.NewCalculatorHandler(container.CalculatorService, container.Logger)
	cartHandler := handlers.NewCartHandler(container.CartService, container.Logger)
	portfolioHandler := handlers.NewPortfolioHandler(container.PortfolioService, container.Logger)

	// Operational endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/version", handlers.VersionHandler())
	router.GET("/metrics", handlers.Metrics())

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.APIHealth)

		baskets := api.Group("/baskets")
		{
			baskets.GET("", catalogHandler.ListBaskets)
			baskets.GET("/:id", catalogHandler.GetBasket)
			baskets.GET("/:id/performance", catalogHandler.GetBasketPerformance)
			baskets.GET("/:id/excel-performance", catalogHandler.GetBasketExcelPerformance)
		}

		funds := api.Group("/funds")
		{
			funds.GET("", catalogHandler.ListFunds)
			funds.GET("/:id", catalogHandler.GetFund)
		}

		calculators := api.Group("/calculators")
		{
			calculators.POST("/sip", calculatorHandler.SIP)
			calculators.POST("/lumpsum", calculatorHandler.Lumpsum)
			calculators.POST("/goal", calculatorHandler.Goal)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddItem)
			cart.POST("/clear", cartHandler.ClearCart)
			cart.PUT("/:id", cartHandler.UpdateItem)
			cart.DELETE("/:id", cartHandler.RemoveItem)
		}

		api.GET("/portfolio", portfolioHandler.GetPortfolio)
		api.GET("/search", catalogHandler.Search)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entities.Envelope{
			Status:  entities.StatusError,
			Message: "Resource not found",
		})
	})

	return router
}
