// Package router assembles the Gin engine: middleware chain, operational
// endpoints and the /api/v1 routes.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finanzas/internal/config"
	_ "finanzas/internal/docs" // Import swagger docs
	"finanzas/internal/handlers"
	"finanzas/internal/middleware"
)

// Handlers groups the HTTP handlers mounted under /api/v1.
type Handlers struct {
	Projection   *handlers.ProjectionHandler
	Category     *handlers.CategoryHandler
	FixedExpense *handlers.FixedExpenseHandler
	Expense      *handlers.ExpenseHandler
	Fund         *handlers.FundHandler
	Period       *handlers.PeriodHandler
	Settings     *handlers.SettingsHandler
}

// New builds the engine. Request metrics are recorded through metrics and
// exposed on /metrics from gatherer.
func New(cfg *config.Config, h Handlers, metrics *middleware.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"},
	}))
	router.Use(middleware.RequestLogging())
	router.Use(metrics.Middleware())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NotFound())

	// No client IPs are taken from proxy headers.
	_ = router.SetTrustedProxies(nil)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	AttachRoutes(router.Group("/api/v1"), h)
	return router
}

// AttachRoutes mounts the API routes on group.
func AttachRoutes(group *gin.RouterGroup, h Handlers) {
	// Projection routes
	stats := group.Group("/estadisticas")
	stats.GET("/proyectar", h.Projection.Project)
	stats.POST("/override", h.Projection.UpsertOverride)
	stats.DELETE("/override", h.Projection.DeleteOverride)
	stats.GET("/overrides", h.Projection.ListOverrides)

	// Category routes
	categories := group.Group("/categorias")
	categories.POST("", h.Category.CreateCategory)
	categories.GET("", h.Category.ListCategories)
	categories.GET("/:id", h.Category.GetCategoryByID)
	categories.PUT("/:id", h.Category.UpdateCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)

	// Fixed expense routes
	fixed := group.Group("/gastos-fijos")
	fixed.POST("", h.FixedExpense.CreateFixedExpense)
	fixed.GET("", h.FixedExpense.ListFixedExpenses)
	fixed.GET("/:id", h.FixedExpense.GetFixedExpenseByID)
	fixed.PUT("/:id", h.FixedExpense.UpdateFixedExpense)
	fixed.DELETE("/:id", h.FixedExpense.DeactivateFixedExpense)

	// Expense routes
	expenses := group.Group("/gastos")
	expenses.POST("", h.Expense.CreateExpense)
	expenses.GET("", h.Expense.ListExpenses)
	expenses.GET("/:id", h.Expense.GetExpenseByID)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)

	// Fund routes
	funds := group.Group("/fondos")
	funds.POST("", h.Fund.CreateFund)
	funds.GET("", h.Fund.ListFunds)

	// Period routes
	periods := group.Group("/periodos")
	periods.GET("", h.Period.Get)
	periods.POST("", h.Period.Upsert)
	periods.GET("/actual", h.Period.Current)
	periods.GET("/listado", h.Period.List)
	periods.POST("/generar", h.Period.Generate)

	// Settings routes
	settings := group.Group("/config")
	settings.GET("/proyeccion", h.Settings.GetBaseline)
	settings.PUT("/proyeccion", h.Settings.UpdateBaseline)
}
