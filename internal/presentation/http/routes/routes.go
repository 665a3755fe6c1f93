package routes

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/sangkips/storefront-admin/internal/config"
	domainRepo "github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/internal/presentation/http/handler"
	"github.com/sangkips/storefront-admin/internal/presentation/http/middleware"
)

// Module provides the gin engine and the rate limiter it shares with the
// maintenance worker
var Module = fx.Provide(Setup, NewRateLimiter)

// NewRateLimiter builds the per-client limiter from config
func NewRateLimiter(cfg *config.Config) *middleware.ClientRateLimiter {
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.Burst,
	})
}

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	fx.In

	Health   *handler.HealthHandler
	Customer *handler.CustomerHandler
	Item     *handler.ItemHandler
	Order    *handler.OrderHandler
	Invoice  *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	fx.In

	Cfg             *config.Config
	Log             *slog.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h Handlers, deps Deps) *gin.Engine {
	if deps.Cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger(deps.Log))
	router.Use(middleware.Recovery(deps.Log))
	router.Use(middleware.CORS(deps.Cfg.CORS))
	router.Use(middleware.DecompressRequest())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/health", h.Health.Check)

	v1 := router.Group("/api/v1")
	if deps.Cfg.RateLimit.Enabled {
		v1.Use(deps.RateLimiter.Middleware())
	}
	v1.GET("/health", h.Health.Check)

	registerCustomerRoutes(v1, h)
	registerItemRoutes(v1, h)
	registerOrderRoutes(v1, h, deps)
	registerPrinterRoutes(v1, h)

	return router
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerItemRoutes(v1 *gin.RouterGroup, h Handlers) {
	items := v1.Group("/items")
	{
		items.GET("", h.Item.List)
		items.POST("", h.Item.Create)
		items.POST("/import", h.Item.Import)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h Handlers, deps Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
		TTL:  deps.Cfg.Idempotency.TTL,
		Log:  deps.Log,
	})

	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", idempotent, h.Order.Create)
		orders.POST("/preview", h.Order.Preview)
		orders.GET("/summary", h.Order.Summary)
		orders.GET("/export", h.Invoice.Export)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.DELETE("/:id", h.Order.Delete)
		orders.POST("/:id/pay", idempotent, h.Order.Pay)
		orders.GET("/:id/invoice", h.Invoice.Get)
		orders.GET("/:id/invoice.pdf", h.Invoice.PDF)
		orders.POST("/:id/print", h.Invoice.Print)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h Handlers) {
	printer := v1.Group("/printer")
	{
		printer.GET("/status", h.Invoice.PrinterStatus)
		printer.POST("/test", h.Invoice.TestPrint)
	}
}
