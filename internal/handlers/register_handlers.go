package handlers

import (
	"net/http"

	"github.com/SscSPs/intl_pricing_service/cmd/docs"
	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/SscSPs/intl_pricing_service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteOptions carries the optional pieces of the HTTP surface.
type RouteOptions struct {
	// RateLimiter throttles the public API per client IP when set.
	RateLimiter *limiter.Limiter
	// Gatherer is exposed on /metrics when set.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/", getHome)

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	setupAPIV1Routes(r, cfg, services, opts)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	v1 := r.Group("/api/v1")
	if opts.RateLimiter != nil {
		v1.Use(middleware.RateLimit(opts.RateLimiter))
	}
	// Anonymous shoppers are welcome; a valid token only personalises responses
	v1.Use(middleware.OptionalAuth(cfg.JWTSecret))

	registerCurrencyRoutes(v1, service.Currency)
	registerCountryRoutes(v1, service.Catalog)
	registerExchangeRateRoutes(v1, service.ExchangeRate, service.Conversion, service.Currency)
	registerShippingRoutes(v1, service.Shipping, service.Currency)
	registerTaxRoutes(v1, service.Tax, service.Currency)
	registerPreferenceRoutes(v1, service.Preference, cfg.JWTSecret)

	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRole(middleware.RoleAdmin))
	registerAdminRoutes(admin, service.ExchangeRate, service.Catalog)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
