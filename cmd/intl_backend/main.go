package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/adapters/catalogcsv"
	"github.com/SscSPs/intl_pricing_service/internal/adapters/events"
	"github.com/SscSPs/intl_pricing_service/internal/adapters/geo"
	"github.com/SscSPs/intl_pricing_service/internal/adapters/providers"
	"github.com/SscSPs/intl_pricing_service/internal/app/background"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portsrepo "github.com/SscSPs/intl_pricing_service/internal/core/ports/repositories"
	"github.com/SscSPs/intl_pricing_service/internal/core/ratestore"
	"github.com/SscSPs/intl_pricing_service/internal/core/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/handlers"
	"github.com/SscSPs/intl_pricing_service/internal/infrastructure/metrics"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/SscSPs/intl_pricing_service/internal/platform/config"
	"github.com/SscSPs/intl_pricing_service/internal/repositories/database/pgsql"
	"github.com/SscSPs/intl_pricing_service/internal/repositories/memory"
	"github.com/SscSPs/intl_pricing_service/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

// @title International Pricing API
// @version 1.0
// @description Currency conversion, shipping and tax computation for an international storefront.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos := setupRepositories(ctx, cfg, logger)
	defer closeRepos()

	catalogSource := catalogcsv.NewDirSource(cfg.CatalogDir)
	holder, err := catalog.NewHolder(ctx, catalogSource, logger)
	if err != nil {
		logger.Error("Failed to load catalog", slog.String("dir", cfg.CatalogDir), slog.String("error", err.Error()))
		os.Exit(1)
	}
	base := holder.Current().Base().CurrencyCode
	logger.Info("Catalog loaded", slog.String("dir", cfg.CatalogDir), slog.String("base_currency", base))

	referenceRates, err := catalogSource.ReferenceRates()
	if err != nil {
		logger.Warn("Reference rates unavailable, static provider will be empty", slog.String("error", err.Error()))
	}
	rateProviders, err := providers.Build(cfg.RateProviders, providers.Settings{
		BaseCurrency:       base,
		OpenERAPIBaseURL:   cfg.OpenERAPIBaseURL,
		FrankfurterBaseURL: cfg.FrankfurterBaseURL,
		StaticRates:        referenceRates,
	}, providers.WithHTTPClient(&http.Client{Timeout: cfg.RateProviderTimeout}))
	if err != nil {
		logger.Error("Failed to configure rate providers", slog.String("error", err.Error()))
		os.Exit(1)
	}

	publisher := setupPublisher(cfg, logger)
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Failed to close rate event publisher", slog.String("error", cerr.Error()))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	pricingMetrics := metrics.NewPricingMetrics(registry)

	svc := services.NewServiceContainer(cfg, repos, services.Dependencies{
		Catalog:    holder,
		Rates:      ratestore.New(base),
		Providers:  rateProviders,
		Geolocator: geo.NewPrefixGeolocator(holder),
		Publisher:  publisher,
		Metrics:    pricingMetrics,
		Logger:     logger,
	})

	if err := svc.ExchangeRate.SeedRates(ctx); err != nil {
		logger.Warn("Failed to seed rates from history", slog.String("error", err.Error()))
	}

	tasks := background.NewBackgroundTasks(svc.ExchangeRate, cfg.RateRefreshInterval, logger)
	tasks.StartAll(ctx)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			logger.Error("Failed to register validators", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svc, handlers.RouteOptions{
		RateLimiter: rateLimiter,
		Gatherer:    registry,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	}
	tasks.Wait()
	logger.Info("Server stopped")
}

// setupRepositories returns pgx-backed repositories when a database URL is
// configured and in-memory ones otherwise.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func()) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory repositories")
		return memory.NewRepositoryProvider(), func() {}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
		dbPool.Close()
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }
}

type closablePublisher interface {
	domain.RateEventPublisher
	Close() error
}

func setupPublisher(cfg *config.Config, logger *slog.Logger) closablePublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NewLogRateEventPublisher(logger)
	}
	logger.Info("Publishing rate changes to Kafka",
		slog.Any("brokers", cfg.KafkaBrokers),
		slog.String("topic", cfg.KafkaRateTopic))
	return events.NewKafkaRateEventPublisher(cfg.KafkaBrokers, cfg.KafkaRateTopic)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "Accept-Language", handlers.TimezoneHeader)
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
