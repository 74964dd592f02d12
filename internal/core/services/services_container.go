package services

import (
	"log/slog"

	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portsrepo "github.com/SscSPs/intl_pricing_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/core/ratestore"
	"github.com/SscSPs/intl_pricing_service/internal/infrastructure/metrics"
	"github.com/SscSPs/intl_pricing_service/internal/platform/config"
)

// Dependencies are the collaborators the services need besides repositories.
type Dependencies struct {
	Catalog    *catalog.Holder
	Rates      *ratestore.Store
	Providers  []domain.ExchangeRateProvider // priority order
	Geolocator domain.Geolocator
	Publisher  domain.RateEventPublisher
	Metrics    *metrics.PricingMetrics
	Logger     *slog.Logger
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Dependencies) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(deps.Catalog)
	container.Catalog = NewCatalogService(deps.Catalog, deps.Metrics)

	container.ExchangeRate = NewExchangeRateService(
		deps.Catalog,
		deps.Rates,
		deps.Providers,
		WithRateRepository(repos.ExchangeRateRepo),
		WithRateEventPublisher(deps.Publisher),
		WithRefreshMetrics(deps.Metrics),
		WithRefreshLogger(deps.Logger),
		WithProviderTimeout(cfg.RateProviderTimeout),
		WithRefreshTimeout(cfg.RateRefreshTimeout),
		WithRateStaleness(cfg.RateStalenessThreshold),
		WithSignificantChangeThreshold(cfg.RateSignificantChangeThreshold),
		WithBreakerSettings(cfg.BreakerFailureThreshold, cfg.BreakerCooldown),
	)

	container.Conversion = NewConversionService(
		deps.Catalog,
		deps.Rates,
		WithConversionStaleness(cfg.RateStalenessThreshold),
		WithConversionMetrics(deps.Metrics),
	)

	container.Shipping = NewShippingService(deps.Catalog, deps.Metrics)
	container.Tax = NewTaxService(deps.Catalog, deps.Metrics)

	container.Preference = NewPreferenceService(
		repos.PreferenceRepo,
		deps.Catalog,
		WithGeolocator(deps.Geolocator),
		WithPreferenceDefaults(domain.PreferenceDefaults{
			Locale:   cfg.DefaultLocale,
			Timezone: cfg.DefaultTimezone,
		}),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.CatalogSvcFacade      = (*CatalogService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.ConversionSvcFacade   = (*ConversionService)(nil)
	_ portssvc.ShippingSvcFacade     = (*ShippingService)(nil)
	_ portssvc.TaxSvcFacade          = (*TaxService)(nil)
	_ portssvc.PreferenceSvcFacade   = (*PreferenceService)(nil)
)
