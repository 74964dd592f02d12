package services

import (
	"context"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyFormatterSvc renders amounts for display.
type CurrencyFormatterSvc interface {
	// FormatAmount renders amountMinor using the currency's symbol and separators.
	FormatAmount(ctx context.Context, amountMinor int64, currencyCode string) (string, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyFormatterSvc
}

// CatalogSvcFacade exposes the country table and catalog administration.
type CatalogSvcFacade interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	GetCountry(ctx context.Context, countryCode string) (*domain.Country, error)
	// ReloadCatalog validates a fresh catalog before swapping it in.
	ReloadCatalog(ctx context.Context) error
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetCurrentRates returns the rate table conversions are served from.
	GetCurrentRates(ctx context.Context) (*domain.RateTable, error)

	// GetRateHistory returns persisted base→code rows, newest first, plus a token for the next page.
	GetRateHistory(ctx context.Context, currencyCode string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error)

	// ProviderStatuses reports each provider's circuit breaker, in priority order.
	ProviderStatuses(ctx context.Context) []domain.ProviderStatus
}

// ExchangeRateRefresherSvc drives the provider orchestration.
type ExchangeRateRefresherSvc interface {
	// RefreshRates fetches a full rate map from the first healthy provider and publishes it.
	RefreshRates(ctx context.Context) (*domain.RefreshResult, error)

	// SeedRates loads the latest persisted rates into the store at startup.
	SeedRates(ctx context.Context) error

	// CheckStaleness reports the age of the oldest rate and whether conversions would fail closed.
	CheckStaleness(ctx context.Context) (time.Duration, bool)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateRefresherSvc
}

// ConversionSvcFacade converts amounts between currencies.
type ConversionSvcFacade interface {
	// Convert returns apperrors.ErrConversionUnavailable when a leg has no fresh rate.
	Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*domain.Conversion, error)
}
