package repositories

import (
	"context"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
)

// ExchangeRateReader defines read operations for the exchange rate history
type ExchangeRateReader interface {
	// FindLatestExchangeRates returns the newest row per target currency quoted against base.
	FindLatestExchangeRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error)

	// ListExchangeRateHistory returns up to limit rows for base→target, newest first,
	// using token-based pagination. It returns the rows, a token for the next page, and an error.
	ListExchangeRateHistory(ctx context.Context, baseCurrency, targetCurrency string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error)
}

// ExchangeRateWriter defines write operations for the exchange rate history.
// History is append-only: rows are never updated or deleted.
type ExchangeRateWriter interface {
	// SaveExchangeRates appends one refresh cycle's rows atomically.
	SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
