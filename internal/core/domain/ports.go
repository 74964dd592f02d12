package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateProvider fetches base-relative rates from an external source.
// The returned map is keyed by ISO currency code: 1 base = rate units of code.
type ExchangeRateProvider interface {
	Name() string
	FetchRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)
}

// Geolocator maps an IP address to an ISO country code; ok is false when unknown.
type Geolocator interface {
	Lookup(ctx context.Context, ipAddress string) (countryCode string, ok bool)
}

// RateEventPublisher announces significant rate movements to other systems.
type RateEventPublisher interface {
	PublishRateChanges(ctx context.Context, events []RateChangedEvent) error
}
