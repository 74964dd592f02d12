package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one fetched quote: 1 unit of FromCurrencyCode buys Rate units
// of ToCurrencyCode. Rows are immutable once written; the latest row for a pair
// is the one with the greatest FetchedAt.
type ExchangeRate struct {
	ExchangeRateID    string          `json:"exchangeRateID"`
	FromCurrencyCode  string          `json:"fromCurrencyCode"` // always the base currency
	ToCurrencyCode    string          `json:"toCurrencyCode"`
	Rate              decimal.Decimal `json:"rate"`
	FetchedAt         time.Time       `json:"fetchedAt"`
	ProviderID        string          `json:"providerID"`
	SignificantChange bool            `json:"significantChange"`
}

// RefreshResult summarises a successful refresh cycle.
type RefreshResult struct {
	BaseCurrency       string         `json:"baseCurrency"`
	Provider           string         `json:"provider"`
	FetchedAt          time.Time      `json:"fetchedAt"`
	Rates              []ExchangeRate `json:"rates"`
	SignificantChanges []string       `json:"significantChanges"`
	SkippedProviders   []string       `json:"skippedProviders"` // providers that failed before the winner
}

// RateChangedEvent is emitted for every currency whose rate moved by more than
// the configured significant-change threshold.
type RateChangedEvent struct {
	BaseCurrency      string          `json:"baseCurrency"`
	CurrencyCode      string          `json:"currencyCode"`
	PreviousRate      decimal.Decimal `json:"previousRate"`
	NewRate           decimal.Decimal `json:"newRate"`
	RelativeDeviation decimal.Decimal `json:"relativeDeviation"`
	Provider          string          `json:"provider"`
	FetchedAt         time.Time       `json:"fetchedAt"`
}

// ProviderStatus reports the circuit breaker view of a rate provider.
type ProviderStatus struct {
	Name                string `json:"name"`
	Priority            int    `json:"priority"`
	State               string `json:"state"` // closed, open, half-open
	ConsecutiveFailures uint32 `json:"consecutiveFailures"`
}

// Conversion is the outcome of converting an amount between two currencies.
type Conversion struct {
	AmountMinor    int64           `json:"amountMinor"`
	FromCurrency   string          `json:"fromCurrency"`
	ToCurrency     string          `json:"toCurrency"`
	ConvertedMinor int64           `json:"convertedMinor"`
	EffectiveRate  decimal.Decimal `json:"effectiveRate"`
	RatesAsOf      time.Time       `json:"ratesAsOf"` // oldest leg used; zero for identity conversions
}

// RateQuote is one row of the current rate table as served to clients.
type RateQuote struct {
	CurrencyCode      string          `json:"currencyCode"`
	Rate              decimal.Decimal `json:"rate"`
	FetchedAt         time.Time       `json:"fetchedAt"`
	ProviderID        string          `json:"providerID"`
	SignificantChange bool            `json:"significantChange"`
	AgeSeconds        int64           `json:"ageSeconds"`
	Stale             bool            `json:"stale"` // older than the staleness threshold, not used for conversion
}

// RateTable is the current snapshot of base-relative rates.
type RateTable struct {
	BaseCurrency string      `json:"baseCurrency"`
	PublishedAt  time.Time   `json:"publishedAt"`
	Rates        []RateQuote `json:"rates"`
}
