package dto

import (
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest holds the query parameters of a conversion.
type ConvertRequest struct {
	Amount *int64 `form:"amount" binding:"required,min=0"`
	From   string `form:"from" binding:"required,currency"`
	To     string `form:"to" binding:"required,currency"`
}

// ConversionResponse is a converted amount plus both sides formatted for display.
type ConversionResponse struct {
	AmountMinor     int64           `json:"amountMinor"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	ConvertedMinor  int64           `json:"convertedMinor"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"`
	RatesAsOf       *time.Time      `json:"ratesAsOf,omitempty"`
	FormattedAmount string          `json:"formattedAmount,omitempty"`
	FormattedResult string          `json:"formattedResult,omitempty"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	res := ConversionResponse{
		AmountMinor:    c.AmountMinor,
		FromCurrency:   c.FromCurrency,
		ToCurrency:     c.ToCurrency,
		ConvertedMinor: c.ConvertedMinor,
		EffectiveRate:  c.EffectiveRate,
	}
	if !c.RatesAsOf.IsZero() {
		asOf := c.RatesAsOf
		res.RatesAsOf = &asOf
	}
	return res
}

// ConversionUnavailableResponse tells the client to fall back to base-currency prices.
type ConversionUnavailableResponse struct {
	Error            string `json:"error"`
	FallbackCurrency string `json:"fallbackCurrency"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID    string          `json:"exchangeRateID"`
	FromCurrencyCode  string          `json:"fromCurrencyCode"`
	ToCurrencyCode    string          `json:"toCurrencyCode"`
	Rate              decimal.Decimal `json:"rate"`
	FetchedAt         time.Time       `json:"fetchedAt"`
	ProviderID        string          `json:"providerID"`
	SignificantChange bool            `json:"significantChange"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:    rate.ExchangeRateID,
		FromCurrencyCode:  rate.FromCurrencyCode,
		ToCurrencyCode:    rate.ToCurrencyCode,
		Rate:              rate.Rate,
		FetchedAt:         rate.FetchedAt,
		ProviderID:        rate.ProviderID,
		SignificantChange: rate.SignificantChange,
	}
}

// ToListExchangeRateResponse converts domain rows to DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i, r := range rates {
		res[i] = ToExchangeRateResponse(r)
	}
	return res
}

// RateHistoryRequest holds the query parameters of the history endpoint.
type RateHistoryRequest struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken" binding:"omitempty,max=256"`
}

// RateHistoryResponse is one page of rate history, newest first.
type RateHistoryResponse struct {
	Rates     []ExchangeRateResponse `json:"rates"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// RefreshResponse summarises a manual refresh.
type RefreshResponse struct {
	Provider           string                 `json:"provider"`
	FetchedAt          time.Time              `json:"fetchedAt"`
	Rates              []ExchangeRateResponse `json:"rates"`
	SignificantChanges []string               `json:"significantChanges"`
	SkippedProviders   []string               `json:"skippedProviders"`
}

// ToRefreshResponse converts a domain.RefreshResult to RefreshResponse DTO
func ToRefreshResponse(r *domain.RefreshResult) RefreshResponse {
	res := RefreshResponse{
		Provider:           r.Provider,
		FetchedAt:          r.FetchedAt,
		Rates:              ToListExchangeRateResponse(r.Rates),
		SignificantChanges: r.SignificantChanges,
		SkippedProviders:   r.SkippedProviders,
	}
	if res.SignificantChanges == nil {
		res.SignificantChanges = []string{}
	}
	if res.SkippedProviders == nil {
		res.SkippedProviders = []string{}
	}
	return res
}

// RateQuoteResponse is one row of the current rate table.
type RateQuoteResponse struct {
	CurrencyCode      string          `json:"currencyCode"`
	Rate              decimal.Decimal `json:"rate"`
	FetchedAt         time.Time       `json:"fetchedAt"`
	ProviderID        string          `json:"providerID"`
	SignificantChange bool            `json:"significantChange"`
	AgeSeconds        int64           `json:"ageSeconds"`
	Stale             bool            `json:"stale"`
}

// RateTableResponse is the current snapshot of base-relative rates.
type RateTableResponse struct {
	BaseCurrency string              `json:"baseCurrency"`
	PublishedAt  *time.Time          `json:"publishedAt,omitempty"`
	Rates        []RateQuoteResponse `json:"rates"`
}

// ToRateTableResponse converts a domain.RateTable to RateTableResponse DTO
func ToRateTableResponse(t *domain.RateTable) RateTableResponse {
	res := RateTableResponse{
		BaseCurrency: t.BaseCurrency,
		Rates:        make([]RateQuoteResponse, len(t.Rates)),
	}
	if !t.PublishedAt.IsZero() {
		published := t.PublishedAt
		res.PublishedAt = &published
	}
	for i, q := range t.Rates {
		res.Rates[i] = RateQuoteResponse(q)
	}
	return res
}

// ProviderStatusResponse is the circuit breaker view of one provider.
type ProviderStatusResponse struct {
	Name                string `json:"name"`
	Priority            int    `json:"priority"`
	State               string `json:"state"`
	ConsecutiveFailures uint32 `json:"consecutiveFailures"`
}

// ToListProviderStatusResponse converts provider statuses to DTOs.
func ToListProviderStatusResponse(statuses []domain.ProviderStatus) []ProviderStatusResponse {
	res := make([]ProviderStatusResponse, len(statuses))
	for i, s := range statuses {
		res[i] = ProviderStatusResponse(s)
	}
	return res
}
