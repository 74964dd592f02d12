package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one row of the append-only exchange_rates history.
type ExchangeRate struct {
	ExchangeRateID    string          `db:"exchange_rate_id"`
	FromCurrencyCode  string          `db:"from_currency_code"`
	ToCurrencyCode    string          `db:"to_currency_code"`
	Rate              decimal.Decimal `db:"rate"`
	FetchedAt         time.Time       `db:"fetched_at"`
	ProviderID        string          `db:"provider_id"`
	SignificantChange bool            `db:"significant_change"`
	CreatedAt         time.Time       `db:"created_at"`
}
