package domain_test

import (
	"math"
	"testing"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	usd := domain.Currency{CurrencyCode: "USD", Symbol: "$", Precision: 2, GroupingSeparator: ",", DecimalSeparator: "."}
	jpy := domain.Currency{CurrencyCode: "JPY", Symbol: "¥", Precision: 0, GroupingSeparator: ","}
	eur := domain.Currency{CurrencyCode: "EUR", Symbol: "€", Precision: 2, GroupingSeparator: ".", DecimalSeparator: ",", SymbolPosition: domain.SymbolSuffix}

	tests := []struct {
		name   string
		amount int64
		cur    domain.Currency
		want   string
	}{
		{"usd grouped", 123456, usd, "$1,234.56"},
		{"usd small", 5, usd, "$0.05"},
		{"usd negative", -100050, usd, "-$1,000.50"},
		{"jpy no minor units", 123456, jpy, "¥123,456"},
		{"eur suffix", 123456, eur, "1.234,56 €"},
		{"millions", 123456789, usd, "$1,234,567.89"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatAmount(tt.amount, tt.cur))
		})
	}
}

func TestShippingRate_CostFor(t *testing.T) {
	rate := domain.ShippingRate{
		Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 500, PriceMinor: 500}, {MaxWeightGrams: 2000, PriceMinor: 1200}},
		OverageUnitGrams: 1000,
		OverageRateMinor: 300,
	}

	assert.Equal(t, int64(500), rate.CostFor(1))
	assert.Equal(t, int64(500), rate.CostFor(500))
	assert.Equal(t, int64(1200), rate.CostFor(501))
	assert.Equal(t, int64(1200), rate.CostFor(2000))
	assert.Equal(t, int64(1500), rate.CostFor(2500))
	assert.Equal(t, int64(1500), rate.CostFor(3000))
	assert.Equal(t, int64(1800), rate.CostFor(3001))

	prev := int64(0)
	for w := int64(1); w <= 10000; w += 37 {
		cost := rate.CostFor(w)
		require.GreaterOrEqual(t, cost, prev, "weight %d", w)
		prev = cost
	}
}

func TestShippingRate_CostForSaturates(t *testing.T) {
	rate := domain.ShippingRate{
		Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 1, PriceMinor: 100}},
		OverageUnitGrams: 1,
		OverageRateMinor: math.MaxInt64 / 4,
	}

	assert.Equal(t, int64(100), rate.CostFor(1))
	assert.Equal(t, int64(100+math.MaxInt64/4), rate.CostFor(2))
	assert.Equal(t, int64(math.MaxInt64), rate.CostFor(10))
	assert.Equal(t, int64(math.MaxInt64), rate.CostFor(math.MaxInt64))
	assert.Positive(t, rate.CostFor(domain.MaxWeightGrams))
}

func TestComputeTax(t *testing.T) {
	rate := decimal.RequireFromString("0.20")

	tax, total := domain.ComputeTax(12000, rate, true)
	assert.Equal(t, int64(2000), tax)
	assert.Equal(t, int64(12000), total)

	tax, total = domain.ComputeTax(10000, rate, false)
	assert.Equal(t, int64(2000), tax)
	assert.Equal(t, int64(12000), total)

	// 0.5 of a minor unit rounds up
	tax, total = domain.ComputeTax(25, decimal.RequireFromString("0.10"), false)
	assert.Equal(t, int64(3), tax)
	assert.Equal(t, int64(28), total)

	tax, total = domain.ComputeTax(999, decimal.Zero, false)
	assert.Zero(t, tax)
	assert.Equal(t, int64(999), total)
}

func TestTaxRate_EffectiveRate(t *testing.T) {
	tr := domain.TaxRate{
		Rate:          decimal.RequireFromString("0.20"),
		CategoryRates: map[string]decimal.Decimal{"books": decimal.Zero},
	}
	assert.True(t, tr.EffectiveRate("Books").IsZero())
	assert.True(t, tr.EffectiveRate("electronics").Equal(decimal.RequireFromString("0.20")))
}

func TestParseServiceLevel(t *testing.T) {
	level, err := domain.ParseServiceLevel(" Express ")
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceExpress, level)

	_, err = domain.ParseServiceLevel("teleport")
	assert.Error(t, err)
}

func TestParseTaxType(t *testing.T) {
	tt, err := domain.ParseTaxType("vat")
	require.NoError(t, err)
	assert.Equal(t, domain.TaxVAT, tt)

	_, err = domain.ParseTaxType("tithe")
	assert.Error(t, err)
}
