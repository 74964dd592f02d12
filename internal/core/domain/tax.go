package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TaxType names the kind of consumption tax a jurisdiction levies.
type TaxType string

const (
	TaxVAT         TaxType = "VAT"
	TaxGST         TaxType = "GST"
	TaxSales       TaxType = "sales"
	TaxConsumption TaxType = "consumption"
)

// ParseTaxType validates a tax type name (case-insensitive).
func ParseTaxType(s string) (TaxType, error) {
	for _, t := range []TaxType{TaxVAT, TaxGST, TaxSales, TaxConsumption} {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tax type %q", s)
}

// TaxRate is the tax configuration for a country ("GB") or sub-region ("US-CA").
type TaxRate struct {
	Jurisdiction  string                     `json:"jurisdiction"`
	CountryCode   string                     `json:"countryCode"`
	TaxType       TaxType                    `json:"taxType"`
	Rate          decimal.Decimal            `json:"rate"` // fraction, 0.20 for 20%
	Inclusive     bool                       `json:"inclusive"`
	CategoryRates map[string]decimal.Decimal `json:"categoryRates,omitempty"`
}

// EffectiveRate returns the category override when one exists, else the base rate.
func (t TaxRate) EffectiveRate(category string) decimal.Decimal {
	if r, ok := t.CategoryRates[strings.ToLower(category)]; ok {
		return r
	}
	return t.Rate
}

var one = decimal.NewFromInt(1)

// ComputeTax splits amountMinor into tax and total for the given rate.
// Only the tax amount is rounded (half-up, to whole minor units); the total is
// derived from it so order lines never drift by a cent.
func ComputeTax(amountMinor int64, rate decimal.Decimal, inclusive bool) (taxMinor, totalMinor int64) {
	amount := decimal.NewFromInt(amountMinor)
	if inclusive {
		net := amount.DivRound(one.Add(rate), 0)
		taxMinor = amountMinor - net.IntPart()
		return taxMinor, amountMinor
	}
	taxMinor = amount.Mul(rate).Round(0).IntPart()
	return taxMinor, amountMinor + taxMinor
}

// TaxResult is returned by the tax engine.
type TaxResult struct {
	Jurisdiction string          `json:"jurisdiction"`
	TaxType      TaxType         `json:"taxType"`
	Rate         decimal.Decimal `json:"rate"`
	Inclusive    bool            `json:"inclusive"`
	AmountMinor  int64           `json:"amountMinor"`
	TaxMinor     int64           `json:"taxMinor"`
	TotalMinor   int64           `json:"totalMinor"`
	CurrencyCode string          `json:"currencyCode"`
}

// TaxRequest asks for the tax on one amount. SubRegion narrows the jurisdiction
// (e.g. "CA" for US-CA); a nil Inclusive uses the jurisdiction's pricing mode.
type TaxRequest struct {
	CountryCode string
	SubRegion   string
	Category    string
	AmountMinor int64
	Inclusive   *bool
}
