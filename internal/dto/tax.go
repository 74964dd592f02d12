package dto

import (
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateTaxRequest defines the body of a tax calculation.
type CalculateTaxRequest struct {
	CountryCode string `json:"countryCode" binding:"required,country"`
	SubRegion   string `json:"subRegion" binding:"omitempty,max=3,alphanum"`
	Category    string `json:"category" binding:"omitempty,max=64"`
	AmountMinor *int64 `json:"amountMinor" binding:"required,min=0"`
	Inclusive   *bool  `json:"inclusive"`
}

// ToDomain converts the request into a domain.TaxRequest.
func (r CalculateTaxRequest) ToDomain() domain.TaxRequest {
	return domain.TaxRequest{
		CountryCode: r.CountryCode,
		SubRegion:   r.SubRegion,
		Category:    r.Category,
		AmountMinor: *r.AmountMinor,
		Inclusive:   r.Inclusive,
	}
}

// TaxResponse is the computed tax for one amount.
type TaxResponse struct {
	Jurisdiction   string          `json:"jurisdiction"`
	TaxType        string          `json:"taxType"`
	Rate           decimal.Decimal `json:"rate"`
	Inclusive      bool            `json:"inclusive"`
	AmountMinor    int64           `json:"amountMinor"`
	TaxMinor       int64           `json:"taxMinor"`
	TotalMinor     int64           `json:"totalMinor"`
	CurrencyCode   string          `json:"currencyCode"`
	FormattedTax   string          `json:"formattedTax,omitempty"`
	FormattedTotal string          `json:"formattedTotal,omitempty"`
}

// ToTaxResponse converts a domain.TaxResult to TaxResponse DTO
func ToTaxResponse(t *domain.TaxResult) TaxResponse {
	return TaxResponse{
		Jurisdiction: t.Jurisdiction,
		TaxType:      string(t.TaxType),
		Rate:         t.Rate,
		Inclusive:    t.Inclusive,
		AmountMinor:  t.AmountMinor,
		TaxMinor:     t.TaxMinor,
		TotalMinor:   t.TotalMinor,
		CurrencyCode: t.CurrencyCode,
	}
}
