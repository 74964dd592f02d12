package dto

import "github.com/SscSPs/intl_pricing_service/internal/core/domain"

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode      string `json:"currencyCode"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	SymbolPosition    string `json:"symbolPosition"`
	Precision         int    `json:"precision"`
	GroupingSeparator string `json:"groupingSeparator"`
	DecimalSeparator  string `json:"decimalSeparator"`
	IsBase            bool   `json:"isBase"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:      c.CurrencyCode,
		Name:              c.Name,
		Symbol:            c.Symbol,
		SymbolPosition:    string(c.SymbolPosition),
		Precision:         c.Precision,
		GroupingSeparator: c.GroupingSeparator,
		DecimalSeparator:  c.DecimalSeparator,
		IsBase:            c.IsBase,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}

// FormatAmountRequest holds the query parameters of the format endpoint.
type FormatAmountRequest struct {
	Amount *int64 `form:"amount" binding:"required"`
}

// FormattedAmountResponse is an amount rendered for display.
type FormattedAmountResponse struct {
	CurrencyCode string `json:"currencyCode"`
	AmountMinor  int64  `json:"amountMinor"`
	Formatted    string `json:"formatted"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	CountryCode         string `json:"countryCode"`
	Name                string `json:"name"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"`
	Locale              string `json:"locale"`
	Timezone            string `json:"timezone"`
	PhoneCode           string `json:"phoneCode,omitempty"`
	Continent           string `json:"continent,omitempty"`
	ShippingEligible    bool   `json:"shippingEligible"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO
func ToCountryResponse(c domain.Country) CountryResponse {
	return CountryResponse{
		CountryCode:         c.CountryCode,
		Name:                c.Name,
		DefaultCurrencyCode: c.DefaultCurrencyCode,
		Locale:              c.Locale,
		Timezone:            c.Timezone,
		PhoneCode:           c.PhoneCode,
		Continent:           c.Continent,
		ShippingEligible:    c.ShippingEligible,
	}
}
