// Package catalogtest provides a small, valid catalog for tests.
package catalogtest

import (
	"net/netip"

	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Data returns fresh fixture records; callers may mutate the result.
//
// Zones: domestic (US, p1), eu (DE FR, p5), europe (GB DE FR XK, p10), world (catch-all, p100).
// Base currency USD.
func Data() catalog.Data {
	return catalog.Data{
		Currencies: []domain.Currency{
			{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", SymbolPosition: domain.SymbolPrefix, Precision: 2, GroupingSeparator: ",", DecimalSeparator: ".", IsBase: true},
			{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", SymbolPosition: domain.SymbolSuffix, Precision: 2, GroupingSeparator: ".", DecimalSeparator: ","},
			{CurrencyCode: "GBP", Symbol: "£", Name: "Pound Sterling", SymbolPosition: domain.SymbolPrefix, Precision: 2, GroupingSeparator: ",", DecimalSeparator: "."},
			{CurrencyCode: "JPY", Symbol: "¥", Name: "Yen", SymbolPosition: domain.SymbolPrefix, Precision: 0, GroupingSeparator: ",", DecimalSeparator: "."},
		},
		Countries: []domain.Country{
			{CountryCode: "US", Name: "United States", DefaultCurrencyCode: "USD", Locale: "en-US", Timezone: "America/New_York", PhoneCode: "+1", Continent: "NA", ShippingEligible: true},
			{CountryCode: "GB", Name: "United Kingdom", DefaultCurrencyCode: "GBP", Locale: "en-GB", Timezone: "Europe/London", PhoneCode: "+44", Continent: "EU", ShippingEligible: true},
			{CountryCode: "DE", Name: "Germany", DefaultCurrencyCode: "EUR", Locale: "de-DE", Timezone: "Europe/Berlin", PhoneCode: "+49", Continent: "EU", ShippingEligible: true},
			{CountryCode: "FR", Name: "France", DefaultCurrencyCode: "EUR", Locale: "fr-FR", Timezone: "Europe/Paris", PhoneCode: "+33", Continent: "EU", ShippingEligible: true},
			{CountryCode: "JP", Name: "Japan", DefaultCurrencyCode: "JPY", Locale: "ja-JP", Timezone: "Asia/Tokyo", PhoneCode: "+81", Continent: "AS", ShippingEligible: true},
			{CountryCode: "XK", Name: "Kosovo", DefaultCurrencyCode: "EUR", Locale: "sq-XK", Timezone: "Europe/Belgrade", PhoneCode: "+383", Continent: "EU", ShippingEligible: false},
		},
		Zones: []domain.ShippingZone{
			{ZoneID: "world", Name: "Rest of world", Priority: 100, CatchAll: true},
			{ZoneID: "europe", Name: "Europe", Priority: 10, CountryCodes: []string{"GB", "DE", "FR", "XK"}},
			{ZoneID: "eu", Name: "EU core", Priority: 5, CountryCodes: []string{"DE", "FR"}},
			{ZoneID: "domestic", Name: "Domestic", Priority: 1, CountryCodes: []string{"US"}},
		},
		ShippingRates: []domain.ShippingRate{
			{
				ZoneID: "domestic", ServiceLevel: domain.ServiceStandard, CurrencyCode: "USD",
				Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 500, PriceMinor: 500}, {MaxWeightGrams: 2000, PriceMinor: 1200}},
				Estimate:         domain.DeliveryEstimate{MinDays: 3, MaxDays: 5},
				OverageUnitGrams: 1000, OverageRateMinor: 300,
			},
			{
				ZoneID: "domestic", ServiceLevel: domain.ServiceExpress, CurrencyCode: "USD",
				Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 500, PriceMinor: 1500}, {MaxWeightGrams: 2000, PriceMinor: 2500}},
				Estimate:         domain.DeliveryEstimate{MinDays: 1, MaxDays: 2},
				OverageUnitGrams: 1000, OverageRateMinor: 500,
			},
			{
				ZoneID: "domestic", ServiceLevel: domain.ServiceEconomy, CurrencyCode: "USD",
				Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 1000, PriceMinor: 300}, {MaxWeightGrams: 5000, PriceMinor: 800}},
				Estimate:         domain.DeliveryEstimate{MinDays: 5, MaxDays: 9},
				OverageUnitGrams: 1000, OverageRateMinor: 150,
			},
			{
				ZoneID: "eu", ServiceLevel: domain.ServiceStandard, CurrencyCode: "USD",
				Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 1000, PriceMinor: 900}, {MaxWeightGrams: 3000, PriceMinor: 1800}},
				Estimate:         domain.DeliveryEstimate{MinDays: 4, MaxDays: 7},
				OverageUnitGrams: 500, OverageRateMinor: 250,
			},
			{
				ZoneID: "europe", ServiceLevel: domain.ServiceStandard, CurrencyCode: "USD",
				Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 1000, PriceMinor: 1100}, {MaxWeightGrams: 3000, PriceMinor: 2100}},
				Estimate:         domain.DeliveryEstimate{MinDays: 5, MaxDays: 8},
				OverageUnitGrams: 500, OverageRateMinor: 300,
			},
			{
				ZoneID: "europe", ServiceLevel: domain.ServiceExpress, CurrencyCode: "USD",
				Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 1000, PriceMinor: 2500}},
				Estimate:         domain.DeliveryEstimate{MinDays: 2, MaxDays: 3},
				OverageUnitGrams: 1000, OverageRateMinor: 900,
			},
			{
				ZoneID: "world", ServiceLevel: domain.ServiceEconomy, CurrencyCode: "USD",
				Breakpoints:      []domain.Breakpoint{{MaxWeightGrams: 2000, PriceMinor: 2000}},
				Estimate:         domain.DeliveryEstimate{MinDays: 10, MaxDays: 20},
				OverageUnitGrams: 1000, OverageRateMinor: 800,
			},
		},
		TaxRates: []domain.TaxRate{
			{Jurisdiction: "GB", CountryCode: "GB", TaxType: domain.TaxVAT, Rate: decimal.RequireFromString("0.20"), Inclusive: true,
				CategoryRates: map[string]decimal.Decimal{"books": decimal.Zero, "energy": decimal.RequireFromString("0.05")}},
			{Jurisdiction: "DE", CountryCode: "DE", TaxType: domain.TaxVAT, Rate: decimal.RequireFromString("0.19"), Inclusive: true,
				CategoryRates: map[string]decimal.Decimal{"food": decimal.RequireFromString("0.07")}},
			{Jurisdiction: "US", CountryCode: "US", TaxType: domain.TaxSales, Rate: decimal.Zero},
			{Jurisdiction: "US-CA", CountryCode: "US", TaxType: domain.TaxSales, Rate: decimal.RequireFromString("0.0725")},
			{Jurisdiction: "JP", CountryCode: "JP", TaxType: domain.TaxConsumption, Rate: decimal.RequireFromString("0.10"), Inclusive: true},
		},
		IPRanges: []catalog.IPRange{
			{Prefix: netip.MustParsePrefix("81.2.69.0/24"), CountryCode: "GB"},
			{Prefix: netip.MustParsePrefix("5.9.0.0/16"), CountryCode: "DE"},
			{Prefix: netip.MustParsePrefix("8.8.8.0/24"), CountryCode: "US"},
			{Prefix: netip.MustParsePrefix("133.0.0.0/8"), CountryCode: "JP"},
			{Prefix: netip.MustParsePrefix("2a01:4f8::/32"), CountryCode: "DE"},
		},
	}
}

// Catalog builds the fixture catalog and panics if it is invalid.
func Catalog() *catalog.Catalog {
	c, err := catalog.New(Data())
	if err != nil {
		panic(err)
	}
	return c
}

// Holder wraps the fixture catalog in a static holder.
func Holder() *catalog.Holder {
	return catalog.NewStaticHolder(Catalog())
}
