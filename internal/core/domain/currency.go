package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SymbolPosition tells where the currency symbol is rendered relative to the amount.
type SymbolPosition string

const (
	SymbolPrefix SymbolPosition = "prefix"
	SymbolSuffix SymbolPosition = "suffix"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode      string         `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol            string         `json:"symbol"`       // e.g., "$"
	Name              string         `json:"name"`         // e.g., "US Dollar"
	SymbolPosition    SymbolPosition `json:"symbolPosition"`
	Precision         int            `json:"precision"` // number of minor-unit digits, 2 for USD, 0 for JPY
	GroupingSeparator string         `json:"groupingSeparator"`
	DecimalSeparator  string         `json:"decimalSeparator"`
	IsBase            bool           `json:"isBase"`
}

// MinorUnitScale returns 10^Precision as a decimal.
func (c Currency) MinorUnitScale() decimal.Decimal {
	return decimal.New(1, int32(c.Precision))
}

// FormatAmount renders an amount given in minor units using the currency's
// symbol placement and separators.
// Example: 123456 with USD (precision 2, ",", ".") returns "$1,234.56"
// Example: 123456 with JPY (precision 0) returns "¥123,456"
// Example: 123456 with EUR configured as suffix ("." and ",") returns "1.234,56 €"
func FormatAmount(amountMinor int64, c Currency) string {
	negative := amountMinor < 0
	if negative {
		amountMinor = -amountMinor
	}
	fixed := decimal.New(amountMinor, -int32(c.Precision)).StringFixed(int32(c.Precision))

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupDigits(intPart, c.GroupingSeparator)

	decimalSep := c.DecimalSeparator
	if decimalSep == "" {
		decimalSep = "."
	}
	number := grouped
	if c.Precision > 0 {
		number += decimalSep + fracPart
	}
	sign := ""
	if negative {
		sign = "-"
	}

	if c.SymbolPosition == SymbolSuffix {
		return sign + number + " " + c.Symbol
	}
	return sign + c.Symbol + number
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
