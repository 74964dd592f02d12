package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
)

const maxPrecision = 18

// Validate checks every invariant a catalog must satisfy before it can serve
// traffic. All violations are reported together.
func Validate(data Data) error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	currencies := make(map[string]bool, len(data.Currencies))
	bases := 0
	for _, cur := range data.Currencies {
		if !IsCurrencyCode(cur.CurrencyCode) {
			add("currency code %q must be 3 uppercase letters", cur.CurrencyCode)
			continue
		}
		if currencies[cur.CurrencyCode] {
			add("duplicate currency %s", cur.CurrencyCode)
		}
		currencies[cur.CurrencyCode] = true
		if cur.Precision < 0 || cur.Precision > maxPrecision {
			add("currency %s: precision %d out of range", cur.CurrencyCode, cur.Precision)
		}
		switch cur.SymbolPosition {
		case "", domain.SymbolPrefix, domain.SymbolSuffix:
		default:
			add("currency %s: symbol position %q must be prefix or suffix", cur.CurrencyCode, cur.SymbolPosition)
		}
		if cur.IsBase {
			bases++
		}
	}
	switch {
	case bases == 0:
		add("missing base currency")
	case bases > 1:
		add("exactly one base currency allowed, found %d", bases)
	}

	countries := make(map[string]bool, len(data.Countries))
	for _, country := range data.Countries {
		if !IsCountryCode(country.CountryCode) {
			add("country code %q must be 2 uppercase letters", country.CountryCode)
			continue
		}
		if countries[country.CountryCode] {
			add("duplicate country %s", country.CountryCode)
		}
		countries[country.CountryCode] = true
		if !currencies[country.DefaultCurrencyCode] {
			add("country %s: unknown default currency %q", country.CountryCode, country.DefaultCurrencyCode)
		}
	}

	problems = append(problems, validateZones(data.Zones, countries)...)

	zoneIDs := make(map[string]bool, len(data.Zones))
	for _, z := range data.Zones {
		zoneIDs[z.ZoneID] = true
	}
	seenRates := make(map[string]bool)
	for _, r := range data.ShippingRates {
		key := r.ZoneID + "/" + string(r.ServiceLevel)
		if !zoneIDs[r.ZoneID] {
			add("shipping rate %s: unknown zone", key)
		}
		if _, err := domain.ParseServiceLevel(string(r.ServiceLevel)); err != nil {
			add("shipping rate %s: %v", key, err)
		}
		if seenRates[key] {
			add("duplicate shipping rate %s", key)
		}
		seenRates[key] = true
		if !currencies[r.CurrencyCode] {
			add("shipping rate %s: unknown currency %q", key, r.CurrencyCode)
		}
		for _, err := range validateBreakpoints(r) {
			add("shipping rate %s: %v", key, err)
		}
	}

	jurisdictions := make(map[string]bool, len(data.TaxRates))
	for _, t := range data.TaxRates {
		country, _, _ := strings.Cut(t.Jurisdiction, "-")
		if !countries[country] || country != t.CountryCode {
			add("tax rate %q: unknown or mismatched country %q", t.Jurisdiction, t.CountryCode)
		}
		if jurisdictions[t.Jurisdiction] {
			add("duplicate tax rate %s", t.Jurisdiction)
		}
		jurisdictions[t.Jurisdiction] = true
		if _, err := domain.ParseTaxType(string(t.TaxType)); err != nil {
			add("tax rate %s: %v", t.Jurisdiction, err)
		}
		if t.Rate.IsNegative() {
			add("tax rate %s: negative rate", t.Jurisdiction)
		}
		for category, rate := range t.CategoryRates {
			if rate.IsNegative() {
				add("tax rate %s: negative rate for category %s", t.Jurisdiction, category)
			}
		}
	}

	for _, r := range data.IPRanges {
		if !r.Prefix.IsValid() {
			add("ip range for %s: invalid prefix", r.CountryCode)
		}
		if !countries[r.CountryCode] {
			add("ip range %s: unknown country %q", r.Prefix, r.CountryCode)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidCatalog, errors.Join(problems...))
	}
	return nil
}

func validateZones(zones []domain.ShippingZone, countries map[string]bool) []error {
	var problems []error
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	ids := make(map[string]bool, len(zones))
	catchAlls := 0
	var catchAll domain.ShippingZone
	for _, z := range zones {
		if z.ZoneID == "" {
			add("shipping zone %q: missing id", z.Name)
			continue
		}
		if ids[z.ZoneID] {
			add("duplicate shipping zone %s", z.ZoneID)
		}
		ids[z.ZoneID] = true
		if z.CatchAll {
			catchAlls++
			catchAll = z
			continue
		}
		if len(z.CountryCodes) == 0 {
			add("shipping zone %s: no member countries", z.ZoneID)
		}
		for _, code := range z.CountryCodes {
			if !countries[code] {
				add("shipping zone %s: unknown country %q", z.ZoneID, code)
			}
		}
	}
	if catchAlls != 1 {
		add("exactly one catch-all shipping zone required, found %d", catchAlls)
	} else {
		for _, z := range zones {
			if !z.CatchAll && z.Priority >= catchAll.Priority {
				add("catch-all zone %s must have the highest priority number, zone %s has %d", catchAll.ZoneID, z.ZoneID, z.Priority)
			}
		}
	}

	// two zones with the same priority must not claim the same country
	for i := range zones {
		for j := i + 1; j < len(zones); j++ {
			a, b := zones[i], zones[j]
			if a.CatchAll || b.CatchAll || a.Priority != b.Priority {
				continue
			}
			members := make(map[string]bool, len(a.CountryCodes))
			for _, code := range a.CountryCodes {
				members[code] = true
			}
			for _, code := range b.CountryCodes {
				if members[code] {
					add("zones %s and %s overlap on %s at priority %d", a.ZoneID, b.ZoneID, code, a.Priority)
				}
			}
		}
	}
	return problems
}

// validateBreakpoints enforces the table shape that makes cost monotonic in weight.
func validateBreakpoints(r domain.ShippingRate) []error {
	var problems []error
	if len(r.Breakpoints) == 0 {
		return []error{errors.New("no weight breakpoints")}
	}
	var prev domain.Breakpoint
	for i, bp := range r.Breakpoints {
		if bp.MaxWeightGrams <= 0 {
			problems = append(problems, fmt.Errorf("breakpoint %d: weight must be positive", i))
		}
		if bp.PriceMinor < 0 {
			problems = append(problems, fmt.Errorf("breakpoint %d: negative price", i))
		}
		if i > 0 {
			if bp.MaxWeightGrams <= prev.MaxWeightGrams {
				problems = append(problems, fmt.Errorf("breakpoint %d: weights must be strictly ascending", i))
			}
			if bp.PriceMinor < prev.PriceMinor {
				problems = append(problems, fmt.Errorf("breakpoint %d: price decreases with weight", i))
			}
		}
		prev = bp
	}
	if r.OverageUnitGrams <= 0 {
		problems = append(problems, errors.New("overage unit must be positive"))
	}
	if r.OverageRateMinor < 0 {
		problems = append(problems, errors.New("negative overage rate"))
	}
	if r.Estimate.MinDays < 0 || r.Estimate.MinDays > r.Estimate.MaxDays {
		problems = append(problems, fmt.Errorf("invalid delivery estimate %d-%d", r.Estimate.MinDays, r.Estimate.MaxDays))
	}
	return problems
}

// IsCurrencyCode reports whether s looks like an ISO 4217 code.
func IsCurrencyCode(s string) bool {
	return len(s) == 3 && isUpperAlpha(s)
}

// IsCountryCode reports whether s looks like an ISO 3166-1 alpha-2 code.
func IsCountryCode(s string) bool {
	return len(s) == 2 && isUpperAlpha(s)
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
