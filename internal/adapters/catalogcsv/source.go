// Package catalogcsv loads the reference catalog from a directory of CSV files.
package catalogcsv

import (
	"context"
	"errors"
	"io/fs"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portsrepo "github.com/SscSPs/intl_pricing_service/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const (
	CurrenciesFile     = "currencies.csv"
	CountriesFile      = "countries.csv"
	ShippingZonesFile  = "shipping_zones.csv"
	ShippingRatesFile  = "shipping_rates.csv"
	TaxRatesFile       = "tax_rates.csv"
	GeoIPFile          = "geoip.csv"
	ReferenceRatesFile = "reference_rates.csv"
)

// Source reads catalog tables from a file system. Each Load re-reads every file.
type Source struct {
	fsys fs.FS
}

// NewSource creates a Source over fsys.
func NewSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// NewDirSource creates a Source over a directory on disk.
func NewDirSource(dir string) *Source {
	return NewSource(os.DirFS(dir))
}

// Load parses every table. Parse errors from all files are reported together;
// semantic checks are left to catalog.Validate.
func (s *Source) Load(ctx context.Context) (catalog.Data, error) {
	var data catalog.Data
	var errs []error
	steps := []func() error{
		func() (err error) { data.Currencies, err = s.currencies(); return },
		func() (err error) { data.Countries, err = s.countries(); return },
		func() (err error) { data.Zones, err = s.zones(); return },
		func() (err error) { data.ShippingRates, err = s.shippingRates(); return },
		func() (err error) { data.TaxRates, err = s.taxRates(); return },
		func() (err error) { data.IPRanges, err = s.ipRanges(); return },
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return catalog.Data{}, err
		}
		if err := step(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return catalog.Data{}, errors.Join(errs...)
	}
	return data, nil
}

func (s *Source) currencies() ([]domain.Currency, error) {
	rows, err := readTable(s.fsys, CurrenciesFile, []string{"currency_code", "name", "symbol", "precision"}, false)
	if err != nil {
		return nil, err
	}
	var errs []error
	out := make([]domain.Currency, 0, len(rows))
	for _, r := range rows {
		precision, err := r.intField("precision")
		if err != nil {
			errs = append(errs, err)
			continue
		}
		isBase, err := r.boolField("is_base")
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, domain.Currency{
			CurrencyCode:      strings.ToUpper(r.get("currency_code")),
			Name:              r.get("name"),
			Symbol:            r.get("symbol"),
			SymbolPosition:    domain.SymbolPosition(strings.ToLower(r.get("symbol_position"))),
			Precision:         int(precision),
			GroupingSeparator: separator(r, "grouping_separator"),
			DecimalSeparator:  separator(r, "decimal_separator"),
			IsBase:            isBase,
		})
	}
	return out, errors.Join(errs...)
}

// separator reads a column whose value may legitimately be a single space,
// which TrimSpace would otherwise erase.
func separator(r record, col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	if r.fields[i] == " " {
		return " "
	}
	return strings.TrimSpace(r.fields[i])
}

func (s *Source) countries() ([]domain.Country, error) {
	rows, err := readTable(s.fsys, CountriesFile, []string{"country_code", "name", "default_currency", "locale", "timezone"}, false)
	if err != nil {
		return nil, err
	}
	var errs []error
	out := make([]domain.Country, 0, len(rows))
	for _, r := range rows {
		eligible := true
		if r.get("shipping_eligible") != "" {
			if eligible, err = r.boolField("shipping_eligible"); err != nil {
				errs = append(errs, err)
				continue
			}
		}
		out = append(out, domain.Country{
			CountryCode:         strings.ToUpper(r.get("country_code")),
			Name:                r.get("name"),
			DefaultCurrencyCode: strings.ToUpper(r.get("default_currency")),
			Locale:              r.get("locale"),
			Timezone:            r.get("timezone"),
			PhoneCode:           r.get("phone_code"),
			Continent:           strings.ToUpper(r.get("continent")),
			ShippingEligible:    eligible,
		})
	}
	return out, errors.Join(errs...)
}

// zones reads shipping_zones.csv. countries is a space separated list; "*"
// marks the catch-all zone.
func (s *Source) zones() ([]domain.ShippingZone, error) {
	rows, err := readTable(s.fsys, ShippingZonesFile, []string{"zone_id", "priority", "countries"}, false)
	if err != nil {
		return nil, err
	}
	var errs []error
	out := make([]domain.ShippingZone, 0, len(rows))
	for _, r := range rows {
		priority, err := r.intField("priority")
		if err != nil {
			errs = append(errs, err)
			continue
		}
		zone := domain.ShippingZone{
			ZoneID:   r.get("zone_id"),
			Name:     r.get("name"),
			Priority: int(priority),
		}
		for _, code := range strings.Fields(r.get("countries")) {
			if code == "*" {
				zone.CatchAll = true
				continue
			}
			zone.CountryCodes = append(zone.CountryCodes, strings.ToUpper(code))
		}
		out = append(out, zone)
	}
	return out, errors.Join(errs...)
}

// shippingRates reads shipping_rates.csv. breakpoints is a space separated
// list of max_grams:price_minor pairs.
func (s *Source) shippingRates() ([]domain.ShippingRate, error) {
	rows, err := readTable(s.fsys, ShippingRatesFile,
		[]string{"zone_id", "service_level", "currency_code", "breakpoints", "overage_unit_grams", "overage_rate_minor", "min_days", "max_days"}, false)
	if err != nil {
		return nil, err
	}
	var errs []error
	out := make([]domain.ShippingRate, 0, len(rows))
	for _, r := range rows {
		rate, err := parseShippingRate(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, rate)
	}
	return out, errors.Join(errs...)
}

func parseShippingRate(r record) (domain.ShippingRate, error) {
	level, err := domain.ParseServiceLevel(r.get("service_level"))
	if err != nil {
		return domain.ShippingRate{}, r.errorf("%v", err)
	}
	rate := domain.ShippingRate{
		ZoneID:       r.get("zone_id"),
		ServiceLevel: level,
		CurrencyCode: strings.ToUpper(r.get("currency_code")),
	}
	for _, pair := range strings.Fields(r.get("breakpoints")) {
		weight, price, ok := strings.Cut(pair, ":")
		if !ok {
			return domain.ShippingRate{}, r.errorf("breakpoint %q must be grams:price", pair)
		}
		w, errW := strconv.ParseInt(weight, 10, 64)
		p, errP := strconv.ParseInt(price, 10, 64)
		if errW != nil || errP != nil {
			return domain.ShippingRate{}, r.errorf("breakpoint %q must be integer grams:price", pair)
		}
		rate.Breakpoints = append(rate.Breakpoints, domain.Breakpoint{MaxWeightGrams: w, PriceMinor: p})
	}
	if rate.OverageUnitGrams, err = r.intField("overage_unit_grams"); err != nil {
		return domain.ShippingRate{}, err
	}
	if rate.OverageRateMinor, err = r.intField("overage_rate_minor"); err != nil {
		return domain.ShippingRate{}, err
	}
	minDays, err := r.intField("min_days")
	if err != nil {
		return domain.ShippingRate{}, err
	}
	maxDays, err := r.intField("max_days")
	if err != nil {
		return domain.ShippingRate{}, err
	}
	rate.Estimate = domain.DeliveryEstimate{MinDays: int(minDays), MaxDays: int(maxDays)}
	return rate, nil
}

// taxRates reads tax_rates.csv. category_rates is a space separated list of
// category:rate pairs.
func (s *Source) taxRates() ([]domain.TaxRate, error) {
	rows, err := readTable(s.fsys, TaxRatesFile, []string{"jurisdiction", "country_code", "tax_type", "rate"}, false)
	if err != nil {
		return nil, err
	}
	var errs []error
	out := make([]domain.TaxRate, 0, len(rows))
	for _, r := range rows {
		rate, err := parseTaxRate(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, rate)
	}
	return out, errors.Join(errs...)
}

func parseTaxRate(r record) (domain.TaxRate, error) {
	taxType, err := domain.ParseTaxType(r.get("tax_type"))
	if err != nil {
		return domain.TaxRate{}, r.errorf("%v", err)
	}
	rate, err := decimal.NewFromString(r.get("rate"))
	if err != nil {
		return domain.TaxRate{}, r.errorf("rate: %q is not a decimal", r.get("rate"))
	}
	inclusive, err := r.boolField("inclusive")
	if err != nil {
		return domain.TaxRate{}, err
	}
	tr := domain.TaxRate{
		Jurisdiction: strings.ToUpper(r.get("jurisdiction")),
		CountryCode:  strings.ToUpper(r.get("country_code")),
		TaxType:      taxType,
		Rate:         rate,
		Inclusive:    inclusive,
	}
	for _, pair := range strings.Fields(r.get("category_rates")) {
		category, raw, ok := strings.Cut(pair, ":")
		if !ok {
			return domain.TaxRate{}, r.errorf("category rate %q must be category:rate", pair)
		}
		catRate, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.TaxRate{}, r.errorf("category %s: %q is not a decimal", category, raw)
		}
		if tr.CategoryRates == nil {
			tr.CategoryRates = make(map[string]decimal.Decimal)
		}
		tr.CategoryRates[strings.ToLower(category)] = catRate
	}
	return tr, nil
}

// ipRanges reads the optional geoip.csv.
func (s *Source) ipRanges() ([]catalog.IPRange, error) {
	rows, err := readTable(s.fsys, GeoIPFile, []string{"prefix", "country_code"}, true)
	if err != nil {
		return nil, err
	}
	var errs []error
	out := make([]catalog.IPRange, 0, len(rows))
	for _, r := range rows {
		prefix, err := netip.ParsePrefix(r.get("prefix"))
		if err != nil {
			errs = append(errs, r.errorf("prefix: %v", err))
			continue
		}
		out = append(out, catalog.IPRange{Prefix: prefix.Masked(), CountryCode: strings.ToUpper(r.get("country_code"))})
	}
	return out, errors.Join(errs...)
}

// ReferenceRates reads the optional reference_rates.csv used by the static
// rate provider. A missing file yields an empty table.
func (s *Source) ReferenceRates() (map[string]decimal.Decimal, error) {
	rows, err := readTable(s.fsys, ReferenceRatesFile, []string{"currency_code", "rate"}, true)
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		rate, err := decimal.NewFromString(r.get("rate"))
		if err != nil || !rate.IsPositive() {
			return nil, r.errorf("rate: %q must be a positive decimal", r.get("rate"))
		}
		out[strings.ToUpper(r.get("currency_code"))] = rate
	}
	return out, nil
}

var (
	_ catalog.Source          = (*Source)(nil)
	_ portsrepo.CatalogSource = (*Source)(nil)
)
