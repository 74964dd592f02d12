// Package catalog holds the process-wide reference data: currencies, countries,
// shipping zones and rates, tax rates and IP ranges. A Catalog is immutable once
// built; reloads build a new one and swap it in.
package catalog

import (
	"net/netip"
	"sort"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IPRange maps an address prefix to a country for geolocation.
type IPRange struct {
	Prefix      netip.Prefix
	CountryCode string
}

// Data is the raw record set produced by a Source.
type Data struct {
	Currencies    []domain.Currency
	Countries     []domain.Country
	Zones         []domain.ShippingZone
	ShippingRates []domain.ShippingRate
	TaxRates      []domain.TaxRate
	IPRanges      []IPRange
}

// Catalog is a validated, indexed view of Data.
type Catalog struct {
	base          domain.Currency
	currencies    map[string]domain.Currency
	currencyCodes []string
	countries     map[string]domain.Country
	countryCodes  []string
	zones         map[string]domain.ShippingZone
	zoneOrder     []string
	catchAll      string
	zoneByCountry map[string]string
	rates         map[string]map[domain.ServiceLevel]domain.ShippingRate
	taxRates      map[string]domain.TaxRate
	ipRanges      []IPRange
}

// New validates data and builds a Catalog. Any error wraps apperrors.ErrInvalidCatalog.
func New(data Data) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	c := &Catalog{
		currencies:    make(map[string]domain.Currency, len(data.Currencies)),
		countries:     make(map[string]domain.Country, len(data.Countries)),
		zones:         make(map[string]domain.ShippingZone, len(data.Zones)),
		zoneByCountry: make(map[string]string, len(data.Countries)),
		rates:         make(map[string]map[domain.ServiceLevel]domain.ShippingRate),
		taxRates:      make(map[string]domain.TaxRate, len(data.TaxRates)),
		ipRanges:      append([]IPRange(nil), data.IPRanges...),
	}

	for _, cur := range data.Currencies {
		if cur.SymbolPosition == "" {
			cur.SymbolPosition = domain.SymbolPrefix
		}
		c.currencies[cur.CurrencyCode] = cur
		c.currencyCodes = append(c.currencyCodes, cur.CurrencyCode)
		if cur.IsBase {
			c.base = cur
		}
	}
	sort.Strings(c.currencyCodes)

	for _, country := range data.Countries {
		c.countries[country.CountryCode] = country
		c.countryCodes = append(c.countryCodes, country.CountryCode)
	}
	sort.Strings(c.countryCodes)

	zones := append([]domain.ShippingZone(nil), data.Zones...)
	sort.SliceStable(zones, func(i, j int) bool { return zones[i].Priority < zones[j].Priority })
	for _, z := range zones {
		z.CountryCodes = append([]string(nil), z.CountryCodes...)
		c.zones[z.ZoneID] = z
		c.zoneOrder = append(c.zoneOrder, z.ZoneID)
		if z.CatchAll {
			c.catchAll = z.ZoneID
			continue
		}
		// zones are visited lowest priority number first, so the first claim wins
		for _, code := range z.CountryCodes {
			if _, taken := c.zoneByCountry[code]; !taken {
				c.zoneByCountry[code] = z.ZoneID
			}
		}
	}

	for _, r := range data.ShippingRates {
		r.Breakpoints = append([]domain.Breakpoint(nil), r.Breakpoints...)
		if c.rates[r.ZoneID] == nil {
			c.rates[r.ZoneID] = make(map[domain.ServiceLevel]domain.ShippingRate)
		}
		c.rates[r.ZoneID][r.ServiceLevel] = r
	}

	for _, t := range data.TaxRates {
		overrides := make(map[string]decimal.Decimal, len(t.CategoryRates))
		for k, v := range t.CategoryRates {
			overrides[strings.ToLower(k)] = v
		}
		t.CategoryRates = overrides
		c.taxRates[t.Jurisdiction] = t
	}

	return c, nil
}

// Base returns the single base currency.
func (c *Catalog) Base() domain.Currency { return c.base }

// Currency looks up a currency by ISO code.
func (c *Catalog) Currency(code string) (domain.Currency, bool) {
	cur, ok := c.currencies[code]
	return cur, ok
}

// Currencies returns every currency ordered by code.
func (c *Catalog) Currencies() []domain.Currency {
	out := make([]domain.Currency, 0, len(c.currencyCodes))
	for _, code := range c.currencyCodes {
		out = append(out, c.currencies[code])
	}
	return out
}

// QuoteCurrencies returns the codes a refresh must obtain rates for: every currency but the base.
func (c *Catalog) QuoteCurrencies() []string {
	out := make([]string, 0, len(c.currencyCodes))
	for _, code := range c.currencyCodes {
		if code != c.base.CurrencyCode {
			out = append(out, code)
		}
	}
	return out
}

// Country looks up a country by ISO code.
func (c *Catalog) Country(code string) (domain.Country, bool) {
	country, ok := c.countries[code]
	return country, ok
}

// Countries returns every country ordered by code.
func (c *Catalog) Countries() []domain.Country {
	out := make([]domain.Country, 0, len(c.countryCodes))
	for _, code := range c.countryCodes {
		out = append(out, c.countries[code])
	}
	return out
}

// Locales returns the distinct country locales in country-code order.
func (c *Catalog) Locales() []string {
	seen := make(map[string]bool)
	var out []string
	for _, code := range c.countryCodes {
		l := c.countries[code].Locale
		if l != "" && !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// Zone looks up a shipping zone by ID.
func (c *Catalog) Zone(zoneID string) (domain.ShippingZone, bool) {
	z, ok := c.zones[zoneID]
	return z, ok
}

// Zones returns every zone, highest precedence first.
func (c *Catalog) Zones() []domain.ShippingZone {
	out := make([]domain.ShippingZone, 0, len(c.zoneOrder))
	for _, id := range c.zoneOrder {
		out = append(out, c.zones[id])
	}
	return out
}

// ZoneFor returns the zone with the lowest priority number containing countryCode,
// falling back to the catch-all zone. It never fails for a validated catalog.
func (c *Catalog) ZoneFor(countryCode string) domain.ShippingZone {
	if id, ok := c.zoneByCountry[countryCode]; ok {
		return c.zones[id]
	}
	return c.zones[c.catchAll]
}

// ShippingRate returns the rate table of a zone for a service level.
func (c *Catalog) ShippingRate(zoneID string, level domain.ServiceLevel) (domain.ShippingRate, bool) {
	r, ok := c.rates[zoneID][level]
	return r, ok
}

// TaxRate returns the most specific tax rate: sub-region first, then country.
func (c *Catalog) TaxRate(countryCode, subRegion string) (domain.TaxRate, bool) {
	if subRegion != "" {
		if t, ok := c.taxRates[countryCode+"-"+subRegion]; ok {
			return t, true
		}
	}
	t, ok := c.taxRates[countryCode]
	return t, ok
}

// IPRanges returns the geolocation prefixes.
func (c *Catalog) IPRanges() []IPRange {
	return c.ipRanges
}
