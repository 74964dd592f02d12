package domain

import (
	"fmt"
	"math"
	"strings"
)

// MaxWeightGrams is the heaviest parcel that can be quoted (1,000 tonnes).
const MaxWeightGrams int64 = 1_000_000_000

// ServiceLevel is a shipping speed tier.
type ServiceLevel string

const (
	ServiceEconomy   ServiceLevel = "economy"
	ServiceStandard  ServiceLevel = "standard"
	ServiceExpress   ServiceLevel = "express"
	ServiceOvernight ServiceLevel = "overnight"
)

// ServiceLevels lists every level, slowest first. Shipping options are returned in this order.
var ServiceLevels = []ServiceLevel{ServiceEconomy, ServiceStandard, ServiceExpress, ServiceOvernight}

// ParseServiceLevel normalises and validates a service level name.
func ParseServiceLevel(s string) (ServiceLevel, error) {
	level := ServiceLevel(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range ServiceLevels {
		if l == level {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown service level %q", s)
}

// ShippingZone groups countries that share shipping prices. Lower Priority wins.
type ShippingZone struct {
	ZoneID       string   `json:"zoneID"`
	Name         string   `json:"name"`
	Priority     int      `json:"priority"`
	CountryCodes []string `json:"countryCodes"`
	CatchAll     bool     `json:"catchAll"` // matches every country
}

// Breakpoint prices every parcel up to MaxWeightGrams.
type Breakpoint struct {
	MaxWeightGrams int64 `json:"maxWeightGrams"`
	PriceMinor     int64 `json:"priceMinor"`
}

// DeliveryEstimate is an inclusive range of business days.
type DeliveryEstimate struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

// ShippingRate is the price table for one zone and service level.
// Breakpoints are ascending by weight.
type ShippingRate struct {
	ZoneID           string           `json:"zoneID"`
	ServiceLevel     ServiceLevel     `json:"serviceLevel"`
	CurrencyCode     string           `json:"currencyCode"`
	Breakpoints      []Breakpoint     `json:"breakpoints"`
	Estimate         DeliveryEstimate `json:"estimate"`
	OverageUnitGrams int64            `json:"overageUnitGrams"`
	OverageRateMinor int64            `json:"overageRateMinor"` // charged per started overage unit
}

// CostFor returns the price in minor units for a parcel of weightGrams.
// Weights above the last breakpoint pay the last price plus one overage charge
// per started OverageUnitGrams. The result saturates at math.MaxInt64.
func (r ShippingRate) CostFor(weightGrams int64) int64 {
	for _, bp := range r.Breakpoints {
		if weightGrams <= bp.MaxWeightGrams {
			return bp.PriceMinor
		}
	}
	last := r.Breakpoints[len(r.Breakpoints)-1]
	excess := weightGrams - last.MaxWeightGrams
	units := excess / r.OverageUnitGrams
	if excess%r.OverageUnitGrams != 0 {
		units++
	}
	if r.OverageRateMinor > 0 && units > (math.MaxInt64-last.PriceMinor)/r.OverageRateMinor {
		return math.MaxInt64
	}
	return last.PriceMinor + units*r.OverageRateMinor
}

// ShippingQuote is the cost of one zone/service level for a given weight.
type ShippingQuote struct {
	ZoneID       string           `json:"zoneID"`
	ServiceLevel ServiceLevel     `json:"serviceLevel"`
	WeightGrams  int64            `json:"weightGrams"`
	CostMinor    int64            `json:"costMinor"`
	CurrencyCode string           `json:"currencyCode"`
	Estimate     DeliveryEstimate `json:"estimate"`
}
