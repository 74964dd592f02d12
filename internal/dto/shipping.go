package dto

import "github.com/SscSPs/intl_pricing_service/internal/core/domain"

// ShippingOptionsRequest holds the query parameters for listing shipping options.
type ShippingOptionsRequest struct {
	Country     string `form:"country" binding:"required,country"`
	WeightGrams int64  `form:"weightGrams" binding:"required,gt=0,max=1000000000"`
}

// ShippingRateRequest holds the query parameters for pricing one service level.
type ShippingRateRequest struct {
	ZoneID       string `form:"zone" binding:"required"`
	ServiceLevel string `form:"serviceLevel" binding:"required,oneof=economy standard express overnight"`
	WeightGrams  int64  `form:"weightGrams" binding:"required,gt=0,max=1000000000"`
}

// ShippingQuoteResponse is one priced service level.
type ShippingQuoteResponse struct {
	ZoneID        string `json:"zoneID"`
	ServiceLevel  string `json:"serviceLevel"`
	WeightGrams   int64  `json:"weightGrams"`
	CostMinor     int64  `json:"costMinor"`
	CurrencyCode  string `json:"currencyCode"`
	FormattedCost string `json:"formattedCost,omitempty"`
	MinDays       int    `json:"minDays"`
	MaxDays       int    `json:"maxDays"`
}

// ToShippingQuoteResponse converts a domain.ShippingQuote to ShippingQuoteResponse DTO
func ToShippingQuoteResponse(q domain.ShippingQuote) ShippingQuoteResponse {
	return ShippingQuoteResponse{
		ZoneID:       q.ZoneID,
		ServiceLevel: string(q.ServiceLevel),
		WeightGrams:  q.WeightGrams,
		CostMinor:    q.CostMinor,
		CurrencyCode: q.CurrencyCode,
		MinDays:      q.Estimate.MinDays,
		MaxDays:      q.Estimate.MaxDays,
	}
}

// ShippingOptionsResponse lists every available service level, slowest first.
type ShippingOptionsResponse struct {
	CountryCode string                  `json:"countryCode"`
	Options     []ShippingQuoteResponse `json:"options"`
}

// ShippingZoneResponse is the zone a country ships from.
type ShippingZoneResponse struct {
	ZoneID   string `json:"zoneID"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	CatchAll bool   `json:"catchAll"`
}

// ToShippingZoneResponse converts a domain.ShippingZone to ShippingZoneResponse DTO
func ToShippingZoneResponse(z domain.ShippingZone) ShippingZoneResponse {
	return ShippingZoneResponse{ZoneID: z.ZoneID, Name: z.Name, Priority: z.Priority, CatchAll: z.CatchAll}
}
