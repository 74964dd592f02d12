package services

import (
	"context"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
)

// ShippingZoneResolverSvc maps countries to zones
type ShippingZoneResolverSvc interface {
	ResolveZone(ctx context.Context, countryCode string) (*domain.ShippingZone, error)
}

// ShippingCalculatorSvc prices parcels
type ShippingCalculatorSvc interface {
	// CalculateRate returns apperrors.ErrUnsupportedServiceLevel when the zone has no table for level.
	CalculateRate(ctx context.Context, zoneID string, level domain.ServiceLevel, weightGrams int64) (*domain.ShippingQuote, error)

	// GetShippingOptions quotes every service level available for the country, slowest first.
	GetShippingOptions(ctx context.Context, countryCode string, weightGrams int64) ([]domain.ShippingQuote, error)
}

// ShippingSvcFacade combines all shipping-related service interfaces
type ShippingSvcFacade interface {
	ShippingZoneResolverSvc
	ShippingCalculatorSvc
}

// TaxSvcFacade computes consumption taxes.
type TaxSvcFacade interface {
	CalculateTax(ctx context.Context, req domain.TaxRequest) (*domain.TaxResult, error)
}

// PreferenceSvcFacade resolves and stores display preferences.
type PreferenceSvcFacade interface {
	// ResolvePreferences is side-effect free; userID may be empty for anonymous callers.
	ResolvePreferences(ctx context.Context, userID string, rc domain.RequestContext) domain.ResolvedPreference

	GetPreference(ctx context.Context, userID string) (*domain.Preference, error)

	UpdatePreference(ctx context.Context, userID string, update domain.PreferenceUpdate) (*domain.Preference, error)
}
