package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/infrastructure/metrics"
)

// ShippingService resolves zones and prices parcels from the current catalog.
type ShippingService struct {
	BaseService
	catalog *catalog.Holder
	metrics *metrics.PricingMetrics
}

// NewShippingService creates a new ShippingService. m may be nil.
func NewShippingService(holder *catalog.Holder, m *metrics.PricingMetrics) *ShippingService {
	return &ShippingService{catalog: holder, metrics: m}
}

// ResolveZone returns the highest-precedence zone containing countryCode. It is
// total: countries no specific zone claims resolve to the catch-all zone.
func (s *ShippingService) ResolveZone(ctx context.Context, countryCode string) (*domain.ShippingZone, error) {
	code, err := countryCodeArg(countryCode)
	if err != nil {
		return nil, err
	}
	cat := s.catalog.Current()
	if _, ok := cat.Country(code); !ok {
		return nil, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, code)
	}
	zone := cat.ZoneFor(code)
	if zone.ZoneID == "" {
		// a validated catalog always has a catch-all
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNoZoneMatch, code)
	}
	return &zone, nil
}

// CalculateRate prices weightGrams in zoneID at the given service level.
func (s *ShippingService) CalculateRate(ctx context.Context, zoneID string, level domain.ServiceLevel, weightGrams int64) (*domain.ShippingQuote, error) {
	if err := checkWeight(weightGrams); err != nil {
		return nil, err
	}
	level, err := domain.ParseServiceLevel(string(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	cat := s.catalog.Current()
	if _, ok := cat.Zone(zoneID); !ok {
		return nil, fmt.Errorf("%w: shipping zone %s", apperrors.ErrNotFound, zoneID)
	}
	return s.quote(ctx, cat, zoneID, level, weightGrams)
}

func (s *ShippingService) quote(ctx context.Context, cat *catalog.Catalog, zoneID string, level domain.ServiceLevel, weightGrams int64) (*domain.ShippingQuote, error) {
	rate, ok := cat.ShippingRate(zoneID, level)
	if !ok {
		return nil, fmt.Errorf("%w: zone %s has no %s rate", apperrors.ErrUnsupportedServiceLevel, zoneID, level)
	}
	s.metrics.RecordShippingQuote(zoneID, string(level))
	return &domain.ShippingQuote{
		ZoneID:       zoneID,
		ServiceLevel: level,
		WeightGrams:  weightGrams,
		CostMinor:    rate.CostFor(weightGrams),
		CurrencyCode: rate.CurrencyCode,
		Estimate:     rate.Estimate,
	}, nil
}

// GetShippingOptions quotes every service level the destination's zone offers,
// slowest first. Countries that are not shipping-eligible get no options.
func (s *ShippingService) GetShippingOptions(ctx context.Context, countryCode string, weightGrams int64) ([]domain.ShippingQuote, error) {
	code, err := countryCodeArg(countryCode)
	if err != nil {
		return nil, err
	}
	if err := checkWeight(weightGrams); err != nil {
		return nil, err
	}
	cat := s.catalog.Current()
	country, ok := cat.Country(code)
	if !ok {
		return nil, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, code)
	}

	options := []domain.ShippingQuote{}
	if !country.ShippingEligible {
		s.LogDebug(ctx, "Country is not shipping eligible", slog.String("country", code))
		return options, nil
	}

	zone := cat.ZoneFor(code)
	for _, level := range domain.ServiceLevels {
		q, err := s.quote(ctx, cat, zone.ZoneID, level, weightGrams)
		if err != nil {
			// unsupported levels are simply not offered
			continue
		}
		options = append(options, *q)
	}
	return options, nil
}

func countryCodeArg(countryCode string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if !catalog.IsCountryCode(code) {
		return "", fmt.Errorf("%w: country code must be 2 letters", apperrors.ErrValidation)
	}
	return code, nil
}

func checkWeight(weightGrams int64) error {
	if weightGrams <= 0 {
		return fmt.Errorf("%w: weight must be positive", apperrors.ErrValidation)
	}
	if weightGrams > domain.MaxWeightGrams {
		return fmt.Errorf("%w: weight exceeds %d grams", apperrors.ErrValidation, domain.MaxWeightGrams)
	}
	return nil
}
