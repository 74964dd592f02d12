package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

// TaxService computes consumption tax per jurisdiction.
type TaxService struct {
	BaseService
	catalog *catalog.Holder
	metrics *metrics.PricingMetrics
}

// NewTaxService creates a new TaxService. m may be nil.
func NewTaxService(holder *catalog.Holder, m *metrics.PricingMetrics) *TaxService {
	return &TaxService{catalog: holder, metrics: m}
}

// CalculateTax applies the most specific jurisdiction's rate for the category.
// A country without a configured rate is taxed at zero.
func (s *TaxService) CalculateTax(ctx context.Context, req domain.TaxRequest) (*domain.TaxResult, error) {
	code, err := countryCodeArg(req.CountryCode)
	if err != nil {
		return nil, err
	}
	if req.AmountMinor < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	cat := s.catalog.Current()
	country, ok := cat.Country(code)
	if !ok {
		return nil, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, code)
	}

	subRegion := strings.ToUpper(strings.TrimSpace(req.SubRegion))
	taxRate, found := cat.TaxRate(code, subRegion)
	if !found {
		taxRate = domain.TaxRate{Jurisdiction: code, CountryCode: code, Rate: decimal.Zero}
	}

	inclusive := taxRate.Inclusive
	if req.Inclusive != nil {
		inclusive = *req.Inclusive
	}
	rate := taxRate.EffectiveRate(strings.TrimSpace(req.Category))
	taxMinor, totalMinor := domain.ComputeTax(req.AmountMinor, rate, inclusive)

	s.metrics.RecordTaxCalculation(taxRate.Jurisdiction)
	return &domain.TaxResult{
		Jurisdiction: taxRate.Jurisdiction,
		TaxType:      taxRate.TaxType,
		Rate:         rate,
		Inclusive:    inclusive,
		AmountMinor:  req.AmountMinor,
		TaxMinor:     taxMinor,
		TotalMinor:   totalMinor,
		CurrencyCode: country.DefaultCurrencyCode,
	}, nil
}
