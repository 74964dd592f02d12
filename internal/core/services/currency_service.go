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

// CurrencyService serves currency metadata from the current catalog.
type CurrencyService struct {
	BaseService
	catalog *catalog.Holder
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(holder *catalog.Holder) *CurrencyService {
	return &CurrencyService{catalog: holder}
}

// ListCurrencies returns every configured currency ordered by code.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.catalog.Current().Currencies(), nil
}

// GetCurrencyByCode returns apperrors.ErrNotFound for codes the catalog does not know.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if !catalog.IsCurrencyCode(code) {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	cur, ok := s.catalog.Current().Currency(code)
	if !ok {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
	}
	return &cur, nil
}

// FormatAmount renders amountMinor for display in currencyCode.
func (s *CurrencyService) FormatAmount(ctx context.Context, amountMinor int64, currencyCode string) (string, error) {
	cur, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return "", err
	}
	return domain.FormatAmount(amountMinor, *cur), nil
}

// CatalogService exposes countries and catalog reloads.
type CatalogService struct {
	BaseService
	catalog *catalog.Holder
	metrics *metrics.PricingMetrics
}

// NewCatalogService creates a new CatalogService. m may be nil.
func NewCatalogService(holder *catalog.Holder, m *metrics.PricingMetrics) *CatalogService {
	return &CatalogService{catalog: holder, metrics: m}
}

// ListCountries returns every configured country ordered by code.
func (s *CatalogService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.catalog.Current().Countries(), nil
}

// GetCountry returns apperrors.ErrNotFound for unknown countries.
func (s *CatalogService) GetCountry(ctx context.Context, countryCode string) (*domain.Country, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if !catalog.IsCountryCode(code) {
		return nil, fmt.Errorf("%w: country code must be 2 letters", apperrors.ErrValidation)
	}
	country, ok := s.catalog.Current().Country(code)
	if !ok {
		return nil, fmt.Errorf("%w: country %s", apperrors.ErrNotFound, code)
	}
	return &country, nil
}

// ReloadCatalog swaps in a freshly validated catalog. On error the old one stays.
func (s *CatalogService) ReloadCatalog(ctx context.Context) error {
	cat, err := s.catalog.Reload(ctx)
	if err != nil {
		s.metrics.RecordCatalogReload("rejected")
		s.LogError(ctx, err, "Catalog reload failed")
		return err
	}
	s.metrics.RecordCatalogReload("ok")
	s.LogInfo(ctx, "Catalog reload applied",
		slog.String("base_currency", cat.Base().CurrencyCode),
		slog.Int("currencies", len(cat.Currencies())))
	return nil
}
