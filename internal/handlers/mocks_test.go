package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) FormatAmount(ctx context.Context, amountMinor int64, currencyCode string) (string, error) {
	args := m.Called(ctx, amountMinor, currencyCode)
	return args.String(0), args.Error(1)
}

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}
func (m *MockCatalogService) GetCountry(ctx context.Context, countryCode string) (*domain.Country, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}
func (m *MockCatalogService) ReloadCatalog(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetCurrentRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}
func (m *MockExchangeRateService) GetRateHistory(ctx context.Context, currencyCode string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	args := m.Called(ctx, currencyCode, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.ExchangeRate), next, args.Error(2)
}
func (m *MockExchangeRateService) ProviderStatuses(ctx context.Context) []domain.ProviderStatus {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProviderStatus)
}
func (m *MockExchangeRateService) RefreshRates(ctx context.Context) (*domain.RefreshResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshResult), args.Error(1)
}
func (m *MockExchangeRateService) SeedRates(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockExchangeRateService) CheckStaleness(ctx context.Context) (time.Duration, bool) {
	args := m.Called(ctx)
	return args.Get(0).(time.Duration), args.Bool(1)
}

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*domain.Conversion, error) {
	args := m.Called(ctx, amountMinor, fromCurrency, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

// --- Mock ShippingService ---
type MockShippingService struct {
	mock.Mock
}

func (m *MockShippingService) ResolveZone(ctx context.Context, countryCode string) (*domain.ShippingZone, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingZone), args.Error(1)
}
func (m *MockShippingService) CalculateRate(ctx context.Context, zoneID string, level domain.ServiceLevel, weightGrams int64) (*domain.ShippingQuote, error) {
	args := m.Called(ctx, zoneID, level, weightGrams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingQuote), args.Error(1)
}
func (m *MockShippingService) GetShippingOptions(ctx context.Context, countryCode string, weightGrams int64) ([]domain.ShippingQuote, error) {
	args := m.Called(ctx, countryCode, weightGrams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingQuote), args.Error(1)
}

// --- Mock TaxService ---
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) CalculateTax(ctx context.Context, req domain.TaxRequest) (*domain.TaxResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxResult), args.Error(1)
}

// --- Mock PreferenceService ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) ResolvePreferences(ctx context.Context, userID string, rc domain.RequestContext) domain.ResolvedPreference {
	args := m.Called(ctx, userID, rc)
	return args.Get(0).(domain.ResolvedPreference)
}
func (m *MockPreferenceService) GetPreference(ctx context.Context, userID string) (*domain.Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}
func (m *MockPreferenceService) UpdatePreference(ctx context.Context, userID string, update domain.PreferenceUpdate) (*domain.Preference, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.CurrencySvcFacade     = (*MockCurrencyService)(nil)
	_ portssvc.CatalogSvcFacade      = (*MockCatalogService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
	_ portssvc.ConversionSvcFacade   = (*MockConversionService)(nil)
	_ portssvc.ShippingSvcFacade     = (*MockShippingService)(nil)
	_ portssvc.TaxSvcFacade          = (*MockTaxService)(nil)
	_ portssvc.PreferenceSvcFacade   = (*MockPreferenceService)(nil)
)
