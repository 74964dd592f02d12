package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
	"github.com/SscSPs/intl_pricing_service/internal/dto"
	"github.com/SscSPs/intl_pricing_service/internal/handlers"
	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/SscSPs/intl_pricing_service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	jwtSecret    string
	currency     *MockCurrencyService
	catalog      *MockCatalogService
	exchangeRate *MockExchangeRateService
	conversion   *MockConversionService
	shipping     *MockShippingService
	tax          *MockTaxService
	preference   *MockPreferenceService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	v, ok := binding.Validator.Engine().(*validator.Validate)
	suite.Require().True(ok)
	suite.Require().NoError(dto.RegisterValidators(v))
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.currency = new(MockCurrencyService)
	suite.catalog = new(MockCatalogService)
	suite.exchangeRate = new(MockExchangeRateService)
	suite.conversion = new(MockConversionService)
	suite.shipping = new(MockShippingService)
	suite.tax = new(MockTaxService)
	suite.preference = new(MockPreferenceService)

	suite.router = gin.New()
	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Currency:     suite.currency,
		Catalog:      suite.catalog,
		ExchangeRate: suite.exchangeRate,
		Conversion:   suite.conversion,
		Shipping:     suite.shipping,
		Tax:          suite.tax,
		Preference:   suite.preference,
	}, handlers.RouteOptions{})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.currency.AssertExpectations(suite.T())
	suite.catalog.AssertExpectations(suite.T())
	suite.exchangeRate.AssertExpectations(suite.T())
	suite.conversion.AssertExpectations(suite.T())
	suite.shipping.AssertExpectations(suite.T())
	suite.tax.AssertExpectations(suite.T())
	suite.preference.AssertExpectations(suite.T())
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string, roles ...string) string {
	claims := middleware.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, path string, body any, token string, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

var (
	usd = domain.Currency{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", SymbolPosition: domain.SymbolPrefix, Precision: 2, GroupingSeparator: ",", DecimalSeparator: ".", IsBase: true}
	eur = domain.Currency{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", SymbolPosition: domain.SymbolSuffix, Precision: 2, GroupingSeparator: ".", DecimalSeparator: ","}
)

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestHome() {
	w := suite.do(http.MethodGet, "/", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var res struct {
		Service   string   `json:"service"`
		Endpoints []string `json:"endpoints"`
	}
	suite.decode(w, &res)
	suite.Equal("intl-pricing", res.Service)
	suite.Contains(res.Endpoints, "/api/v1/convert")
}

func (suite *HandlerTestSuite) TestListCurrencies() {
	suite.currency.On("ListCurrencies", mock.Anything).Return([]domain.Currency{eur, usd}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CurrencyResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 2)
	suite.Equal("EUR", res[0].CurrencyCode)
	suite.Equal("suffix", res[0].SymbolPosition)
	suite.True(res[1].IsBase)
}

func (suite *HandlerTestSuite) TestGetCurrency_NotFound() {
	suite.currency.On("GetCurrencyByCode", mock.Anything, "XXX").
		Return(nil, fmt.Errorf("%w: currency XXX", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/XXX", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "currency XXX")
}

func (suite *HandlerTestSuite) TestFormatAmount() {
	suite.currency.On("GetCurrencyByCode", mock.Anything, "eur").Return(&eur, nil).Once()
	suite.currency.On("FormatAmount", mock.Anything, int64(123456), "EUR").Return("1.234,56 €", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/eur/format?amount=123456", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.FormattedAmountResponse
	suite.decode(w, &res)
	suite.Equal("1.234,56 €", res.Formatted)
	suite.Equal(int64(123456), res.AmountMinor)
}

func (suite *HandlerTestSuite) TestFormatAmount_MissingAmount() {
	w := suite.do(http.MethodGet, "/api/v1/currencies/EUR/format", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCountry() {
	suite.catalog.On("GetCountry", mock.Anything, "GB").Return(&domain.Country{
		CountryCode: "GB", Name: "United Kingdom", DefaultCurrencyCode: "GBP", Locale: "en-GB", Timezone: "Europe/London", ShippingEligible: true,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/countries/GB", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.CountryResponse
	suite.decode(w, &res)
	suite.Equal("GBP", res.DefaultCurrencyCode)
	suite.True(res.ShippingEligible)
}

func (suite *HandlerTestSuite) TestConvert_Success() {
	asOf := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.conversion.On("Convert", mock.Anything, int64(10000), "USD", "EUR").Return(&domain.Conversion{
		AmountMinor: 10000, FromCurrency: "USD", ToCurrency: "EUR", ConvertedMinor: 9200,
		EffectiveRate: decimal.RequireFromString("0.92"), RatesAsOf: asOf,
	}, nil).Once()
	suite.currency.On("FormatAmount", mock.Anything, int64(10000), "USD").Return("$100.00", nil).Once()
	suite.currency.On("FormatAmount", mock.Anything, int64(9200), "EUR").Return("92,00 €", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/convert?amount=10000&from=USD&to=EUR", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ConversionResponse
	suite.decode(w, &res)
	suite.Equal(int64(9200), res.ConvertedMinor)
	suite.True(decimal.RequireFromString("0.92").Equal(res.EffectiveRate))
	suite.Require().NotNil(res.RatesAsOf)
	suite.True(asOf.Equal(*res.RatesAsOf))
	suite.Equal("$100.00", res.FormattedAmount)
	suite.Equal("92,00 €", res.FormattedResult)
}

func (suite *HandlerTestSuite) TestConvert_UnavailableFallsBackToBase() {
	suite.conversion.On("Convert", mock.Anything, int64(500), "USD", "JPY").
		Return(nil, fmt.Errorf("%w: rate for JPY is stale", apperrors.ErrConversionUnavailable)).Once()
	suite.currency.On("ListCurrencies", mock.Anything).Return([]domain.Currency{eur, usd}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/convert?amount=500&from=USD&to=JPY", nil, "")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	var res dto.ConversionUnavailableResponse
	suite.decode(w, &res)
	suite.Equal("USD", res.FallbackCurrency)
	suite.Contains(res.Error, "stale")
}

func (suite *HandlerTestSuite) TestConvert_InvalidQuery() {
	for _, path := range []string{
		"/api/v1/convert?from=USD&to=EUR",
		"/api/v1/convert?amount=100&from=US&to=EUR",
		"/api/v1/convert?amount=-1&from=USD&to=EUR",
		"/api/v1/convert?amount=abc&from=USD&to=EUR",
	} {
		w := suite.do(http.MethodGet, path, nil, "")
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func (suite *HandlerTestSuite) TestGetCurrentRates() {
	fetched := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.exchangeRate.On("GetCurrentRates", mock.Anything).Return(&domain.RateTable{
		BaseCurrency: "USD",
		PublishedAt:  fetched,
		Rates: []domain.RateQuote{
			{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92"), FetchedAt: fetched, ProviderID: "openerapi", AgeSeconds: 60},
		},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.RateTableResponse
	suite.decode(w, &res)
	suite.Equal("USD", res.BaseCurrency)
	suite.Require().Len(res.Rates, 1)
	suite.Equal("openerapi", res.Rates[0].ProviderID)
	suite.Equal(int64(60), res.Rates[0].AgeSeconds)
	suite.False(res.Rates[0].Stale)
}

func (suite *HandlerTestSuite) TestGetRateHistory_Paged() {
	next := "page-2"
	suite.exchangeRate.On("GetRateHistory", mock.Anything, "EUR", 0, (*string)(nil)).Return([]domain.ExchangeRate{
		{ExchangeRateID: "r1", FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92")},
	}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates/EUR/history", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.RateHistoryResponse
	suite.decode(w, &res)
	suite.Require().Len(res.Rates, 1)
	suite.Equal("r1", res.Rates[0].ExchangeRateID)
	suite.Require().NotNil(res.NextToken)
	suite.Equal("page-2", *res.NextToken)

	suite.exchangeRate.On("GetRateHistory", mock.Anything, "EUR", 10, &next).Return([]domain.ExchangeRate{}, nil, nil).Once()

	w = suite.do(http.MethodGet, "/api/v1/rates/EUR/history?limit=10&nextToken=page-2", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"rates":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetRateHistory_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/rates/EUR/history?limit=10000", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestShippingOptions() {
	suite.shipping.On("GetShippingOptions", mock.Anything, "us", int64(2500)).Return([]domain.ShippingQuote{
		{ZoneID: "domestic", ServiceLevel: domain.ServiceEconomy, WeightGrams: 2500, CostMinor: 900, CurrencyCode: "USD", Estimate: domain.DeliveryEstimate{MinDays: 5, MaxDays: 8}},
		{ZoneID: "domestic", ServiceLevel: domain.ServiceStandard, WeightGrams: 2500, CostMinor: 1500, CurrencyCode: "USD", Estimate: domain.DeliveryEstimate{MinDays: 3, MaxDays: 5}},
	}, nil).Once()
	suite.currency.On("FormatAmount", mock.Anything, mock.AnythingOfType("int64"), "USD").Return("$x", nil).Twice()

	w := suite.do(http.MethodGet, "/api/v1/shipping/options?country=us&weightGrams=2500", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ShippingOptionsResponse
	suite.decode(w, &res)
	suite.Equal("US", res.CountryCode)
	suite.Require().Len(res.Options, 2)
	suite.Equal("economy", res.Options[0].ServiceLevel)
	suite.Equal(int64(1500), res.Options[1].CostMinor)
	suite.Equal(3, res.Options[1].MinDays)
}

func (suite *HandlerTestSuite) TestShippingOptions_EmptyListIsArray() {
	suite.shipping.On("GetShippingOptions", mock.Anything, "XK", int64(100)).Return([]domain.ShippingQuote{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shipping/options?country=XK&weightGrams=100", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"countryCode":"XK","options":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestShippingOptions_InvalidQuery() {
	for _, path := range []string{
		"/api/v1/shipping/options?country=US&weightGrams=0",
		"/api/v1/shipping/options?country=USA&weightGrams=100",
		"/api/v1/shipping/options?weightGrams=100",
		"/api/v1/shipping/options?country=US&weightGrams=1000000001",
		"/api/v1/shipping/rate?zone=world&serviceLevel=standard&weightGrams=1000000001",
		"/api/v1/shipping/rate?zone=world&serviceLevel=standard&weightGrams=9223372036854775807",
	} {
		w := suite.do(http.MethodGet, path, nil, "")
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func (suite *HandlerTestSuite) TestShippingRate_Unsupported() {
	suite.shipping.On("CalculateRate", mock.Anything, "world", domain.ServiceOvernight, int64(1000)).
		Return(nil, fmt.Errorf("%w: zone world has no overnight rate", apperrors.ErrUnsupportedServiceLevel)).Once()

	w := suite.do(http.MethodGet, "/api/v1/shipping/rate?zone=world&serviceLevel=overnight&weightGrams=1000", nil, "")

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestShippingRate_UnknownLevelRejected() {
	w := suite.do(http.MethodGet, "/api/v1/shipping/rate?zone=world&serviceLevel=teleport&weightGrams=1000", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestResolveZone() {
	suite.shipping.On("ResolveZone", mock.Anything, "FR").Return(&domain.ShippingZone{ZoneID: "eu", Name: "European Union", Priority: 5}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shipping/zones/FR", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ShippingZoneResponse
	suite.decode(w, &res)
	suite.Equal("eu", res.ZoneID)
}

func (suite *HandlerTestSuite) TestResolveZone_UnknownCountry() {
	suite.shipping.On("ResolveZone", mock.Anything, "ZZ").
		Return(nil, fmt.Errorf("%w: unknown country %q", apperrors.ErrValidation, "ZZ")).Once()

	w := suite.do(http.MethodGet, "/api/v1/shipping/zones/ZZ", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCalculateTax() {
	inclusive := true
	suite.tax.On("CalculateTax", mock.Anything, domain.TaxRequest{
		CountryCode: "GB", AmountMinor: 12000, Inclusive: &inclusive,
	}).Return(&domain.TaxResult{
		Jurisdiction: "GB", TaxType: domain.TaxVAT, Rate: decimal.RequireFromString("0.2"), Inclusive: true,
		AmountMinor: 12000, TaxMinor: 2000, TotalMinor: 12000, CurrencyCode: "GBP",
	}, nil).Once()
	suite.currency.On("FormatAmount", mock.Anything, int64(2000), "GBP").Return("£20.00", nil).Once()
	suite.currency.On("FormatAmount", mock.Anything, int64(12000), "GBP").Return("£120.00", nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tax/calculate", map[string]any{
		"countryCode": "GB", "amountMinor": 12000, "inclusive": true,
	}, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.TaxResponse
	suite.decode(w, &res)
	suite.Equal(int64(2000), res.TaxMinor)
	suite.Equal(int64(12000), res.TotalMinor)
	suite.Equal("VAT", res.TaxType)
	suite.Equal("£20.00", res.FormattedTax)
}

func (suite *HandlerTestSuite) TestCalculateTax_InvalidBody() {
	for _, body := range []map[string]any{
		{"countryCode": "GB"},
		{"countryCode": "GBR", "amountMinor": 100},
		{"countryCode": "GB", "amountMinor": -1},
	} {
		w := suite.do(http.MethodPost, "/api/v1/tax/calculate", body, "")
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
}

func (suite *HandlerTestSuite) TestResolvePreferences_Anonymous() {
	resolved := domain.ResolvedPreference{
		Currency: domain.ResolvedField{Value: "EUR", Source: domain.SourceHeader},
		Locale:   domain.ResolvedField{Value: "de-DE", Source: domain.SourceHeader},
		Timezone: domain.ResolvedField{Value: "Europe/Berlin", Source: domain.SourceHeader},
	}
	suite.preference.On("ResolvePreferences", mock.Anything, "", domain.RequestContext{
		IPAddress: "192.0.2.1", AcceptLanguage: "de-DE,de;q=0.9", Timezone: "Europe/Berlin",
	}).Return(resolved).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences/resolve", nil, "",
		"Accept-Language", "de-DE,de;q=0.9", handlers.TimezoneHeader, "Europe/Berlin")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ResolvedPreferenceResponse
	suite.decode(w, &res)
	suite.Equal("EUR", res.Currency.Value)
	suite.Equal("header", res.Locale.Source)
}

func (suite *HandlerTestSuite) TestResolvePreferences_AuthenticatedUsesUserID() {
	suite.preference.On("ResolvePreferences", mock.Anything, "user-1", mock.AnythingOfType("domain.RequestContext")).
		Return(domain.ResolvedPreference{Currency: domain.ResolvedField{Value: "JPY", Source: domain.SourceSaved}}).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences/resolve", nil, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"saved"`)
}

func (suite *HandlerTestSuite) TestResolvePreferences_InvalidTokenRejected() {
	w := suite.do(http.MethodGet, "/api/v1/preferences/resolve", nil, "not-a-jwt")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestGetPreference_RequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/preferences/me", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestGetPreference_NotFound() {
	suite.preference.On("GetPreference", mock.Anything, "user-1").Return(nil, apperrors.NewNotFoundError("preference not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/preferences/me", nil, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdatePreference() {
	updatedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.preference.On("UpdatePreference", mock.Anything, "user-1", mock.MatchedBy(func(u domain.PreferenceUpdate) bool {
		return u.CurrencyCode != nil && *u.CurrencyCode == "eur" &&
			u.Locale == nil &&
			u.Timezone != nil && *u.Timezone == ""
	})).Return(&domain.Preference{UserID: "user-1", CurrencyCode: "EUR", UpdatedAt: updatedAt}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/preferences/me", map[string]any{
		"currencyCode": "eur", "timezone": "",
	}, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var res dto.PreferenceResponse
	suite.decode(w, &res)
	suite.Equal("EUR", res.CurrencyCode)
	suite.Empty(res.Timezone)
}

func (suite *HandlerTestSuite) TestUpdatePreference_ValidationError() {
	suite.preference.On("UpdatePreference", mock.Anything, "user-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: unsupported currency XXX", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPut, "/api/v1/preferences/me", map[string]any{"currencyCode": "XXX"}, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "unsupported currency XXX")
}

func (suite *HandlerTestSuite) TestAdminRoutes_RequireAdminRole() {
	w := suite.do(http.MethodPost, "/api/v1/admin/rates/refresh", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/admin/rates/refresh", nil, suite.generateTestToken("user-1"))
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/admin/providers", nil, suite.generateTestToken("user-1", "viewer"))
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestRefreshRates() {
	fetched := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.exchangeRate.On("RefreshRates", mock.Anything).Return(&domain.RefreshResult{
		BaseCurrency: "USD",
		Provider:     "frankfurter",
		FetchedAt:    fetched,
		Rates: []domain.ExchangeRate{
			{ExchangeRateID: "r1", FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.92"), FetchedAt: fetched, ProviderID: "frankfurter", SignificantChange: true},
		},
		SignificantChanges: []string{"EUR"},
		SkippedProviders:   []string{"openerapi"},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/rates/refresh", nil, suite.generateTestToken("ops", middleware.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	var res dto.RefreshResponse
	suite.decode(w, &res)
	suite.Equal("frankfurter", res.Provider)
	suite.Equal([]string{"EUR"}, res.SignificantChanges)
	suite.Equal([]string{"openerapi"}, res.SkippedProviders)
}

func (suite *HandlerTestSuite) TestRefreshRates_ErrorStatuses() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"in progress", apperrors.ErrRefreshInProgress, http.StatusConflict},
		{"all failed", &apperrors.RefreshError{Cause: apperrors.ErrAllProvidersFailed}, http.StatusBadGateway},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	token := suite.generateTestToken("ops", middleware.RoleAdmin)
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.exchangeRate.On("RefreshRates", mock.Anything).Return(nil, tc.err).Once()
			w := suite.do(http.MethodPost, "/api/v1/admin/rates/refresh", nil, token)
			suite.Equal(tc.status, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestListProviders() {
	suite.exchangeRate.On("ProviderStatuses", mock.Anything).Return([]domain.ProviderStatus{
		{Name: "openerapi", Priority: 1, State: "open", ConsecutiveFailures: 3},
		{Name: "frankfurter", Priority: 2, State: "closed"},
	}).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/providers", nil, suite.generateTestToken("ops", middleware.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.ProviderStatusResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 2)
	suite.Equal("open", res[0].State)
	suite.Equal(uint32(3), res[0].ConsecutiveFailures)
}

func (suite *HandlerTestSuite) TestReloadCatalog_Rejected() {
	suite.catalog.On("ReloadCatalog", mock.Anything).
		Return(fmt.Errorf("%w: zone world: no catch-all", apperrors.ErrInvalidCatalog)).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/catalog/reload", nil, suite.generateTestToken("ops", middleware.RoleAdmin))

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}
