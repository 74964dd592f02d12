package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog/catalogtest"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type ShippingServiceTestSuite struct {
	suite.Suite
	service *services.ShippingService
}

func (suite *ShippingServiceTestSuite) SetupTest() {
	suite.service = services.NewShippingService(catalogtest.Holder(), nil)
}

func (suite *ShippingServiceTestSuite) TestResolveZone() {
	ctx := context.Background()
	cases := map[string]string{"US": "domestic", "de": "eu", "GB": "europe", "JP": "world", "BR": "world"}
	for country, want := range cases {
		zone, err := suite.service.ResolveZone(ctx, country)
		suite.Require().NoError(err)
		suite.Equal(want, zone.ZoneID, country)

		again, err := suite.service.ResolveZone(ctx, country)
		suite.Require().NoError(err)
		suite.Equal(zone, again)
	}

	_, err := suite.service.ResolveZone(ctx, "USA")
	suite.ErrorIs(err, apperrors.ErrValidation)

	// well formed but not in the catalog
	zone, err := suite.service.ResolveZone(ctx, "ZZ")
	suite.Nil(zone)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShippingServiceTestSuite) TestCalculateRate_Breakpoints() {
	ctx := context.Background()
	cases := []struct {
		weight int64
		cost   int64
	}{
		{1, 500},
		{500, 500},
		{501, 1200},
		{2000, 1200},
		{2001, 1500}, // one started kilogram of overage
		{2500, 1500},
		{3000, 1500},
		{3001, 1800},
	}
	for _, tc := range cases {
		quote, err := suite.service.CalculateRate(ctx, "domestic", domain.ServiceStandard, tc.weight)
		suite.Require().NoError(err)
		suite.Equal(tc.cost, quote.CostMinor, "weight %d", tc.weight)
		suite.Equal("USD", quote.CurrencyCode)
		suite.Equal(domain.DeliveryEstimate{MinDays: 3, MaxDays: 5}, quote.Estimate)
	}
}

func (suite *ShippingServiceTestSuite) TestCalculateRate_MonotonicInWeight() {
	ctx := context.Background()
	cat := catalogtest.Catalog()
	for _, zone := range cat.Zones() {
		for _, level := range domain.ServiceLevels {
			if _, ok := cat.ShippingRate(zone.ZoneID, level); !ok {
				continue
			}
			prev := int64(-1)
			for w := int64(1); w <= 12000; w += 37 {
				quote, err := suite.service.CalculateRate(ctx, zone.ZoneID, level, w)
				suite.Require().NoError(err)
				suite.GreaterOrEqual(quote.CostMinor, prev, "%s/%s at %dg", zone.ZoneID, level, w)
				prev = quote.CostMinor
			}
		}
	}
}

func (suite *ShippingServiceTestSuite) TestCalculateRate_Errors() {
	ctx := context.Background()

	_, err := suite.service.CalculateRate(ctx, "world", domain.ServiceStandard, 100)
	suite.ErrorIs(err, apperrors.ErrUnsupportedServiceLevel)

	_, err = suite.service.CalculateRate(ctx, "mars", domain.ServiceStandard, 100)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.CalculateRate(ctx, "domestic", domain.ServiceLevel("teleport"), 100)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CalculateRate(ctx, "domestic", domain.ServiceStandard, 0)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CalculateRate(ctx, "domestic", domain.ServiceStandard, domain.MaxWeightGrams+1)
	suite.ErrorIs(err, apperrors.ErrValidation)

	quote, err := suite.service.CalculateRate(ctx, "domestic", domain.ServiceStandard, domain.MaxWeightGrams)
	suite.Require().NoError(err)
	suite.Positive(quote.CostMinor)
}

func (suite *ShippingServiceTestSuite) TestGetShippingOptions_Overweight() {
	_, err := suite.service.GetShippingOptions(context.Background(), "US", domain.MaxWeightGrams+1)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShippingServiceTestSuite) TestGetShippingOptions() {
	ctx := context.Background()

	options, err := suite.service.GetShippingOptions(ctx, "US", 2500)
	suite.Require().NoError(err)
	suite.Require().Len(options, 3)
	suite.Equal(domain.ServiceEconomy, options[0].ServiceLevel)
	suite.Equal(domain.ServiceStandard, options[1].ServiceLevel)
	suite.Equal(int64(1500), options[1].CostMinor)
	suite.Equal(domain.ServiceExpress, options[2].ServiceLevel)

	options, err = suite.service.GetShippingOptions(ctx, "JP", 100)
	suite.Require().NoError(err)
	suite.Require().Len(options, 1)
	suite.Equal("world", options[0].ZoneID)
}

func (suite *ShippingServiceTestSuite) TestGetShippingOptions_NotEligible() {
	options, err := suite.service.GetShippingOptions(context.Background(), "XK", 100)

	suite.Require().NoError(err)
	suite.NotNil(options)
	suite.Empty(options)
}

func (suite *ShippingServiceTestSuite) TestGetShippingOptions_Validation() {
	ctx := context.Background()

	_, err := suite.service.GetShippingOptions(ctx, "ZZ", 100)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetShippingOptions(ctx, "US", -5)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestShippingService(t *testing.T) {
	suite.Run(t, new(ShippingServiceTestSuite))
}
