package catalogcsv_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/SscSPs/intl_pricing_service/internal/adapters/catalogcsv"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		catalogcsv.CurrenciesFile: file("\ufeffcurrency_code,name,symbol,symbol_position,precision,grouping_separator,decimal_separator,is_base\n" +
			"usd,US Dollar,$,prefix,2,\",\",.,true\n" +
			"SEK,Swedish Krona,kr,suffix,2, ,\",\",false\n"),
		catalogcsv.CountriesFile: file("country_code,name,default_currency,locale,timezone\n" +
			"# comment rows are skipped\n" +
			"US,United States,USD,en-US,America/New_York\n" +
			"SE,Sweden,SEK,sv-SE,Europe/Stockholm\n"),
		catalogcsv.ShippingZonesFile: file("zone_id,name,priority,countries\n" +
			"domestic,Domestic,1,us\n" +
			"world,World,100,*\n"),
		catalogcsv.ShippingRatesFile: file("zone_id,service_level,currency_code,breakpoints,overage_unit_grams,overage_rate_minor,min_days,max_days\n" +
			"domestic,Standard,USD,500:500 2000:1200,1000,300,3,5\n" +
			"world,economy,usd,2000:2000,1000,800,10,20\n"),
		catalogcsv.TaxRatesFile: file("jurisdiction,country_code,tax_type,rate,inclusive,category_rates\n" +
			"SE,SE,vat,0.25,true,Food:0.12 books:0.06\n" +
			"US-CA,US,sales,0.0725,,\n"),
	}
}

func TestSource_Load(t *testing.T) {
	data, err := catalogcsv.NewSource(minimalFS()).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Currencies, 2)
	assert.Equal(t, "USD", data.Currencies[0].CurrencyCode)
	assert.True(t, data.Currencies[0].IsBase)
	assert.Equal(t, ",", data.Currencies[0].GroupingSeparator)
	assert.Equal(t, " ", data.Currencies[1].GroupingSeparator)
	assert.Equal(t, domain.SymbolSuffix, data.Currencies[1].SymbolPosition)

	require.Len(t, data.Countries, 2)
	assert.True(t, data.Countries[0].ShippingEligible, "eligibility defaults to true")

	require.Len(t, data.Zones, 2)
	assert.Equal(t, []string{"US"}, data.Zones[0].CountryCodes)
	assert.True(t, data.Zones[1].CatchAll)

	require.Len(t, data.ShippingRates, 2)
	assert.Equal(t, domain.ServiceStandard, data.ShippingRates[0].ServiceLevel)
	assert.Equal(t, []domain.Breakpoint{{MaxWeightGrams: 500, PriceMinor: 500}, {MaxWeightGrams: 2000, PriceMinor: 1200}}, data.ShippingRates[0].Breakpoints)
	assert.Equal(t, domain.DeliveryEstimate{MinDays: 3, MaxDays: 5}, data.ShippingRates[0].Estimate)

	require.Len(t, data.TaxRates, 2)
	assert.Equal(t, domain.TaxVAT, data.TaxRates[0].TaxType)
	assert.Equal(t, "0.12", data.TaxRates[0].CategoryRates["food"].String())
	assert.False(t, data.TaxRates[1].Inclusive)

	assert.Empty(t, data.IPRanges, "geoip.csv is optional")

	_, err = catalog.New(data)
	assert.NoError(t, err)
}

func TestSource_LoadReportsEveryBrokenFile(t *testing.T) {
	fsys := minimalFS()
	fsys[catalogcsv.ShippingRatesFile] = file("zone_id,service_level,currency_code,breakpoints,overage_unit_grams,overage_rate_minor,min_days,max_days\n" +
		"domestic,standard,USD,500-500,1000,300,3,5\n")
	fsys[catalogcsv.TaxRatesFile] = file("jurisdiction,country_code,tax_type,rate\nSE,SE,VAT,twenty\n")
	fsys[catalogcsv.GeoIPFile] = file("prefix,country_code\n300.1.2.0/24,SE\n")

	_, err := catalogcsv.NewSource(fsys).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipping_rates.csv:2")
	assert.Contains(t, err.Error(), "tax_rates.csv:2")
	assert.Contains(t, err.Error(), "geoip.csv:2")
}

func TestSource_MissingRequiredFileOrColumn(t *testing.T) {
	fsys := minimalFS()
	delete(fsys, catalogcsv.CountriesFile)
	_, err := catalogcsv.NewSource(fsys).Load(context.Background())
	assert.ErrorContains(t, err, "countries.csv")

	fsys = minimalFS()
	fsys[catalogcsv.ShippingZonesFile] = file("zone_id,name,countries\nworld,World,*\n")
	_, err = catalogcsv.NewSource(fsys).Load(context.Background())
	assert.ErrorContains(t, err, `missing column "priority"`)
}

func TestSource_ReferenceRates(t *testing.T) {
	fsys := minimalFS()
	rates, err := catalogcsv.NewSource(fsys).ReferenceRates()
	require.NoError(t, err)
	assert.Empty(t, rates)

	fsys[catalogcsv.ReferenceRatesFile] = file("currency_code,rate\nsek,10.45\n")
	rates, err = catalogcsv.NewSource(fsys).ReferenceRates()
	require.NoError(t, err)
	assert.Equal(t, "10.45", rates["SEK"].String())

	fsys[catalogcsv.ReferenceRatesFile] = file("currency_code,rate\nSEK,0\n")
	_, err = catalogcsv.NewSource(fsys).ReferenceRates()
	assert.Error(t, err)
}

func TestSource_ShippedCatalogIsValid(t *testing.T) {
	src := catalogcsv.NewDirSource("../../../catalog")

	holder, err := catalog.NewHolder(context.Background(), src, nil)
	require.NoError(t, err)

	cat := holder.Current()
	assert.Equal(t, "USD", cat.Base().CurrencyCode)
	assert.Equal(t, "domestic", cat.ZoneFor("US").ZoneID)
	assert.Equal(t, "eu", cat.ZoneFor("DE").ZoneID)
	assert.Equal(t, "europe", cat.ZoneFor("CH").ZoneID)
	assert.Equal(t, "world", cat.ZoneFor("ZA").ZoneID)
	assert.NotEmpty(t, cat.IPRanges())

	rates, err := src.ReferenceRates()
	require.NoError(t, err)
	for _, code := range cat.QuoteCurrencies() {
		assert.Contains(t, rates, code, "static provider must cover every quote currency")
	}
}
