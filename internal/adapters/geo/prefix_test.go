package geo_test

import (
	"context"
	"net/netip"
	"testing"

	"github.com/SscSPs/intl_pricing_service/internal/adapters/geo"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog/catalogtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixGeolocator_Lookup(t *testing.T) {
	g := geo.NewPrefixGeolocator(catalogtest.Holder())

	tests := []struct {
		ip      string
		country string
		ok      bool
	}{
		{"81.2.69.142", "GB", true},
		{"5.9.10.11", "DE", true},
		{"::ffff:8.8.8.8", "US", true},
		{"2a01:4f8:c0c:1234::1", "DE", true},
		{" 133.1.2.3 ", "JP", true},
		{"9.9.9.9", "", false},
		{"10.1.2.3", "", false},
		{"192.168.0.10", "", false},
		{"127.0.0.1", "", false},
		{"::1", "", false},
		{"not-an-ip", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			country, ok := g.Lookup(context.Background(), tt.ip)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.country, country)
		})
	}
}

func TestPrefixGeolocator_MostSpecificPrefixWins(t *testing.T) {
	data := catalogtest.Data()
	data.IPRanges = append(data.IPRanges, catalog.IPRange{Prefix: netip.MustParsePrefix("133.5.0.0/16"), CountryCode: "US"})
	cat, err := catalog.New(data)
	require.NoError(t, err)
	g := geo.NewPrefixGeolocator(catalog.NewStaticHolder(cat))

	country, ok := g.Lookup(context.Background(), "133.5.1.1")
	assert.True(t, ok)
	assert.Equal(t, "US", country)

	country, _ = g.Lookup(context.Background(), "133.6.1.1")
	assert.Equal(t, "JP", country)
}
