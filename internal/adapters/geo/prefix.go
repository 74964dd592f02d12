// Package geo maps client IP addresses to countries.
package geo

import (
	"context"
	"net/netip"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
)

// PrefixGeolocator resolves addresses against the IP ranges of the current
// catalog, so a catalog reload also refreshes the geolocation table.
type PrefixGeolocator struct {
	catalog *catalog.Holder
}

// NewPrefixGeolocator creates a geolocator backed by holder.
func NewPrefixGeolocator(holder *catalog.Holder) *PrefixGeolocator {
	return &PrefixGeolocator{catalog: holder}
}

// Lookup returns the country of the most specific matching prefix. Private,
// loopback and unparseable addresses are unknown.
func (g *PrefixGeolocator) Lookup(_ context.Context, ipAddress string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ipAddress))
	if err != nil {
		return "", false
	}
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return "", false
	}

	best := -1
	country := ""
	for _, r := range g.catalog.Current().IPRanges() {
		if r.Prefix.Bits() > best && r.Prefix.Contains(addr) {
			best = r.Prefix.Bits()
			country = r.CountryCode
		}
	}
	return country, best >= 0
}
