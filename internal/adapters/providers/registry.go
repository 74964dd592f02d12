package providers

import (
	"fmt"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Settings carries what the named providers need.
type Settings struct {
	BaseCurrency       string
	OpenERAPIBaseURL   string
	FrankfurterBaseURL string
	StaticRates        map[string]decimal.Decimal
}

// Build returns the providers in the given priority order. Unknown names are an error.
func Build(names []string, settings Settings, opts ...Option) ([]domain.ExchangeRateProvider, error) {
	out := make([]domain.ExchangeRateProvider, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		switch name {
		case "openerapi":
			out = append(out, NewOpenERAPIProvider(settings.OpenERAPIBaseURL, opts...))
		case "frankfurter":
			out = append(out, NewFrankfurterProvider(settings.FrankfurterBaseURL, opts...))
		case "static":
			out = append(out, NewStaticProvider(settings.BaseCurrency, settings.StaticRates))
		default:
			return nil, fmt.Errorf("unknown rate provider %q", raw)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no rate providers configured")
	}
	return out, nil
}
