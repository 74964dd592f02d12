package providers

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/shopspring/decimal"
)

// StaticProvider serves a fixed rate table. It is the last-resort provider in
// development and the seed for environments without outbound network access.
type StaticProvider struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewStaticProvider creates a provider quoting rates against base.
func NewStaticProvider(base string, rates map[string]decimal.Decimal) *StaticProvider {
	return &StaticProvider{base: strings.ToUpper(base), rates: maps.Clone(rates)}
}

func (p *StaticProvider) Name() string { return "static" }

// rebasePlaces is the precision of cross rates derived from the table.
const rebasePlaces = 12

// FetchRates returns a copy of the table. Another base is served by crossing
// through the table's own base, provided the table quotes it.
func (p *StaticProvider) FetchRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewProviderError(p.Name(), apperrors.ProviderTimeout, err)
	}
	if len(p.rates) == 0 {
		return nil, apperrors.NewProviderError(p.Name(), apperrors.ProviderUnavailable, errors.New("empty rate table"))
	}
	base := strings.ToUpper(baseCurrency)
	if base == p.base {
		return maps.Clone(p.rates), nil
	}
	pivot, ok := p.rates[base]
	if !ok || !pivot.IsPositive() {
		return nil, apperrors.NewProviderError(p.Name(), apperrors.ProviderUnavailable,
			fmt.Errorf("table is quoted in %s and has no rate for %s", p.base, base))
	}
	out := make(map[string]decimal.Decimal, len(p.rates))
	for code, rate := range p.rates {
		if code == base {
			continue
		}
		out[code] = rate.DivRound(pivot, rebasePlaces)
	}
	out[p.base] = decimal.NewFromInt(1).DivRound(pivot, rebasePlaces)
	return out, nil
}
