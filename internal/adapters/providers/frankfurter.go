package providers

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// FrankfurterProvider reads the ECB reference rates published by frankfurter.app.
type FrankfurterProvider struct {
	httpClient
}

type frankfurterResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// NewFrankfurterProvider creates a provider rooted at baseURL, e.g. https://api.frankfurter.app.
func NewFrankfurterProvider(baseURL string, opts ...Option) *FrankfurterProvider {
	return &FrankfurterProvider{httpClient: newHTTPClient("frankfurter", strings.TrimRight(baseURL, "/"), opts...)}
}

func (p *FrankfurterProvider) Name() string { return p.name }

// FetchRates returns every rate quoted against baseCurrency. The base itself
// is not part of the answer.
func (p *FrankfurterProvider) FetchRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	var resp frankfurterResponse
	q := url.Values{"base": {baseCurrency}}
	if err := p.getJSON(ctx, p.baseURL+"/latest?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if !strings.EqualFold(resp.Base, baseCurrency) {
		return nil, malformed(p.name, "base %q, requested %q", resp.Base, baseCurrency)
	}
	if len(resp.Rates) == 0 {
		return nil, malformed(p.name, "no rates")
	}
	return resp.Rates, nil
}
