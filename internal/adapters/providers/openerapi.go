package providers

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// OpenERAPIProvider reads the open.er-api.com "latest" endpoint.
type OpenERAPIProvider struct {
	httpClient
}

type openERAPIResponse struct {
	Result    string                     `json:"result"`
	BaseCode  string                     `json:"base_code"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	ErrorType string                     `json:"error-type"`
}

// NewOpenERAPIProvider creates a provider rooted at baseURL, e.g. https://open.er-api.com/v6.
func NewOpenERAPIProvider(baseURL string, opts ...Option) *OpenERAPIProvider {
	return &OpenERAPIProvider{httpClient: newHTTPClient("openerapi", strings.TrimRight(baseURL, "/"), opts...)}
}

func (p *OpenERAPIProvider) Name() string { return p.name }

// FetchRates returns every rate quoted against baseCurrency.
func (p *OpenERAPIProvider) FetchRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	var resp openERAPIResponse
	if err := p.getJSON(ctx, p.baseURL+"/latest/"+url.PathEscape(baseCurrency), &resp); err != nil {
		return nil, err
	}
	if resp.Result != "success" {
		return nil, malformed(p.name, "result %q (%s)", resp.Result, resp.ErrorType)
	}
	if !strings.EqualFold(resp.BaseCode, baseCurrency) {
		return nil, malformed(p.name, "base %q, requested %q", resp.BaseCode, baseCurrency)
	}
	if len(resp.Rates) == 0 {
		return nil, malformed(p.name, "no rates")
	}
	return resp.Rates, nil
}
