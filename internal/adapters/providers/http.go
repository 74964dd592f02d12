// Package providers implements exchange-rate sources. Every provider returns
// rates relative to the requested base and reports failures as
// apperrors.ProviderError so the refresh orchestrator can classify them.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
)

// DefaultHTTPTimeout bounds a single provider request when the caller's
// context carries no deadline.
const DefaultHTTPTimeout = 5 * time.Second

// maxBodyBytes caps how much of a provider response is read.
const maxBodyBytes = 1 << 20

// Option configures an HTTP provider.
type Option func(*httpClient)

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *httpClient) {
		c.client = client
	}
}

type httpClient struct {
	name    string
	baseURL string
	client  *http.Client
}

func newHTTPClient(name, baseURL string, opts ...Option) httpClient {
	c := httpClient{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// getJSON performs a GET and decodes the body into out.
func (c httpClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperrors.NewProviderError(c.name, apperrors.ProviderUnavailable, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.NewProviderError(c.name, transportKind(ctx, err), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return apperrors.NewProviderError(c.name, apperrors.ProviderRateLimited, fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return apperrors.NewProviderError(c.name, apperrors.ProviderHTTP, fmt.Errorf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return apperrors.NewProviderError(c.name, transportKind(ctx, err), fmt.Errorf("failed to read response: %w", err))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewProviderError(c.name, apperrors.ProviderMalformed, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

func transportKind(ctx context.Context, err error) apperrors.ProviderErrorKind {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ProviderTimeout
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.ProviderTimeout
	}
	return apperrors.ProviderUnavailable
}

func malformed(provider, format string, args ...any) error {
	return apperrors.NewProviderError(provider, apperrors.ProviderMalformed, fmt.Errorf(format, args...))
}
