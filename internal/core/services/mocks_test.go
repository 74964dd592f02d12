package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindLatestExchangeRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRateHistory(ctx context.Context, baseCurrency, targetCurrency string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	args := m.Called(ctx, baseCurrency, targetCurrency, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.ExchangeRate), next, args.Error(2)
}

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) FindPreference(ctx context.Context, userID string) (*domain.Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}

func (m *MockPreferenceRepository) SavePreference(ctx context.Context, pref domain.Preference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

// --- Mock RateEventPublisher ---
type MockRateEventPublisher struct {
	mock.Mock
}

func (m *MockRateEventPublisher) PublishRateChanges(ctx context.Context, events []domain.RateChangedEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// fakeProvider counts calls and delegates to fetch.
type fakeProvider struct {
	name  string
	mu    sync.Mutex
	calls int
	fetch func(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	p.mu.Lock()
	p.calls++
	fetch := p.fetch
	p.mu.Unlock()
	return fetch(ctx, base)
}

func (p *fakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *fakeProvider) SetFetch(fetch func(ctx context.Context, base string) (map[string]decimal.Decimal, error)) {
	p.mu.Lock()
	p.fetch = fetch
	p.mu.Unlock()
}

func returning(rates map[string]string) func(context.Context, string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(rates))
	for k, v := range rates {
		out[k] = decimal.RequireFromString(v)
	}
	return func(context.Context, string) (map[string]decimal.Decimal, error) {
		return out, nil
	}
}

func failing(err error) func(context.Context, string) (map[string]decimal.Decimal, error) {
	return func(context.Context, string) (map[string]decimal.Decimal, error) {
		return nil, err
	}
}

// blocking waits for ctx, ignoring nothing else.
func blocking(ctx context.Context, _ string) (map[string]decimal.Decimal, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// fixtureRates are base-USD quotes for every fixture currency.
var fixtureRates = map[string]string{"EUR": "0.90", "GBP": "0.80", "JPY": "150"}

// testClock is a settable clock.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(t time.Time) *testClock { return &testClock{now: t} }

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fakeGeolocator resolves from a fixed table.
type fakeGeolocator map[string]string

func (g fakeGeolocator) Lookup(_ context.Context, ip string) (string, bool) {
	cc, ok := g[ip]
	return cc, ok
}
