package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portsrepo "github.com/SscSPs/intl_pricing_service/internal/core/ports/repositories"
	"github.com/SscSPs/intl_pricing_service/internal/core/ratestore"
	"github.com/SscSPs/intl_pricing_service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

// Refresh defaults, overridable through ExchangeRateServiceOption.
const (
	DefaultProviderTimeout         = 5 * time.Second
	DefaultRefreshTimeout          = 30 * time.Second
	DefaultBreakerFailureThreshold = 3
	DefaultBreakerCooldown         = 60 * time.Second
	defaultHistoryLimit            = 30
	maxHistoryLimit                = 500
)

// DefaultSignificantChange is the relative move (5%) that flags a rate.
var DefaultSignificantChange = decimal.RequireFromString("0.05")

type rateProvider struct {
	provider domain.ExchangeRateProvider
	breaker  *gobreaker.CircuitBreaker
	priority int
}

// ExchangeRateService is the rate provider orchestrator. It is the only writer of
// the rate store and the exchange rate history.
type ExchangeRateService struct {
	BaseService
	providers []*rateProvider
	catalog   *catalog.Holder
	store     *ratestore.Store
	repo      portsrepo.ExchangeRateRepositoryFacade
	publisher domain.RateEventPublisher
	metrics   *metrics.PricingMetrics
	logger    *slog.Logger

	providerTimeout  time.Duration
	refreshTimeout   time.Duration
	staleness        time.Duration
	significant      decimal.Decimal
	failureThreshold uint32
	cooldown         time.Duration
	now              func() time.Time

	// held for the whole of a refresh; a second caller gets ErrRefreshInProgress
	running sync.Mutex
}

// ExchangeRateServiceOption is a function that configures an ExchangeRateService.
type ExchangeRateServiceOption func(*ExchangeRateService)

// WithProviderTimeout bounds each provider call.
func WithProviderTimeout(d time.Duration) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if d > 0 {
			s.providerTimeout = d
		}
	}
}

// WithRefreshTimeout bounds a whole refresh cycle.
func WithRefreshTimeout(d time.Duration) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if d > 0 {
			s.refreshTimeout = d
		}
	}
}

// WithRateStaleness sets the age past which rates are reported stale.
func WithRateStaleness(d time.Duration) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if d > 0 {
			s.staleness = d
		}
	}
}

// WithSignificantChangeThreshold sets the relative deviation that flags a rate.
func WithSignificantChangeThreshold(threshold decimal.Decimal) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if !threshold.IsNegative() {
			s.significant = threshold
		}
	}
}

// WithBreakerSettings configures every provider's circuit breaker.
func WithBreakerSettings(failureThreshold uint32, cooldown time.Duration) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if failureThreshold > 0 {
			s.failureThreshold = failureThreshold
		}
		if cooldown > 0 {
			s.cooldown = cooldown
		}
	}
}

// WithRateRepository persists every published rate.
func WithRateRepository(repo portsrepo.ExchangeRateRepositoryFacade) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.repo = repo
	}
}

// WithRateEventPublisher announces significant changes.
func WithRateEventPublisher(p domain.RateEventPublisher) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.publisher = p
	}
}

// WithRefreshMetrics records refresh and breaker metrics.
func WithRefreshMetrics(m *metrics.PricingMetrics) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.metrics = m
	}
}

// WithRefreshLogger sets the logger used outside request scope (scheduler, breakers).
func WithRefreshLogger(logger *slog.Logger) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRefreshClock replaces time.Now, for tests.
func WithRefreshClock(now func() time.Time) ExchangeRateServiceOption {
	return func(s *ExchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates the orchestrator. providers are tried in the
// given order; each gets its own circuit breaker.
func NewExchangeRateService(holder *catalog.Holder, store *ratestore.Store, providers []domain.ExchangeRateProvider, options ...ExchangeRateServiceOption) *ExchangeRateService {
	s := &ExchangeRateService{
		catalog:          holder,
		store:            store,
		logger:           slog.Default(),
		providerTimeout:  DefaultProviderTimeout,
		refreshTimeout:   DefaultRefreshTimeout,
		staleness:        DefaultStalenessThreshold,
		significant:      DefaultSignificantChange,
		failureThreshold: DefaultBreakerFailureThreshold,
		cooldown:         DefaultBreakerCooldown,
		now:              time.Now,
	}
	for _, option := range options {
		option(s)
	}

	for i, p := range providers {
		s.providers = append(s.providers, &rateProvider{
			provider: p,
			priority: i,
			breaker:  s.newBreaker(p.Name()),
		})
		s.metrics.SetBreakerState(p.Name(), breakerStateValue(gobreaker.StateClosed))
	}
	return s
}

func (s *ExchangeRateService) newBreaker(name string) *gobreaker.CircuitBreaker {
	threshold := s.failureThreshold
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1, // half-open allows a single trial call
		Timeout:     s.cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// a cancelled refresh says nothing about the provider
		IsSuccessful: func(err error) bool {
			return err == nil || isAborted(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("Rate provider circuit breaker changed state",
				slog.String("provider", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			s.metrics.SetBreakerState(name, breakerStateValue(to))
		},
	})
}

func breakerStateValue(st gobreaker.State) int {
	switch st {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// RefreshRates runs one refresh cycle: providers are tried in priority order and
// the first complete rate map is persisted and published. If every provider
// fails, or ctx ends first, the rate store is left untouched and a
// *apperrors.RefreshError is returned.
func (s *ExchangeRateService) RefreshRates(ctx context.Context) (*domain.RefreshResult, error) {
	if !s.running.TryLock() {
		return nil, apperrors.ErrRefreshInProgress
	}
	defer s.running.Unlock()

	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
	defer cancel()

	cat := s.catalog.Current()
	base := cat.Base().CurrencyCode
	required := cat.QuoteCurrencies()

	var attempts []*apperrors.ProviderError
	var skipped []string
	for _, p := range s.providers {
		if err := ctx.Err(); err != nil {
			return nil, s.fail(started, "aborted", &apperrors.RefreshError{Attempts: attempts, Cause: err})
		}

		rates, perr := s.fetch(ctx, p, base, required)
		if perr != nil {
			attempts = append(attempts, perr)
			skipped = append(skipped, p.provider.Name())
			s.logger.Warn("Rate provider failed",
				slog.String("provider", perr.Provider),
				slog.String("kind", string(perr.Kind)),
				slog.String("error", perr.Err.Error()))
			continue
		}

		result, err := s.apply(ctx, base, required, p.provider.Name(), rates)
		if err != nil {
			return nil, s.fail(started, "aborted", &apperrors.RefreshError{Attempts: attempts, Cause: err})
		}
		result.SkippedProviders = skipped
		s.metrics.RecordRefresh("success", time.Since(started))
		s.logger.Info("Exchange rates refreshed",
			slog.String("provider", result.Provider),
			slog.String("base_currency", base),
			slog.Int("rates", len(result.Rates)),
			slog.Int("significant_changes", len(result.SignificantChanges)),
			slog.Any("skipped_providers", skipped))
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, s.fail(started, "aborted", &apperrors.RefreshError{Attempts: attempts, Cause: err})
	}
	return nil, s.fail(started, "all_providers_failed", &apperrors.RefreshError{Attempts: attempts, Cause: apperrors.ErrAllProvidersFailed})
}

func (s *ExchangeRateService) fail(started time.Time, outcome string, err *apperrors.RefreshError) error {
	s.metrics.RecordRefresh(outcome, time.Since(started))
	s.logger.Error("Exchange rate refresh failed, keeping previous rates",
		slog.String("outcome", outcome),
		slog.String("error", err.Error()))
	return err
}

type fetchOutcome struct {
	rates map[string]decimal.Decimal
	err   error
}

// fetch calls one provider through its breaker. The call is abandoned when the
// provider timeout or the cycle context expires, whichever comes first.
func (s *ExchangeRateService) fetch(ctx context.Context, p *rateProvider, base string, required []string) (map[string]decimal.Decimal, *apperrors.ProviderError) {
	name := p.provider.Name()
	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	started := time.Now()
	out, err := p.breaker.Execute(func() (interface{}, error) {
		done := make(chan fetchOutcome, 1)
		go func() {
			rates, err := p.provider.FetchRates(callCtx, base)
			done <- fetchOutcome{rates: rates, err: err}
		}()

		select {
		case <-callCtx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, apperrors.NewProviderError(name, apperrors.ProviderAborted, ctx.Err())
			}
			return nil, apperrors.NewProviderError(name, apperrors.ProviderTimeout, callCtx.Err())
		case res := <-done:
			if res.err != nil {
				if errors.Is(ctx.Err(), context.Canceled) {
					return nil, apperrors.NewProviderError(name, apperrors.ProviderAborted, ctx.Err())
				}
				return nil, res.err
			}
			return completeRates(name, res.rates, required)
		}
	})
	if err != nil {
		perr := classifyProviderError(name, err)
		elapsed := time.Since(started)
		if perr.Kind == apperrors.ProviderCircuitOpen {
			elapsed = 0
		}
		s.metrics.RecordProviderCall(name, string(perr.Kind), elapsed)
		return nil, perr
	}
	s.metrics.RecordProviderCall(name, "success", time.Since(started))
	return out.(map[string]decimal.Decimal), nil
}

// completeRates keeps the catalog currencies of a provider answer and fails
// unless every one of them has a positive rate.
func completeRates(provider string, rates map[string]decimal.Decimal, required []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(required))
	var missing []string
	for _, code := range required {
		r, ok := rates[code]
		if !ok || !r.IsPositive() {
			missing = append(missing, code)
			continue
		}
		out[code] = r
	}
	if len(missing) > 0 {
		return nil, apperrors.NewProviderError(provider, apperrors.ProviderMalformed,
			fmt.Errorf("incomplete rate map, missing %s", strings.Join(missing, ",")))
	}
	return out, nil
}

func isAborted(err error) bool {
	var perr *apperrors.ProviderError
	return errors.As(err, &perr) && perr.Kind == apperrors.ProviderAborted
}

func classifyProviderError(provider string, err error) *apperrors.ProviderError {
	var perr *apperrors.ProviderError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return apperrors.NewProviderError(provider, apperrors.ProviderCircuitOpen, err)
	case errors.As(err, &perr):
		return perr
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewProviderError(provider, apperrors.ProviderTimeout, err)
	default:
		return apperrors.NewProviderError(provider, apperrors.ProviderUnavailable, err)
	}
}

// apply flags significant changes, persists the rows and publishes the new
// snapshot. Nothing is published once ctx has ended.
func (s *ExchangeRateService) apply(ctx context.Context, base string, required []string, provider string, rates map[string]decimal.Decimal) (*domain.RefreshResult, error) {
	fetchedAt := s.now().UTC()
	prev := s.store.Snapshot()

	rows := make([]domain.ExchangeRate, 0, len(required))
	var events []domain.RateChangedEvent
	var flagged []string
	for _, code := range required {
		row := domain.ExchangeRate{
			ExchangeRateID:   uuid.NewString(),
			FromCurrencyCode: base,
			ToCurrencyCode:   code,
			Rate:             rates[code],
			FetchedAt:        fetchedAt,
			ProviderID:       provider,
		}
		if old, ok := prev.Rate(code); ok && prev.Base() == base && old.Rate.IsPositive() {
			deviation := row.Rate.Sub(old.Rate).Abs().Div(old.Rate)
			if deviation.GreaterThan(s.significant) {
				row.SignificantChange = true
				flagged = append(flagged, code)
				events = append(events, domain.RateChangedEvent{
					BaseCurrency:      base,
					CurrencyCode:      code,
					PreviousRate:      old.Rate,
					NewRate:           row.Rate,
					RelativeDeviation: deviation.Round(6),
					Provider:          provider,
					FetchedAt:         fetchedAt,
				})
			}
		}
		rows = append(rows, row)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.repo != nil {
		if err := s.repo.SaveExchangeRates(ctx, rows); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			// history is best effort; serving fresh rates matters more
			s.logger.Error("Failed to persist exchange rates", slog.String("error", err.Error()))
		}
	}

	s.store.Publish(ratestore.NewSnapshot(base, rows, fetchedAt))
	s.metrics.RecordPublished(fetchedAt)
	s.metrics.SetStaleness(0, false)

	for _, ev := range events {
		s.metrics.RecordSignificantChange(ev.CurrencyCode)
		s.logger.Info("Significant exchange rate change",
			slog.String("currency", ev.CurrencyCode),
			slog.String("previous_rate", ev.PreviousRate.String()),
			slog.String("new_rate", ev.NewRate.String()),
			slog.String("deviation", ev.RelativeDeviation.String()))
	}
	if len(events) > 0 && s.publisher != nil {
		if err := s.publisher.PublishRateChanges(ctx, events); err != nil {
			s.logger.Error("Failed to publish rate change events", slog.String("error", err.Error()))
		}
	}

	return &domain.RefreshResult{
		BaseCurrency:       base,
		Provider:           provider,
		FetchedAt:          fetchedAt,
		Rates:              rows,
		SignificantChanges: flagged,
	}, nil
}

// SeedRates publishes the latest persisted rates so a restart serves the last
// good table before the first refresh completes.
func (s *ExchangeRateService) SeedRates(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	s.running.Lock()
	defer s.running.Unlock()

	base := s.catalog.Current().Base().CurrencyCode
	rows, err := s.repo.FindLatestExchangeRates(ctx, base)
	if err != nil {
		return fmt.Errorf("failed to load persisted exchange rates: %w", err)
	}
	if len(rows) == 0 {
		s.logger.Info("No persisted exchange rates to seed from", slog.String("base_currency", base))
		return nil
	}

	var latest time.Time
	for _, r := range rows {
		if r.FetchedAt.After(latest) {
			latest = r.FetchedAt
		}
	}
	snap := ratestore.NewSnapshot(base, rows, latest)
	s.store.Publish(snap)
	s.metrics.RecordPublished(latest)
	s.logger.Info("Seeded exchange rates from history",
		slog.String("base_currency", base),
		slog.Int("rates", snap.Len()),
		slog.Time("as_of", latest))
	return nil
}

// CheckStaleness reports the age of the oldest rate and whether the table is
// unusable for conversions: older than the threshold or missing a currency.
func (s *ExchangeRateService) CheckStaleness(ctx context.Context) (time.Duration, bool) {
	cat := s.catalog.Current()
	snap := s.store.Snapshot()

	var missing []string
	for _, code := range cat.QuoteCurrencies() {
		if _, ok := snap.Rate(code); !ok || snap.Base() != cat.Base().CurrencyCode {
			missing = append(missing, code)
		}
	}

	var age time.Duration
	if oldestFetch := snap.OldestFetch(); !oldestFetch.IsZero() {
		age = s.now().Sub(oldestFetch)
	}
	stale := age > s.staleness || len(missing) > 0
	s.metrics.SetStaleness(age, stale)
	if stale {
		s.logger.Error("Exchange rates are stale",
			slog.Duration("age", age),
			slog.Duration("threshold", s.staleness),
			slog.Any("missing_currencies", missing))
	}
	return age, stale
}

// GetCurrentRates returns the published table with per-rate age and stale flags.
func (s *ExchangeRateService) GetCurrentRates(ctx context.Context) (*domain.RateTable, error) {
	snap := s.store.Snapshot()
	now := s.now()
	table := &domain.RateTable{
		BaseCurrency: snap.Base(),
		PublishedAt:  snap.PublishedAt(),
		Rates:        make([]domain.RateQuote, 0, snap.Len()),
	}
	for _, r := range snap.Rates() {
		age := now.Sub(r.FetchedAt)
		table.Rates = append(table.Rates, domain.RateQuote{
			CurrencyCode:      r.ToCurrencyCode,
			Rate:              r.Rate,
			FetchedAt:         r.FetchedAt,
			ProviderID:        r.ProviderID,
			SignificantChange: r.SignificantChange,
			AgeSeconds:        int64(age / time.Second),
			Stale:             age > s.staleness,
		})
	}
	return table, nil
}

// GetRateHistory returns persisted base→currencyCode rows, newest first.
func (s *ExchangeRateService) GetRateHistory(ctx context.Context, currencyCode string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	cat := s.catalog.Current()
	cur, err := knownCurrency(cat, currencyCode)
	if err != nil {
		return nil, nil, err
	}
	if cur.IsBase {
		return nil, nil, fmt.Errorf("%w: %s is the base currency", apperrors.ErrValidation, cur.CurrencyCode)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if s.repo == nil {
		return []domain.ExchangeRate{}, nil, nil
	}
	rows, next, err := s.repo.ListExchangeRateHistory(ctx, cat.Base().CurrencyCode, cur.CurrencyCode, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to list exchange rate history", slog.String("currency", cur.CurrencyCode))
		return nil, nil, fmt.Errorf("failed to list exchange rate history: %w", err)
	}
	if rows == nil {
		rows = []domain.ExchangeRate{}
	}
	return rows, next, nil
}

// ProviderStatuses reports every provider's breaker in priority order.
func (s *ExchangeRateService) ProviderStatuses(ctx context.Context) []domain.ProviderStatus {
	out := make([]domain.ProviderStatus, 0, len(s.providers))
	for _, p := range s.providers {
		out = append(out, domain.ProviderStatus{
			Name:                p.provider.Name(),
			Priority:            p.priority,
			State:               p.breaker.State().String(),
			ConsecutiveFailures: p.breaker.Counts().ConsecutiveFailures,
		})
	}
	return out
}
