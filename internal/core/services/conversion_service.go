package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/core/ratestore"
	"github.com/SscSPs/intl_pricing_service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

// DefaultStalenessThreshold is how old a rate may get before conversions through it fail closed.
const DefaultStalenessThreshold = 24 * time.Hour

const effectiveRatePlaces = 10

// ConversionService converts minor-unit amounts using base-relative rates.
type ConversionService struct {
	BaseService
	catalog   *catalog.Holder
	rates     *ratestore.Store
	staleness time.Duration
	now       func() time.Time
	metrics   *metrics.PricingMetrics
}

// ConversionServiceOption is a function that configures a ConversionService.
type ConversionServiceOption func(*ConversionService)

// WithConversionStaleness overrides DefaultStalenessThreshold.
func WithConversionStaleness(d time.Duration) ConversionServiceOption {
	return func(s *ConversionService) {
		if d > 0 {
			s.staleness = d
		}
	}
}

// WithConversionClock replaces time.Now, for tests.
func WithConversionClock(now func() time.Time) ConversionServiceOption {
	return func(s *ConversionService) {
		s.now = now
	}
}

// WithConversionMetrics records conversion outcomes.
func WithConversionMetrics(m *metrics.PricingMetrics) ConversionServiceOption {
	return func(s *ConversionService) {
		s.metrics = m
	}
}

// NewConversionService creates a new ConversionService.
func NewConversionService(holder *catalog.Holder, rates *ratestore.Store, options ...ConversionServiceOption) *ConversionService {
	s := &ConversionService{
		catalog:   holder,
		rates:     rates,
		staleness: DefaultStalenessThreshold,
		now:       time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

type rateLeg struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// Convert turns amountMinor of fromCurrency into toCurrency.
//
// The whole computation is one exact division, rounded half-up to a minor unit
// of the target only at the end:
//
//	amount * rate(base→to) * 10^precision(to) / (rate(base→from) * 10^precision(from))
func (s *ConversionService) Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*domain.Conversion, error) {
	if amountMinor < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	cat := s.catalog.Current()
	from, err := knownCurrency(cat, fromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := knownCurrency(cat, toCurrency)
	if err != nil {
		return nil, err
	}

	if from.CurrencyCode == to.CurrencyCode {
		s.metrics.RecordConversion("identity")
		return &domain.Conversion{
			AmountMinor:    amountMinor,
			FromCurrency:   from.CurrencyCode,
			ToCurrency:     to.CurrencyCode,
			ConvertedMinor: amountMinor,
			EffectiveRate:  decimal.NewFromInt(1),
		}, nil
	}

	// one snapshot per conversion: both legs come from the same publication
	snap := s.rates.Snapshot()
	base := cat.Base().CurrencyCode
	fromLeg, err := s.leg(snap, base, from.CurrencyCode)
	if err != nil {
		return nil, s.unavailable(ctx, err, from.CurrencyCode, to.CurrencyCode)
	}
	toLeg, err := s.leg(snap, base, to.CurrencyCode)
	if err != nil {
		return nil, s.unavailable(ctx, err, from.CurrencyCode, to.CurrencyCode)
	}

	num := decimal.NewFromInt(amountMinor).Mul(toLeg.rate).Mul(to.MinorUnitScale())
	den := fromLeg.rate.Mul(from.MinorUnitScale())
	converted := num.DivRound(den, 0)

	s.metrics.RecordConversion("ok")
	return &domain.Conversion{
		AmountMinor:    amountMinor,
		FromCurrency:   from.CurrencyCode,
		ToCurrency:     to.CurrencyCode,
		ConvertedMinor: converted.IntPart(),
		EffectiveRate:  toLeg.rate.DivRound(fromLeg.rate, effectiveRatePlaces),
		RatesAsOf:      oldest(fromLeg.fetchedAt, toLeg.fetchedAt),
	}, nil
}

// leg returns rate(base→code). The base itself is 1 with no timestamp.
func (s *ConversionService) leg(snap *ratestore.Snapshot, base, code string) (rateLeg, error) {
	if code == base {
		return rateLeg{rate: decimal.NewFromInt(1)}, nil
	}
	if snap.Base() != base {
		return rateLeg{}, fmt.Errorf("%w: rates are quoted against %s, catalog base is %s", apperrors.ErrConversionUnavailable, snap.Base(), base)
	}
	r, ok := snap.Rate(code)
	if !ok || !r.Rate.IsPositive() {
		return rateLeg{}, fmt.Errorf("%w: no rate for %s", apperrors.ErrConversionUnavailable, code)
	}
	if age := s.now().Sub(r.FetchedAt); age > s.staleness {
		return rateLeg{}, fmt.Errorf("%w: rate for %s is %s old", apperrors.ErrConversionUnavailable, code, age.Truncate(time.Second))
	}
	return rateLeg{rate: r.Rate, fetchedAt: r.FetchedAt}, nil
}

func (s *ConversionService) unavailable(ctx context.Context, err error, from, to string) error {
	s.metrics.RecordConversion("unavailable")
	s.LogWarn(ctx, "Conversion unavailable",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("error", err.Error()))
	return err
}

func knownCurrency(cat *catalog.Catalog, code string) (domain.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur, ok := cat.Currency(code)
	if !ok {
		return domain.Currency{}, fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, code)
	}
	return cur, nil
}

// oldest returns the earliest non-zero time.
func oldest(a, b time.Time) time.Time {
	switch {
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	case a.Before(b):
		return a
	default:
		return b
	}
}
