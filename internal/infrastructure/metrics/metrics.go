// Package metrics holds the prometheus collectors of the pricing service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PricingMetrics groups every collector. A nil *PricingMetrics is valid and records nothing.
type PricingMetrics struct {
	// refresh cycles
	RateRefreshTotal    *prometheus.CounterVec
	RateRefreshDuration prometheus.Histogram
	RateLastSuccess     prometheus.Gauge
	RatesStale          prometheus.Gauge
	RateSnapshotAge     prometheus.Gauge
	SignificantChanges  *prometheus.CounterVec

	// providers
	ProviderRequestsTotal *prometheus.CounterVec
	ProviderDuration      *prometheus.HistogramVec
	BreakerState          *prometheus.GaugeVec

	// request-path computations
	ConversionsTotal *prometheus.CounterVec
	ShippingQuotes   *prometheus.CounterVec
	TaxCalculations  *prometheus.CounterVec
	CatalogReloads   *prometheus.CounterVec
}

// NewPricingMetrics registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	factory := promauto.With(reg)
	return &PricingMetrics{
		RateRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_refresh_total",
				Help: "Rate refresh cycles by outcome",
			},
			[]string{"outcome"},
		),
		RateRefreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rate_refresh_duration_seconds",
				Help:    "Wall time of a rate refresh cycle",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		RateLastSuccess: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rate_refresh_last_success_timestamp_seconds",
				Help: "Unix time of the last published rate snapshot",
			},
		),
		RatesStale: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rates_stale",
				Help: "1 when the rate snapshot is older than the staleness threshold",
			},
		),
		RateSnapshotAge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rate_snapshot_age_seconds",
				Help: "Age of the oldest rate in the current snapshot",
			},
		),
		SignificantChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_significant_changes_total",
				Help: "Rates that moved more than the significant change threshold",
			},
			[]string{"currency"},
		),
		ProviderRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_provider_requests_total",
				Help: "Provider calls by provider and result",
			},
			[]string{"provider", "result"},
		),
		ProviderDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_provider_request_duration_seconds",
				Help:    "Latency of provider calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		BreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rate_provider_breaker_state",
				Help: "Circuit breaker state per provider (0 closed, 1 half-open, 2 open)",
			},
			[]string{"provider"},
		),
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Currency conversions by result",
			},
			[]string{"result"},
		),
		ShippingQuotes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipping_quotes_total",
				Help: "Shipping quotes by zone and service level",
			},
			[]string{"zone", "service_level"},
		),
		TaxCalculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tax_calculations_total",
				Help: "Tax calculations by jurisdiction",
			},
			[]string{"jurisdiction"},
		),
		CatalogReloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_reloads_total",
				Help: "Catalog reload attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordRefresh records one finished refresh cycle.
func (m *PricingMetrics) RecordRefresh(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RateRefreshTotal.WithLabelValues(outcome).Inc()
	m.RateRefreshDuration.Observe(elapsed.Seconds())
}

// RecordPublished marks a snapshot as published at t.
func (m *PricingMetrics) RecordPublished(t time.Time) {
	if m == nil {
		return
	}
	m.RateLastSuccess.Set(float64(t.Unix()))
}

// RecordSignificantChange counts one flagged currency.
func (m *PricingMetrics) RecordSignificantChange(currency string) {
	if m == nil {
		return
	}
	m.SignificantChanges.WithLabelValues(currency).Inc()
}

// RecordProviderCall records a provider attempt; result is "success" or an error kind.
func (m *PricingMetrics) RecordProviderCall(provider, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ProviderRequestsTotal.WithLabelValues(provider, result).Inc()
	if elapsed > 0 {
		m.ProviderDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
	}
}

// SetBreakerState exports a breaker state as 0 closed, 1 half-open, 2 open.
func (m *PricingMetrics) SetBreakerState(provider string, state int) {
	if m == nil {
		return
	}
	m.BreakerState.WithLabelValues(provider).Set(float64(state))
}

// SetStaleness exports the snapshot age and the stale flag.
func (m *PricingMetrics) SetStaleness(age time.Duration, stale bool) {
	if m == nil {
		return
	}
	m.RateSnapshotAge.Set(age.Seconds())
	if stale {
		m.RatesStale.Set(1)
	} else {
		m.RatesStale.Set(0)
	}
}

// RecordConversion counts a conversion by result ("ok", "identity", "unavailable").
func (m *PricingMetrics) RecordConversion(result string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(result).Inc()
}

// RecordShippingQuote counts a computed quote.
func (m *PricingMetrics) RecordShippingQuote(zoneID, level string) {
	if m == nil {
		return
	}
	m.ShippingQuotes.WithLabelValues(zoneID, level).Inc()
}

// RecordTaxCalculation counts a tax computation.
func (m *PricingMetrics) RecordTaxCalculation(jurisdiction string) {
	if m == nil {
		return
	}
	m.TaxCalculations.WithLabelValues(jurisdiction).Inc()
}

// RecordCatalogReload counts a reload attempt ("ok" or "rejected").
func (m *PricingMetrics) RecordCatalogReload(outcome string) {
	if m == nil {
		return
	}
	m.CatalogReloads.WithLabelValues(outcome).Inc()
}
