// Package ratestore keeps the current exchange-rate table as an immutable
// snapshot. The refresh service is the only writer; readers grab a snapshot once
// per computation and never observe a half-applied refresh.
package ratestore

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
)

// Snapshot is a complete base-relative rate table. It is never mutated after creation.
type Snapshot struct {
	base        string
	rates       map[string]domain.ExchangeRate
	publishedAt time.Time
}

// NewSnapshot copies rates into a new snapshot keyed by target currency. When
// several rows exist for a currency the one with the latest FetchedAt wins.
func NewSnapshot(base string, rates []domain.ExchangeRate, publishedAt time.Time) *Snapshot {
	s := &Snapshot{
		base:        base,
		rates:       make(map[string]domain.ExchangeRate, len(rates)),
		publishedAt: publishedAt,
	}
	for _, r := range rates {
		if r.FromCurrencyCode != base {
			continue
		}
		if cur, ok := s.rates[r.ToCurrencyCode]; ok && cur.FetchedAt.After(r.FetchedAt) {
			continue
		}
		s.rates[r.ToCurrencyCode] = r
	}
	return s
}

// Base returns the currency every rate is expressed against.
func (s *Snapshot) Base() string { return s.base }

// PublishedAt returns when the snapshot was published; zero for the empty snapshot.
func (s *Snapshot) PublishedAt() time.Time { return s.publishedAt }

// Len returns the number of quoted currencies.
func (s *Snapshot) Len() int { return len(s.rates) }

// Rate returns the latest base→code rate.
func (s *Snapshot) Rate(code string) (domain.ExchangeRate, bool) {
	r, ok := s.rates[code]
	return r, ok
}

// Rates returns a copy of all rates ordered by target currency.
func (s *Snapshot) Rates() []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, 0, len(s.rates))
	for _, r := range s.rates {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ToCurrencyCode < out[j].ToCurrencyCode })
	return out
}

// OldestFetch returns the FetchedAt of the stalest rate; zero when empty.
func (s *Snapshot) OldestFetch() time.Time {
	var oldest time.Time
	for _, r := range s.rates {
		if oldest.IsZero() || r.FetchedAt.Before(oldest) {
			oldest = r.FetchedAt
		}
	}
	return oldest
}

// Store publishes snapshots with an atomic pointer swap.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// New returns a store holding an empty snapshot for base.
func New(base string) *Store {
	s := &Store{}
	s.current.Store(NewSnapshot(base, nil, time.Time{}))
	return s
}

// Snapshot returns the current snapshot. Never nil.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Publish replaces the current snapshot as a whole.
func (s *Store) Publish(snapshot *Snapshot) {
	s.current.Store(snapshot)
}
