// Package memory provides in-process repositories for running without a
// database and for tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/utils/pagination"
	"github.com/google/uuid"
)

// ExchangeRateRepository keeps the rate history in memory.
type ExchangeRateRepository struct {
	mu   sync.RWMutex
	rows []domain.ExchangeRate
}

func NewExchangeRateRepository() *ExchangeRateRepository {
	return &ExchangeRateRepository{}
}

// SaveExchangeRates appends rates, assigning IDs where missing.
func (r *ExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rate := range rates {
		if rate.ExchangeRateID == "" {
			rate.ExchangeRateID = uuid.NewString()
		}
		rate.FromCurrencyCode = strings.ToUpper(rate.FromCurrencyCode)
		rate.ToCurrencyCode = strings.ToUpper(rate.ToCurrencyCode)
		r.rows = append(r.rows, rate)
	}
	return nil
}

// FindLatestExchangeRates returns the newest row per target currency, ordered by currency.
func (r *ExchangeRateRepository) FindLatestExchangeRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	base := strings.ToUpper(baseCurrency)
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[string]domain.ExchangeRate)
	for _, row := range r.rows {
		if row.FromCurrencyCode != base {
			continue
		}
		if cur, ok := latest[row.ToCurrencyCode]; !ok || !row.FetchedAt.Before(cur.FetchedAt) {
			latest[row.ToCurrencyCode] = row
		}
	}
	out := make([]domain.ExchangeRate, 0, len(latest))
	for _, row := range latest {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ToCurrencyCode < out[j].ToCurrencyCode })
	return out, nil
}

// ListExchangeRateHistory returns up to limit rows for one pair, newest first,
// paging with the same tokens as the database repository.
func (r *ExchangeRateRepository) ListExchangeRateHistory(ctx context.Context, baseCurrency, targetCurrency string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	var (
		afterCursor   bool
		lastFetchedAt time.Time
		lastID        string
	)
	if nextToken != nil && *nextToken != "" {
		var err error
		lastFetchedAt, lastID, err = pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken: " + err.Error())
		}
		afterCursor = true
	}

	base, target := strings.ToUpper(baseCurrency), strings.ToUpper(targetCurrency)
	r.mu.RLock()
	var out []domain.ExchangeRate
	for _, row := range r.rows {
		if row.FromCurrencyCode != base || row.ToCurrencyCode != target {
			continue
		}
		if afterCursor && !olderThan(row, lastFetchedAt, lastID) {
			continue
		}
		out = append(out, row)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return olderThan(out[j], out[i].FetchedAt, out[i].ExchangeRateID) })

	var next *string
	if limit > 0 && len(out) > limit {
		last := out[limit-1]
		token := pagination.EncodeToken(last.FetchedAt, last.ExchangeRateID)
		next = &token
		out = out[:limit]
	}
	return out, next, nil
}

// olderThan reports whether row sorts after the (fetchedAt, id) cursor in newest-first order.
func olderThan(row domain.ExchangeRate, fetchedAt time.Time, id string) bool {
	if !row.FetchedAt.Equal(fetchedAt) {
		return row.FetchedAt.Before(fetchedAt)
	}
	return row.ExchangeRateID < id
}
