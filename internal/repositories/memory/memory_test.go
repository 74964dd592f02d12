package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(to, rate string, at time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{FromCurrencyCode: "USD", ToCurrencyCode: to, Rate: decimal.RequireFromString(rate), FetchedAt: at, ProviderID: "static"}
}

func TestExchangeRateRepository_LatestAndHistory(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewExchangeRateRepository()
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveExchangeRates(ctx, []domain.ExchangeRate{row("EUR", "0.90", t0), row("GBP", "0.80", t0)}))
	require.NoError(t, repo.SaveExchangeRates(ctx, []domain.ExchangeRate{row("EUR", "0.91", t0.Add(time.Hour))}))
	require.NoError(t, repo.SaveExchangeRates(ctx, []domain.ExchangeRate{row("EUR", "0.92", t0.Add(2*time.Hour))}))

	latest, err := repo.FindLatestExchangeRates(ctx, "usd")
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "EUR", latest[0].ToCurrencyCode)
	assert.Equal(t, "0.92", latest[0].Rate.String())
	assert.NotEmpty(t, latest[0].ExchangeRateID)
	assert.Equal(t, "0.8", latest[1].Rate.String())

	history, next, err := repo.ListExchangeRateHistory(ctx, "USD", "eur", 2, nil)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "0.92", history[0].Rate.String())
	assert.Equal(t, "0.91", history[1].Rate.String())
	require.NotNil(t, next)

	rest, next, err := repo.ListExchangeRateHistory(ctx, "USD", "EUR", 2, next)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "0.9", rest[0].Rate.String())
	assert.Nil(t, next)

	bad := "%%%"
	_, _, err = repo.ListExchangeRateHistory(ctx, "USD", "EUR", 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	none, err := repo.FindLatestExchangeRates(ctx, "EUR")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPreferenceRepository()

	_, err := repo.FindPreference(ctx, "u1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SavePreference(ctx, domain.Preference{UserID: "u1", CurrencyCode: "EUR"}))
	require.NoError(t, repo.SavePreference(ctx, domain.Preference{UserID: "u1", CurrencyCode: "GBP"}))

	pref, err := repo.FindPreference(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "GBP", pref.CurrencyCode)

	assert.ErrorIs(t, repo.SavePreference(ctx, domain.Preference{}), apperrors.ErrValidation)
}
