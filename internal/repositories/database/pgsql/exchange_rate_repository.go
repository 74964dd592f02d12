package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/models"
	"github.com/SscSPs/intl_pricing_service/internal/utils/mapping"
	"github.com/SscSPs/intl_pricing_service/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, rate,
	fetched_at, provider_id, significant_change, created_at`

// PgxExchangeRateRepository implements the ports.ExchangeRateRepositoryFacade interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveExchangeRates appends one refresh cycle in a single transaction.
func (r *PgxExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		if m.ExchangeRateID == "" {
			m.ExchangeRateID = uuid.NewString()
		}
		batch.Queue(`
			INSERT INTO exchange_rates (
				exchange_rate_id, from_currency_code, to_currency_code, rate,
				fetched_at, provider_id, significant_change
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.ExchangeRateID, strings.ToUpper(m.FromCurrencyCode), strings.ToUpper(m.ToCurrencyCode), m.Rate,
			m.FetchedAt, m.ProviderID, m.SignificantChange,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to save exchange rates", err)
	}
	return r.Commit(ctx, tx)
}

// FindLatestExchangeRates returns the newest row per target currency.
func (r *PgxExchangeRateRepository) FindLatestExchangeRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT DISTINCT ON (to_currency_code) ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1
		ORDER BY to_currency_code, fetched_at DESC;
	`
	return r.query(ctx, "failed to find latest exchange rates", query, strings.ToUpper(baseCurrency))
}

// ListExchangeRateHistory returns up to limit rows for one pair, newest first, using token-based pagination.
func (r *PgxExchangeRateRepository) ListExchangeRateHistory(ctx context.Context, baseCurrency, targetCurrency string, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	if limit <= 0 {
		limit = 30
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
	`
	// exchange_rate_id breaks ties between rows fetched in the same instant
	orderByClause := `ORDER BY fetched_at DESC, exchange_rate_id DESC`
	args := []any{strings.ToUpper(baseCurrency), strings.ToUpper(targetCurrency)}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastFetchedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken: " + decodeErr.Error())
		}
		if _, parseErr := uuid.Parse(lastID); parseErr != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken")
		}
		query += ` AND (fetched_at, exchange_rate_id) < ($3, $4)`
		args = append(args, lastFetchedAt, lastID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rates, err := r.query(ctx, "failed to list exchange rate history", query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(rates) > limit {
		// The token points to the last item included in this page
		last := rates[limit-1]
		token := pagination.EncodeToken(last.FetchedAt, last.ExchangeRateID)
		nextTokenVal = &token
		rates = rates[:limit]
	}
	return rates, nextTokenVal, nil
}

func (r *PgxExchangeRateRepository) query(ctx context.Context, failure, query string, args ...any) ([]domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, failure, err)
	}
	defer rows.Close()

	var modelRates []models.ExchangeRate
	for rows.Next() {
		var m models.ExchangeRate
		if err := rows.Scan(
			&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode, &m.Rate,
			&m.FetchedAt, &m.ProviderID, &m.SignificantChange, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		modelRates = append(modelRates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}
	return mapping.ToDomainExchangeRates(modelRates), nil
}
