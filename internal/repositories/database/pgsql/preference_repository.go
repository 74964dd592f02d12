package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/models"
	"github.com/SscSPs/intl_pricing_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPreferenceRepository stores user preferences in user_preferences.
type PgxPreferenceRepository struct {
	BaseRepository
}

// NewPgxPreferenceRepository creates a new PgxPreferenceRepository.
func NewPgxPreferenceRepository(db *pgxpool.Pool) *PgxPreferenceRepository {
	return &PgxPreferenceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindPreference retrieves a user's saved preference.
func (r *PgxPreferenceRepository) FindPreference(ctx context.Context, userID string) (*domain.Preference, error) {
	query := `
		SELECT user_id, currency_code, locale, timezone, updated_at
		FROM user_preferences
		WHERE user_id = $1;
	`
	var m models.UserPreference
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID, &m.CurrencyCode, &m.Locale, &m.Timezone, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("preference for user " + userID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find preference", err)
	}
	pref := mapping.ToDomainPreference(m)
	return &pref, nil
}

// SavePreference inserts or replaces a user's preference.
func (r *PgxPreferenceRepository) SavePreference(ctx context.Context, pref domain.Preference) error {
	m := mapping.ToModelPreference(pref)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO user_preferences (user_id, currency_code, locale, timezone, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			currency_code = EXCLUDED.currency_code,
			locale = EXCLUDED.locale,
			timezone = EXCLUDED.timezone,
			updated_at = EXCLUDED.updated_at`,
		m.UserID, m.CurrencyCode, m.Locale, m.Timezone, m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save preference", err)
	}
	return nil
}
