package mapping

import (
	"database/sql"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/models"
)

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelPreference converts a domain Preference; empty fields become NULL.
func ToModelPreference(d domain.Preference) models.UserPreference {
	return models.UserPreference{
		UserID:       d.UserID,
		CurrencyCode: nullable(d.CurrencyCode),
		Locale:       nullable(d.Locale),
		Timezone:     nullable(d.Timezone),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// ToDomainPreference converts a model UserPreference to a domain Preference
func ToDomainPreference(m models.UserPreference) domain.Preference {
	return domain.Preference{
		UserID:       m.UserID,
		CurrencyCode: m.CurrencyCode.String,
		Locale:       m.Locale.String,
		Timezone:     m.Timezone.String,
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}
