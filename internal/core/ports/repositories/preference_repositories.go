package repositories

import (
	"context"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
)

// PreferenceReader defines read operations for saved user preferences
type PreferenceReader interface {
	// FindPreference returns apperrors.ErrNotFound when the user never saved anything.
	FindPreference(ctx context.Context, userID string) (*domain.Preference, error)
}

// PreferenceWriter defines write operations for saved user preferences
type PreferenceWriter interface {
	// SavePreference inserts or replaces the user's preference row.
	SavePreference(ctx context.Context, pref domain.Preference) error
}

// PreferenceRepositoryFacade combines all preference-related repository interfaces
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
