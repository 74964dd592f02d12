package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portsrepo "github.com/SscSPs/intl_pricing_service/internal/core/ports/repositories"
)

// PreferenceRepository keeps saved preferences in a map keyed by user ID.
type PreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]domain.Preference
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{prefs: make(map[string]domain.Preference)}
}

func (r *PreferenceRepository) FindPreference(ctx context.Context, userID string) (*domain.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pref, ok := r.prefs[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("preference for user " + userID + " not found")
	}
	return &pref, nil
}

func (r *PreferenceRepository) SavePreference(ctx context.Context, pref domain.Preference) error {
	if pref.UserID == "" {
		return apperrors.NewValidationError("user id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs[pref.UserID] = pref
	return nil
}

// NewRepositoryProvider returns in-memory implementations of every repository.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: NewExchangeRateRepository(),
		PreferenceRepo:   NewPreferenceRepository(),
	}
}
