package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	portsrepo "github.com/SscSPs/intl_pricing_service/internal/core/ports/repositories"
	"golang.org/x/text/language"
)

// PreferenceService resolves the effective currency, locale and timezone of a
// caller and stores explicit user choices.
type PreferenceService struct {
	BaseService
	repo     portsrepo.PreferenceRepositoryFacade
	catalog  *catalog.Holder
	geo      domain.Geolocator
	defaults domain.PreferenceDefaults
	now      func() time.Time
}

// PreferenceServiceOption is a function that configures a PreferenceService.
type PreferenceServiceOption func(*PreferenceService)

// WithGeolocator enables the geolocation step of the chain.
func WithGeolocator(geo domain.Geolocator) PreferenceServiceOption {
	return func(s *PreferenceService) {
		s.geo = geo
	}
}

// WithPreferenceDefaults sets the last step of the chain. An empty currency means the base currency.
func WithPreferenceDefaults(defaults domain.PreferenceDefaults) PreferenceServiceOption {
	return func(s *PreferenceService) {
		s.defaults = defaults
	}
}

// WithPreferenceClock replaces time.Now, for tests.
func WithPreferenceClock(now func() time.Time) PreferenceServiceOption {
	return func(s *PreferenceService) {
		s.now = now
	}
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(repo portsrepo.PreferenceRepositoryFacade, holder *catalog.Holder, options ...PreferenceServiceOption) *PreferenceService {
	s := &PreferenceService{
		repo:     repo,
		catalog:  holder,
		defaults: domain.PreferenceDefaults{Locale: "en-US", Timezone: "UTC"},
		now:      time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// candidates holds what one step of the chain offers; empty means no opinion.
type candidates struct {
	currency string
	locale   string
	timezone string
}

// ResolvePreferences resolves each field on its own through saved → geolocation →
// header → default. A saved value the catalog no longer supports is skipped.
func (s *PreferenceService) ResolvePreferences(ctx context.Context, userID string, rc domain.RequestContext) domain.ResolvedPreference {
	cat := s.catalog.Current()

	steps := []struct {
		source domain.PreferenceSource
		values candidates
	}{
		{domain.SourceSaved, s.savedCandidates(ctx, cat, userID)},
		{domain.SourceGeolocation, s.geoCandidates(ctx, cat, rc.IPAddress)},
		{domain.SourceHeader, headerCandidates(cat, rc)},
		{domain.SourceDefault, s.defaultCandidates(cat)},
	}

	var out domain.ResolvedPreference
	for _, step := range steps {
		if out.Currency.Value == "" && step.values.currency != "" {
			out.Currency = domain.ResolvedField{Value: step.values.currency, Source: step.source}
		}
		if out.Locale.Value == "" && step.values.locale != "" {
			out.Locale = domain.ResolvedField{Value: step.values.locale, Source: step.source}
		}
		if out.Timezone.Value == "" && step.values.timezone != "" {
			out.Timezone = domain.ResolvedField{Value: step.values.timezone, Source: step.source}
		}
	}
	return out
}

func (s *PreferenceService) savedCandidates(ctx context.Context, cat *catalog.Catalog, userID string) candidates {
	if userID == "" || s.repo == nil {
		return candidates{}
	}
	pref, err := s.repo.FindPreference(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Saved preference unavailable, resolving without it",
				slog.String("user_id", userID), slog.String("error", err.Error()))
		}
		return candidates{}
	}

	var c candidates
	if _, ok := cat.Currency(pref.CurrencyCode); ok {
		c.currency = pref.CurrencyCode
	} else if pref.CurrencyCode != "" {
		s.LogWarn(ctx, "Ignoring unsupported saved currency", slog.String("currency", pref.CurrencyCode))
	}
	if locale, err := canonicalLocale(pref.Locale); err == nil {
		c.locale = locale
	}
	if validTimezone(pref.Timezone) {
		c.timezone = pref.Timezone
	}
	return c
}

func (s *PreferenceService) geoCandidates(ctx context.Context, cat *catalog.Catalog, ip string) candidates {
	if s.geo == nil || ip == "" {
		return candidates{}
	}
	code, ok := s.geo.Lookup(ctx, ip)
	if !ok {
		return candidates{}
	}
	country, ok := cat.Country(code)
	if !ok {
		return candidates{}
	}
	return countryCandidates(country)
}

// headerCandidates negotiates Accept-Language against the catalog's locales.
// An explicit region in the caller's top language also picks that country's
// currency and timezone; a declared timezone wins over the derived one.
func headerCandidates(cat *catalog.Catalog, rc domain.RequestContext) candidates {
	var c candidates
	if accept := strings.TrimSpace(rc.AcceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			locales := cat.Locales()
			supported := make([]language.Tag, 0, len(locales))
			for _, l := range locales {
				supported = append(supported, language.Make(l))
			}
			if len(supported) > 0 {
				_, idx, conf := language.NewMatcher(supported).Match(tags...)
				if conf != language.No {
					c.locale = locales[idx]
				}
			}

			if region, conf := tags[0].Region(); conf == language.Exact {
				if country, ok := cat.Country(region.String()); ok {
					derived := countryCandidates(country)
					c.currency = derived.currency
					c.timezone = derived.timezone
				}
			}
		}
	}
	if validTimezone(rc.Timezone) {
		c.timezone = rc.Timezone
	}
	return c
}

func (s *PreferenceService) defaultCandidates(cat *catalog.Catalog) candidates {
	c := candidates{
		currency: cat.Base().CurrencyCode,
		locale:   s.defaults.Locale,
		timezone: s.defaults.Timezone,
	}
	if _, ok := cat.Currency(s.defaults.CurrencyCode); ok {
		c.currency = s.defaults.CurrencyCode
	}
	if c.locale == "" {
		c.locale = "en-US"
	}
	if c.timezone == "" {
		c.timezone = "UTC"
	}
	return c
}

func countryCandidates(country domain.Country) candidates {
	c := candidates{currency: country.DefaultCurrencyCode}
	if locale, err := canonicalLocale(country.Locale); err == nil {
		c.locale = locale
	}
	if validTimezone(country.Timezone) {
		c.timezone = country.Timezone
	}
	return c
}

// GetPreference returns the user's saved preference.
func (s *PreferenceService) GetPreference(ctx context.Context, userID string) (*domain.Preference, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	pref, err := s.repo.FindPreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return pref, nil
}

// UpdatePreference applies an explicit write. Nil fields keep their saved value,
// empty strings clear it, anything else must be supported.
func (s *PreferenceService) UpdatePreference(ctx context.Context, userID string, update domain.PreferenceUpdate) (*domain.Preference, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}

	pref := domain.Preference{UserID: userID}
	existing, err := s.repo.FindPreference(ctx, userID)
	switch {
	case err == nil:
		pref = *existing
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to load preference: %w", err)
	}

	cat := s.catalog.Current()
	if update.CurrencyCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*update.CurrencyCode))
		if code != "" {
			if _, ok := cat.Currency(code); !ok {
				return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, code)
			}
		}
		pref.CurrencyCode = code
	}
	if update.Locale != nil {
		locale := strings.TrimSpace(*update.Locale)
		if locale != "" {
			if locale, err = canonicalLocale(locale); err != nil {
				return nil, fmt.Errorf("%w: invalid locale %q", apperrors.ErrValidation, *update.Locale)
			}
		}
		pref.Locale = locale
	}
	if update.Timezone != nil {
		tz := strings.TrimSpace(*update.Timezone)
		if tz != "" && !validTimezone(tz) {
			return nil, fmt.Errorf("%w: invalid timezone %q", apperrors.ErrValidation, tz)
		}
		pref.Timezone = tz
	}
	pref.UpdatedAt = s.now().UTC()

	if err := s.repo.SavePreference(ctx, pref); err != nil {
		s.LogError(ctx, err, "Failed to save preference", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}
	s.LogInfo(ctx, "Preference updated", slog.String("user_id", userID))
	return &pref, nil
}

func canonicalLocale(s string) (string, error) {
	if s == "" {
		return "", errors.New("empty locale")
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

func validTimezone(tz string) bool {
	if tz == "" || tz == "Local" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}
