package domain

import "time"

// Preference is a user's saved display settings. Empty fields are unset.
type Preference struct {
	UserID       string    `json:"userID"`
	CurrencyCode string    `json:"currencyCode"`
	Locale       string    `json:"locale"`
	Timezone     string    `json:"timezone"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PreferenceUpdate carries an explicit write. Nil leaves a field untouched,
// an empty string clears it.
type PreferenceUpdate struct {
	CurrencyCode *string
	Locale       *string
	Timezone     *string
}

// RequestContext is what the storefront knows about the caller's request.
type RequestContext struct {
	IPAddress      string
	AcceptLanguage string
	Timezone       string // declared by the client, e.g. the X-Timezone header
}

// PreferenceSource records which step of the resolution chain produced a value.
type PreferenceSource string

const (
	SourceSaved       PreferenceSource = "saved"
	SourceGeolocation PreferenceSource = "geolocation"
	SourceHeader      PreferenceSource = "header"
	SourceDefault     PreferenceSource = "default"
)

// ResolvedField is one resolved value plus its origin.
type ResolvedField struct {
	Value  string           `json:"value"`
	Source PreferenceSource `json:"source"`
}

// ResolvedPreference is the effective currency, locale and timezone for a request.
type ResolvedPreference struct {
	Currency ResolvedField `json:"currency"`
	Locale   ResolvedField `json:"locale"`
	Timezone ResolvedField `json:"timezone"`
}

// PreferenceDefaults are the system-wide fallbacks, the last step of the chain.
type PreferenceDefaults struct {
	CurrencyCode string
	Locale       string
	Timezone     string
}
