package dto

import (
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
)

// UpdatePreferenceRequest is a partial update. Omitted fields are kept and
// empty strings clear the saved value.
type UpdatePreferenceRequest struct {
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,max=3"`
	Locale       *string `json:"locale" binding:"omitempty,max=35"`
	Timezone     *string `json:"timezone" binding:"omitempty,max=64"`
}

// ToDomain converts the request into a domain.PreferenceUpdate.
func (r UpdatePreferenceRequest) ToDomain() domain.PreferenceUpdate {
	return domain.PreferenceUpdate{
		CurrencyCode: r.CurrencyCode,
		Locale:       r.Locale,
		Timezone:     r.Timezone,
	}
}

// PreferenceResponse is a user's saved preference.
type PreferenceResponse struct {
	UserID       string    `json:"userID"`
	CurrencyCode string    `json:"currencyCode,omitempty"`
	Locale       string    `json:"locale,omitempty"`
	Timezone     string    `json:"timezone,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToPreferenceResponse converts a domain.Preference to PreferenceResponse DTO
func ToPreferenceResponse(p *domain.Preference) PreferenceResponse {
	return PreferenceResponse{
		UserID:       p.UserID,
		CurrencyCode: p.CurrencyCode,
		Locale:       p.Locale,
		Timezone:     p.Timezone,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ResolvedFieldResponse is one resolved value and the step that produced it.
type ResolvedFieldResponse struct {
	Value  string `json:"value"`
	Source string `json:"source"`
}

// ResolvedPreferenceResponse is the effective display settings for a request.
type ResolvedPreferenceResponse struct {
	Currency ResolvedFieldResponse `json:"currency"`
	Locale   ResolvedFieldResponse `json:"locale"`
	Timezone ResolvedFieldResponse `json:"timezone"`
}

// ToResolvedPreferenceResponse converts a domain.ResolvedPreference to its DTO.
func ToResolvedPreferenceResponse(p domain.ResolvedPreference) ResolvedPreferenceResponse {
	field := func(f domain.ResolvedField) ResolvedFieldResponse {
		return ResolvedFieldResponse{Value: f.Value, Source: string(f.Source)}
	}
	return ResolvedPreferenceResponse{
		Currency: field(p.Currency),
		Locale:   field(p.Locale),
		Timezone: field(p.Timezone),
	}
}
