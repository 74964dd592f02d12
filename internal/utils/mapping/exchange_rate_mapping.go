package mapping

import (
	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/SscSPs/intl_pricing_service/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:    d.ExchangeRateID,
		FromCurrencyCode:  d.FromCurrencyCode,
		ToCurrencyCode:    d.ToCurrencyCode,
		Rate:              d.Rate,
		FetchedAt:         d.FetchedAt.UTC(),
		ProviderID:        d.ProviderID,
		SignificantChange: d.SignificantChange,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:    m.ExchangeRateID,
		FromCurrencyCode:  m.FromCurrencyCode,
		ToCurrencyCode:    m.ToCurrencyCode,
		Rate:              m.Rate,
		FetchedAt:         m.FetchedAt.UTC(),
		ProviderID:        m.ProviderID,
		SignificantChange: m.SignificantChange,
	}
}

// ToDomainExchangeRates converts a slice of model ExchangeRates
func ToDomainExchangeRates(ms []models.ExchangeRate) []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainExchangeRate(m)
	}
	return out
}
