package domain

// Country holds the regional defaults used for currency, locale and shipping decisions.
type Country struct {
	CountryCode         string `json:"countryCode"` // ISO 3166-1 alpha-2
	Name                string `json:"name"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"`
	Locale              string `json:"locale"`   // BCP 47, e.g. "en-GB"
	Timezone            string `json:"timezone"` // IANA, e.g. "Europe/London"
	PhoneCode           string `json:"phoneCode"`
	Continent           string `json:"continent"`
	ShippingEligible    bool   `json:"shippingEligible"`
}
