package dto

import (
	"strings"

	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "currency" and "country" binding tags. Both are
// case-insensitive shape checks; membership in the catalog is checked by the services.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return catalog.IsCurrencyCode(strings.ToUpper(fl.Field().String()))
	}); err != nil {
		return err
	}
	return v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return catalog.IsCountryCode(strings.ToUpper(fl.Field().String()))
	})
}
