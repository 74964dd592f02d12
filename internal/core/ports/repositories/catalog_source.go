package repositories

import (
	"context"

	"github.com/SscSPs/intl_pricing_service/internal/core/catalog"
)

// CatalogSource loads the static reference tables. It satisfies catalog.Source.
type CatalogSource interface {
	Load(ctx context.Context) (catalog.Data, error)
}
