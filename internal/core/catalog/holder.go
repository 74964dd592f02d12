package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
)

// Source loads raw catalog records from a static configuration store.
type Source interface {
	Load(ctx context.Context) (Data, error)
}

// Holder owns the current catalog and swaps it atomically on reload.
type Holder struct {
	source  Source
	logger  *slog.Logger
	current atomic.Pointer[Catalog]
	reload  sync.Mutex
}

// NewHolder loads and validates the initial catalog. An error here is fatal:
// the process must not serve without a valid catalog.
func NewHolder(ctx context.Context, source Source, logger *slog.Logger) (*Holder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Holder{source: source, logger: logger}
	cat, err := h.build(ctx)
	if err != nil {
		return nil, err
	}
	h.current.Store(cat)
	return h, nil
}

// NewStaticHolder wraps an already built catalog. Reload is a no-op error.
func NewStaticHolder(cat *Catalog) *Holder {
	h := &Holder{logger: slog.Default()}
	h.current.Store(cat)
	return h
}

// Current returns the catalog in effect.
func (h *Holder) Current() *Catalog {
	return h.current.Load()
}

// Reload validates a fresh copy of the catalog before swapping it in. On any
// error the previous catalog stays in effect.
func (h *Holder) Reload(ctx context.Context) (*Catalog, error) {
	h.reload.Lock()
	defer h.reload.Unlock()

	cat, err := h.build(ctx)
	if err != nil {
		h.logger.Error("Catalog reload rejected, keeping previous catalog", slog.String("error", err.Error()))
		return nil, err
	}
	h.current.Store(cat)
	h.logger.Info("Catalog reloaded",
		slog.Int("currencies", len(cat.currencies)),
		slog.Int("countries", len(cat.countries)),
		slog.Int("zones", len(cat.zones)),
		slog.String("base_currency", cat.base.CurrencyCode),
	)
	return cat, nil
}

func (h *Holder) build(ctx context.Context) (*Catalog, error) {
	if h.source == nil {
		return nil, fmt.Errorf("catalog source is not configured")
	}
	data, err := h.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load catalog: %w", apperrors.ErrInvalidCatalog, err)
	}
	return New(data)
}
