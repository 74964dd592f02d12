package events

import (
	"context"
	"log/slog"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
)

// LogRateEventPublisher logs rate changes instead of sending them anywhere.
// It is used when no message broker is configured.
type LogRateEventPublisher struct {
	logger *slog.Logger
}

func NewLogRateEventPublisher(logger *slog.Logger) *LogRateEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogRateEventPublisher{logger: logger}
}

func (p *LogRateEventPublisher) PublishRateChanges(ctx context.Context, events []domain.RateChangedEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "Exchange rate changed",
			slog.String("base_currency", e.BaseCurrency),
			slog.String("currency", e.CurrencyCode),
			slog.String("previous_rate", e.PreviousRate.String()),
			slog.String("new_rate", e.NewRate.String()),
			slog.String("relative_deviation", e.RelativeDeviation.StringFixed(4)),
			slog.String("provider", e.Provider),
		)
	}
	return nil
}

func (p *LogRateEventPublisher) Close() error { return nil }
