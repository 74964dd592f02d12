// Package background runs the periodic jobs of the pricing service.
package background

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/apperrors"
	portssvc "github.com/SscSPs/intl_pricing_service/internal/core/ports/services"
)

// BackgroundTasks owns the goroutines started by StartAll.
type BackgroundTasks struct {
	Rates           portssvc.ExchangeRateRefresherSvc
	RefreshInterval time.Duration
	Logger          *slog.Logger

	wg sync.WaitGroup
}

func NewBackgroundTasks(rates portssvc.ExchangeRateRefresherSvc, refreshInterval time.Duration, logger *slog.Logger) *BackgroundTasks {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundTasks{
		Rates:           rates,
		RefreshInterval: refreshInterval,
		Logger:          logger,
	}
}

// StartAll launches every task. They stop when ctx is cancelled; Wait blocks until they have.
func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	bt.wg.Add(1)
	go func() {
		defer bt.wg.Done()
		bt.startRateRefresh(ctx)
	}()
}

// Wait blocks until every task has returned.
func (bt *BackgroundTasks) Wait() {
	bt.wg.Wait()
}

// startRateRefresh refreshes once immediately and then on every tick. Each
// attempt, successful or not, is followed by a staleness check.
func (bt *BackgroundTasks) startRateRefresh(ctx context.Context) {
	interval := bt.RefreshInterval
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bt.refreshOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			bt.Logger.Info("Rate refresh scheduler stopped")
			return
		case <-ticker.C:
			bt.refreshOnce(ctx)
		}
	}
}

func (bt *BackgroundTasks) refreshOnce(ctx context.Context) {
	_, err := bt.Rates.RefreshRates(ctx)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrRefreshInProgress):
		bt.Logger.Info("Skipping scheduled refresh, another refresh is running")
	case ctx.Err() != nil:
		// shutting down
		return
	default:
		bt.Logger.Warn("Scheduled rate refresh failed", slog.String("error", err.Error()))
	}
	bt.Rates.CheckStaleness(ctx)
}
