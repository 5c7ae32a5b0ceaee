package scheduler

import (
	"context"
	"time"

	"linkdeck/internal/logger"
	"linkdeck/internal/screen"
)

const (
	// DefaultIdleTTL is the duration after which an untouched screen
	// is evicted
	DefaultIdleTTL = 30 * time.Minute
)

// ScreenGC periodically evicts idle list screens from the registry.
// Session tokens themselves expire through the store's TTL; this only
// reclaims the in-memory screen state behind them.
type ScreenGC struct {
	screens  *screen.Registry
	logger   logger.Logger
	interval time.Duration
	idleTTL  time.Duration
	stopCh   chan struct{}
}

// NewScreenGC creates a screen garbage collector
func NewScreenGC(screens *screen.Registry, log logger.Logger, interval, idleTTL time.Duration) *ScreenGC {
	if idleTTL == 0 {
		idleTTL = DefaultIdleTTL
	}

	return &ScreenGC{
		screens:  screens,
		logger:   log,
		interval: interval,
		idleTTL:  idleTTL,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep
func (gc *ScreenGC) Start(ctx context.Context) error {
	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gc.Collect()
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the sweeper
func (gc *ScreenGC) Stop() {
	close(gc.stopCh)
}

// Collect evicts screens idle longer than the TTL
func (gc *ScreenGC) Collect() {
	evicted := gc.screens.Sweep(gc.idleTTL)
	if evicted > 0 {
		gc.logger.Info("evicted idle list screens",
			logger.Int("evicted", evicted),
			logger.Int("remaining", gc.screens.Count()))
	} else {
		gc.logger.Debug("no idle list screens to evict")
	}
}
