package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartScheduler starts the background sweep that prunes expired
// notifications every interval. The returned channel is closed once the
// goroutine has stopped after ctx is cancelled.
func StartScheduler(ctx context.Context, interval time.Duration, notifier *Notifier, logger *zap.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = time.Second
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("Scheduler started", zap.Duration("interval", interval))
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("Scheduler stopped")
				return
			case now := <-ticker.C:
				if removed := notifier.Prune(now); removed > 0 {
					logger.Debug("Pruned expired notifications", zap.Int("removed", removed))
				}
			}
		}
	}()
	return done
}
