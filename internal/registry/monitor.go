package registry

import (
	"context"
	"log/slog"
	"time"
)

// Monitor periodically sweeps the store and demotes records with stale
// heartbeats to offline.
type Monitor struct {
	store     *Store
	interval  time.Duration
	threshold time.Duration
	logger    *slog.Logger
}

// NewMonitor creates a liveness monitor over the given store. A record
// is considered stale when its last heartbeat is older than threshold;
// the store is examined every interval.
func NewMonitor(store *Store, interval, threshold time.Duration, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		store:     store,
		interval:  interval,
		threshold: threshold,
		logger:    logger.With("component", "monitor"),
	}
}

// Run sweeps until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info("liveness monitor started",
		"interval", m.interval,
		"threshold", m.threshold,
	)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("liveness monitor stopped")
			return
		case <-ticker.C:
			for _, change := range m.store.MarkStale(m.threshold) {
				m.logger.Warn("service heartbeat overdue, marked offline",
					"service_id", change.ServiceID,
					"service_name", change.ServiceName,
					"prev_status", change.Prev,
				)
			}
		}
	}
}
