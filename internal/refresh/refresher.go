package refresh

import (
	"context"
	"log/slog"
	"time"

	"github.com/devinterview/question-catalog/internal/catalog"
)

// Refresher periodically re-checks the import service and reloads the collection
type Refresher struct {
	store    *catalog.Store
	interval time.Duration
}

// NewRefresher creates a new refresh worker
func NewRefresher(store *catalog.Store, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = time.Minute
	}

	return &Refresher{
		store:    store,
		interval: interval,
	}
}

// Start begins the refresh worker in a goroutine
func (r *Refresher) Start(ctx context.Context) {
	go r.run(ctx)
}

// run is the main loop for the refresh worker
func (r *Refresher) run(ctx context.Context) {
	slog.Info("refresh worker started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Run immediately on start
	r.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("refresh worker stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	snap, err := r.store.Refresh(ctx)
	if err != nil {
		slog.Warn("refresh failed, keeping last known collection",
			"error", err,
			"online", snap.Online,
			"questions", len(snap.Questions),
		)
		return
	}

	slog.Debug("collection refreshed",
		"online", snap.Online,
		"source", snap.Source,
		"questions", len(snap.Questions),
	)
}
