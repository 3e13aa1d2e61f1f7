// Package retention runs the nightly housekeeping pass that purges
// audit-trail rows past their configured retention window.
package retention

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/liga-hessen/news-aggregator/pkg/config"
	"github.com/liga-hessen/news-aggregator/pkg/store"
)

// Housekeeper periodically purges ItemEvent and ItemProcessingLog rows older
// than their configured retention windows. It runs on the leader alongside
// the classifier and LLM workers, never concurrently with itself.
type Housekeeper struct {
	cfg        config.RetentionConfig
	repository *store.Retention

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New constructs a Housekeeper.
func New(cfg config.RetentionConfig, repository *store.Retention) *Housekeeper {
	return &Housekeeper{cfg: cfg, repository: repository, stopCh: make(chan struct{})}
}

// Start launches the housekeeping loop in the background.
func (h *Housekeeper) Start(ctx context.Context) {
	h.wg.Add(1)
	go h.run(ctx)
}

// Stop signals the loop to exit and waits for it to finish.
func (h *Housekeeper) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
	h.wg.Wait()
}

func (h *Housekeeper) run(ctx context.Context) {
	defer h.wg.Done()

	// Run once shortly after startup, then on the configured interval, so a
	// long-lived leader isn't stuck with a full day's backlog on its first
	// cold start.
	if !h.sleep(30 * time.Second) {
		return
	}
	h.purge(ctx)

	ticker := time.NewTicker(h.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.purge(ctx)
		}
	}
}

func (h *Housekeeper) purge(ctx context.Context) {
	eventsCutoff := time.Now().AddDate(0, 0, -h.cfg.ItemEventRetentionDays)
	nEvents, err := h.repository.PurgeItemEvents(ctx, eventsCutoff)
	if err != nil {
		slog.Error("housekeeping: purging item events failed", "error", err)
	} else if nEvents > 0 {
		slog.Info("housekeeping: purged item events", "count", nEvents, "older_than", eventsCutoff)
	}

	logsCutoff := time.Now().AddDate(0, 0, -h.cfg.LogRetentionDays)
	nLogs, err := h.repository.PurgeProcessingLogs(ctx, logsCutoff)
	if err != nil {
		slog.Error("housekeeping: purging processing logs failed", "error", err)
	} else if nLogs > 0 {
		slog.Info("housekeeping: purged processing logs", "count", nLogs, "older_than", logsCutoff)
	}
}

func (h *Housekeeper) sleep(d time.Duration) bool {
	select {
	case <-h.stopCh:
		return false
	case <-time.After(d):
		return true
	}
}
