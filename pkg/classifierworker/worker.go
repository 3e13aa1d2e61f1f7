// Package classifierworker runs the background classification catch-up
// loop: classify items the pipeline never reached the classifier for,
// index them into the vector store, and re-check duplicates that were
// missed.
package classifierworker

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/pkg/classifier"
	"github.com/liga-hessen/news-aggregator/pkg/config"
	"github.com/liga-hessen/news-aggregator/pkg/duplicate"
	"github.com/liga-hessen/news-aggregator/pkg/priority"
	"github.com/liga-hessen/news-aggregator/pkg/store"
)

// Stats mirrors the worker's in-memory counters, synced periodically to the
// worker_stats table.
type Stats struct {
	Processed          int
	PriorityChanged    int
	DuplicatesFound    int
	DuplicatesChecked  int
	VectorDBIndexed    int
	Errors             int
	StartedAt          time.Time
	LastProcessedAt    time.Time
	StoppedDueToErrors bool
}

// Worker runs the classify -> index -> dedupe-recheck -> daily-sync loop.
type Worker struct {
	cfg           config.QueueConfig
	classifierCfg config.ClassifierConfig
	items         *store.Items
	logs          *store.ProcessingLogs
	control       *store.WorkerControl
	classifier    *classifier.Client

	mu     sync.Mutex
	stats  Stats
	paused bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New constructs a classifier Worker.
func New(cfg config.QueueConfig, classifierCfg config.ClassifierConfig, items *store.Items, logs *store.ProcessingLogs, control *store.WorkerControl, cls *classifier.Client) *Worker {
	return &Worker{
		cfg:           cfg,
		classifierCfg: classifierCfg,
		items:         items,
		logs:          logs,
		control:       control,
		classifier:    cls,
		stopCh:        make(chan struct{}),
	}
}

// Start launches the worker's run loop and command-channel poller in
// background goroutines.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	w.stats.StartedAt = time.Now()
	w.mu.Unlock()

	w.wg.Add(2)
	go w.run(ctx)
	go w.pollCommands(ctx)
}

// Stop signals the worker to exit and waits for its goroutines to finish.
func (w *Worker) Stop() {
	w.signalStop()
	w.wg.Wait()
}

// signalStop closes stopCh without waiting, safe to call from a goroutine
// the worker itself owns (e.g. handling a "stop" command).
func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// Status returns a snapshot of the worker's current counters.
func (w *Worker) Status() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	consecutiveErrors := 0
	const maxConsecutiveErrors = 10
	var lastSyncCheckDate string

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		if w.isPaused() {
			if !w.sleep(1 * time.Second) {
				return
			}
			continue
		}

		n, err := w.processUnclassified(ctx)
		if err != nil {
			if !w.handleLoopError(ctx, err, &consecutiveErrors, maxConsecutiveErrors) {
				return
			}
			continue
		}
		if n > 0 {
			consecutiveErrors = 0
			if !w.sleep(500 * time.Millisecond) {
				return
			}
			continue
		}

		n, err = w.processUnindexed(ctx)
		if err != nil {
			if !w.handleLoopError(ctx, err, &consecutiveErrors, maxConsecutiveErrors) {
				return
			}
			continue
		}
		if n > 0 {
			consecutiveErrors = 0
			if !w.sleep(500 * time.Millisecond) {
				return
			}
			continue
		}

		n, err = w.processUncheckedDuplicates(ctx)
		if err != nil {
			if !w.handleLoopError(ctx, err, &consecutiveErrors, maxConsecutiveErrors) {
				return
			}
			continue
		}
		if n > 0 {
			consecutiveErrors = 0
			if !w.sleep(500 * time.Millisecond) {
				return
			}
			continue
		}

		today := time.Now().UTC().Format("2006-01-02")
		if lastSyncCheckDate != today {
			lastSyncCheckDate = today
			w.checkVectorDBSync(ctx)
		}

		if !w.sleep(w.cfg.IdleSleep) {
			return
		}
	}
}

func (w *Worker) handleLoopError(ctx context.Context, err error, consecutiveErrors *int, max int) bool {
	*consecutiveErrors++
	w.mu.Lock()
	w.stats.Errors++
	w.mu.Unlock()
	slog.Error("classifier worker loop error", "consecutive_errors", *consecutiveErrors, "error", err)

	if *consecutiveErrors >= max {
		slog.Error("classifier worker exceeded max consecutive errors, stopping", "max", max)
		w.mu.Lock()
		w.stats.StoppedDueToErrors = true
		w.mu.Unlock()
		if pubErr := w.control.PublishState(ctx, "classifier", "stopped", "", true); pubErr != nil {
			slog.Error("publishing stopped state failed", "error", pubErr)
		}
		return false
	}

	backoff := time.Duration(10*(1<<uint(*consecutiveErrors-1))) * time.Second
	if backoff > 120*time.Second {
		backoff = 120 * time.Second
	}
	return w.sleep(backoff)
}

// sleep blocks for d or until stopped, returning false if the worker should
// exit.
func (w *Worker) sleep(d time.Duration) bool {
	select {
	case <-w.stopCh:
		return false
	case <-time.After(d):
		return true
	}
}

func (w *Worker) isPaused() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.paused
}

// processUnclassified classifies items the pipeline never reached the
// classifier for.
func (w *Worker) processUnclassified(ctx context.Context) (int, error) {
	items, err := w.items.ClassifierUnclassified(ctx, w.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("listing unclassified items: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	for _, it := range items {
		if err := w.classifyOne(ctx, it); err != nil {
			slog.Error("classifying item failed", "item_id", it.ID, "error", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
			continue
		}
		w.mu.Lock()
		w.stats.Processed++
		w.stats.LastProcessedAt = time.Now()
		w.mu.Unlock()
	}
	return len(items), nil
}

func (w *Worker) classifyOne(ctx context.Context, it *ent.Item) error {
	started := time.Now()
	runID := fmt.Sprintf("classifier-catchup-%d-%d", it.ID, started.UnixNano())

	result, err := w.classifier.Classify(ctx, classifier.ClassifyRequest{
		Title:   it.Title,
		Content: it.Content,
		Source:  strconv.Itoa(it.ChannelID),
	})
	if err != nil {
		w.logStep(ctx, runID, it.ID, started, false, err.Error())
		return fmt.Errorf("classify call: %w", err)
	}

	outcome := priority.FromClassifierConfidence(result.RelevanceConfidence)

	meta := store.MetadataFromMap(it.Metadata)
	meta.PreFilter = &store.PreFilter{
		RelevanceConfidence: result.RelevanceConfidence,
		PrioritySuggestion:  result.Priority,
		PriorityConfidence:  result.PriorityConfidence,
		AKSuggestion:        result.AK,
		AKConfidence:        result.AKConfidence,
		ClassifiedAt:        time.Now(),
	}
	meta.RetryPriority = outcome.RetryPriority

	if err := w.items.SetMetadata(ctx, it.ID, meta); err != nil {
		w.logStep(ctx, runID, it.ID, started, false, err.Error())
		return fmt.Errorf("saving metadata: %w", err)
	}
	priorityChanged := string(it.Priority) != string(outcome.Priority)
	if priorityChanged {
		w.mu.Lock()
		w.stats.PriorityChanged++
		w.mu.Unlock()
	}
	if err := w.items.SetPriority(ctx, it.ID, string(outcome.Priority), outcome.Score, outcome.NeedsLLMProcess); err != nil {
		w.logStep(ctx, runID, it.ID, started, false, err.Error())
		return err
	}

	completed := time.Now()
	durationMS := int(completed.Sub(started).Milliseconds())
	relevant := result.Relevant
	if err := w.logs.Append(ctx, store.StepInput{
		ItemID:          &it.ID,
		ProcessingRunID: runID,
		StepType:        "pre_filter",
		StepOrder:       0,
		StartedAt:       started,
		CompletedAt:     &completed,
		DurationMS:      &durationMS,
		ConfidenceScore: &result.RelevanceConfidence,
		PriorityInput:   string(it.Priority),
		PriorityOutput:  string(outcome.Priority),
		PriorityChanged: priorityChanged,
		Relevant:        &relevant,
		Success:         true,
	}); err != nil {
		slog.Warn("logging pre_filter step failed", "item_id", it.ID, "error", err)
	}
	return nil
}

func (w *Worker) logStep(ctx context.Context, runID string, itemID int, started time.Time, success bool, errMsg string) {
	completed := time.Now()
	durationMS := int(completed.Sub(started).Milliseconds())
	if err := w.logs.Append(ctx, store.StepInput{
		ItemID:          &itemID,
		ProcessingRunID: runID,
		StepType:        "pre_filter",
		StartedAt:       started,
		CompletedAt:     &completed,
		DurationMS:      &durationMS,
		Success:         success,
		ErrorMessage:    errMsg,
	}); err != nil {
		slog.Warn("logging classifier step failure failed", "item_id", itemID, "error", err)
	}
}

// processUnindexed indexes classified items into the vector store.
func (w *Worker) processUnindexed(ctx context.Context) (int, error) {
	items, err := w.items.ClassifierUnindexed(ctx, w.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("listing unindexed items: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	docs := make([]classifier.IndexDoc, len(items))
	for i, it := range items {
		docs[i] = classifier.IndexDoc{ID: strconv.Itoa(it.ID), Title: it.Title, Content: it.Content}
	}
	if _, err := w.classifier.IndexBatch(ctx, docs); err != nil {
		return 0, fmt.Errorf("indexing batch: %w", err)
	}

	now := time.Now()
	for _, it := range items {
		meta := store.MetadataFromMap(it.Metadata)
		meta.VectorDBIndexed = true
		meta.VectorDBIndexedAt = &now
		if err := w.items.SetMetadata(ctx, it.ID, meta); err != nil {
			slog.Error("stamping vectordb_indexed failed", "item_id", it.ID, "error", err)
			continue
		}
		w.mu.Lock()
		w.stats.VectorDBIndexed++
		w.mu.Unlock()
	}
	return len(items), nil
}

// processUncheckedDuplicates re-checks items that were never duplicate
// checked: URL-equality first, then embedding-based nearest-neighbor
// lookup with a 0.75 cosine threshold, always preferring the oldest
// (smallest id) eligible match.
func (w *Worker) processUncheckedDuplicates(ctx context.Context) (int, error) {
	items, err := w.items.ClassifierUncheckedDuplicates(ctx, w.cfg.BatchSize, w.classifierCfg.DuplicateCutoffDays)
	if err != nil {
		return 0, fmt.Errorf("listing unchecked duplicates: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	for _, it := range items {
		w.mu.Lock()
		w.stats.DuplicatesChecked++
		w.mu.Unlock()

		if err := w.checkDuplicateOne(ctx, it); err != nil {
			slog.Error("duplicate recheck failed", "item_id", it.ID, "error", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		}
	}
	return len(items), nil
}

func (w *Worker) checkDuplicateOne(ctx context.Context, it *ent.Item) error {
	started := time.Now()
	runID := fmt.Sprintf("duplicate-recheck-%d-%d", it.ID, started.UnixNano())

	if it.URL != "" {
		candidateIDs, err := w.items.FindURLMatchCandidates(ctx, it.URL, it.ChannelID)
		if err != nil {
			return fmt.Errorf("url match lookup: %w", err)
		}
		if dupID, ok := duplicate.URLMatch(candidateIDs, it.ID); ok {
			if err := w.items.LinkDuplicate(ctx, it.ID, dupID, "url_match", 0); err != nil {
				return fmt.Errorf("linking url duplicate: %w", err)
			}
			w.mu.Lock()
			w.stats.DuplicatesFound++
			w.mu.Unlock()
			w.logDuplicateStep(ctx, runID, it.ID, started, "url_match", dupID)
			return nil
		}
	}

	strippedTitle := duplicate.StripBoilerplate(it.Title, duplicate.DefaultBoilerplatePrefixes)
	strippedContent := duplicate.StripBoilerplate(it.Content, duplicate.DefaultBoilerplatePrefixes)
	candidates, err := w.classifier.FindDuplicates(ctx, strippedTitle, strippedContent, w.classifierCfg.DuplicateThreshold)
	if err != nil {
		return fmt.Errorf("find-duplicates call: %w", err)
	}

	var parsed []duplicate.Candidate
	for _, c := range candidates {
		n, convErr := strconv.Atoi(c.ID)
		if convErr != nil {
			continue
		}
		parsed = append(parsed, duplicate.Candidate{ID: n, Score: c.Score})
	}

	best, ok := duplicate.SelectPrimary(parsed, it.ID)
	if !ok {
		w.logDuplicateStep(ctx, runID, it.ID, started, "none", 0)
		return w.items.MarkDuplicateChecked(ctx, it.ID)
	}

	exists, err := w.items.ExistingIDs(ctx, []int{best.ID})
	if err != nil {
		return fmt.Errorf("verifying candidate existence: %w", err)
	}
	if !exists[best.ID] {
		// The vector store holds an id the relational store no longer has;
		// evict it so it stops surfacing as a candidate.
		slog.Warn("stale vector store entry, deleting", "stale_id", best.ID, "item_id", it.ID)
		if _, _, delErr := w.classifier.Delete(ctx, []string{strconv.Itoa(best.ID)}); delErr != nil {
			slog.Warn("deleting stale vector entry failed", "stale_id", best.ID, "error", delErr)
		}
		w.logDuplicateStep(ctx, runID, it.ID, started, "stale_candidate", 0)
		return w.items.MarkDuplicateChecked(ctx, it.ID)
	}

	if err := w.items.LinkDuplicate(ctx, it.ID, best.ID, "", best.Score); err != nil {
		return fmt.Errorf("linking embedding duplicate: %w", err)
	}
	w.mu.Lock()
	w.stats.DuplicatesFound++
	w.mu.Unlock()
	w.logDuplicateStep(ctx, runID, it.ID, started, "embedding", best.ID)
	return nil
}

func (w *Worker) logDuplicateStep(ctx context.Context, runID string, itemID int, started time.Time, outcome string, matchedID int) {
	completed := time.Now()
	durationMS := int(completed.Sub(started).Milliseconds())
	details := map[string]interface{}{"outcome": outcome}
	if matchedID != 0 {
		details["matched_item_id"] = matchedID
	}
	if err := w.logs.Append(ctx, store.StepInput{
		ItemID:          &itemID,
		ProcessingRunID: runID,
		StepType:        "duplicate_check",
		StartedAt:       started,
		CompletedAt:     &completed,
		DurationMS:      &durationMS,
		Success:         true,
		Details:         details,
	}); err != nil {
		slog.Warn("logging duplicate_check step failed", "item_id", itemID, "error", err)
	}
}

// checkVectorDBSync runs once per day: compare the relational store's
// item count against the vector store's reported index count and log a
// drift warning past the configured threshold.
func (w *Worker) checkVectorDBSync(ctx context.Context) {
	dbIDs, err := w.items.AllIDsWithDeletedAtNil(ctx)
	if err != nil {
		slog.Error("daily sync check: listing db ids failed", "error", err)
		return
	}
	indexedIDs, err := w.classifier.AllIndexedIDs(ctx)
	if err != nil {
		slog.Error("daily sync check: listing indexed ids failed", "error", err)
		return
	}

	delta := len(dbIDs) - len(indexedIDs)
	if delta < 0 {
		delta = -delta
	}
	if delta > w.classifierCfg.DailySyncThreshold {
		slog.Error("vector store drift exceeds threshold, manual resync suggested",
			"db_count", len(dbIDs), "indexed_count", len(indexedIDs), "delta", delta, "threshold", w.classifierCfg.DailySyncThreshold)
	}
}

func (w *Worker) pollCommands(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.handlePendingCommands(ctx)
			w.syncStats(ctx)
		}
	}
}

// syncStats publishes the worker's in-memory counters to the worker_stats
// row at the same cadence as the command poll.
func (w *Worker) syncStats(ctx context.Context) {
	w.mu.Lock()
	s := w.stats
	w.mu.Unlock()
	snapshot := store.StatsSnapshot{
		WorkerName:       "classifier",
		FreshProcessed:   s.Processed,
		BacklogProcessed: s.DuplicatesChecked,
		Errors:           s.Errors,
		ItemsTimed:       s.VectorDBIndexed,
	}
	if !s.StartedAt.IsZero() {
		snapshot.StartedAt = &s.StartedAt
	}
	if !s.LastProcessedAt.IsZero() {
		snapshot.LastProcessedAt = &s.LastProcessedAt
	}
	if err := w.control.PublishStats(ctx, snapshot); err != nil {
		slog.Error("syncing classifier worker stats failed", "error", err)
	}

	status := "running"
	w.mu.Lock()
	if w.paused {
		status = "paused"
	}
	stopped := w.stats.StoppedDueToErrors
	w.mu.Unlock()
	if stopped {
		status = "stopped"
	}
	if err := w.control.PublishState(ctx, "classifier", status, "", stopped); err != nil {
		slog.Error("syncing classifier worker state failed", "error", err)
	}
}

func (w *Worker) handlePendingCommands(ctx context.Context) {
	cmds, err := w.control.PendingCommands(ctx, "classifier")
	if err != nil {
		slog.Error("polling worker commands failed", "error", err)
		return
	}
	for _, cmd := range cmds {
		switch string(cmd.Command) {
		case "pause":
			w.mu.Lock()
			w.paused = true
			w.mu.Unlock()
		case "resume":
			w.mu.Lock()
			w.paused = false
			w.mu.Unlock()
		case "stop":
			w.signalStop()
		}
		if err := w.control.MarkProcessed(ctx, cmd.ID); err != nil {
			slog.Error("marking command processed failed", "command_id", cmd.ID, "error", err)
		}
	}
}
