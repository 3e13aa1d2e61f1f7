// Package llmworker runs the LLM analysis background loop: a strictly
// single-threaded loop that drains an in-memory fresh queue ahead of a
// DB-backed backlog, gates every batch on GPU-host availability, and
// commits each item individually so operator-visible progress is
// real-time.
package llmworker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/liga-hessen/news-aggregator/pkg/config"
	"github.com/liga-hessen/news-aggregator/pkg/gpupower"
	"github.com/liga-hessen/news-aggregator/pkg/llmprovider"
	"github.com/liga-hessen/news-aggregator/pkg/priority"
	"github.com/liga-hessen/news-aggregator/pkg/store"
)

// GPUGate is the subset of gpupower.Manager the worker needs, satisfied by
// *gpupower.Manager; an interface here keeps the worker unit-testable
// against a fake that never actually wakes a host.
type GPUGate interface {
	EnsureAvailable(ctx context.Context) (gpupower.Outcome, error)
	RecordActivity()
	ShutdownIfIdle(ctx context.Context) (bool, error)
}

// Stats mirrors the worker's in-memory counters, synced periodically to the
// worker_stats table.
type Stats struct {
	FreshProcessed     int
	BacklogProcessed   int
	Errors             int
	StartedAt          time.Time
	LastProcessedAt    time.Time
	TotalProcessingMS  int64
	ItemsTimed         int
	StoppedDueToErrors bool
}

// Worker runs the fresh-queue-preempts-backlog analysis loop.
type Worker struct {
	cfg      config.QueueConfig
	llmCfg   config.LLMConfig
	items    *store.Items
	channels *store.Channels
	logs     *store.ProcessingLogs
	events   *store.Events
	control  *store.WorkerControl
	settings *store.Settings
	gpu      GPUGate
	llm      *llmprovider.Service

	fresh *Queue

	mu     sync.Mutex
	stats  Stats
	paused bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New constructs an LLM Worker around its own fresh Queue.
func New(
	cfg config.QueueConfig,
	llmCfg config.LLMConfig,
	items *store.Items,
	channels *store.Channels,
	logs *store.ProcessingLogs,
	events *store.Events,
	control *store.WorkerControl,
	settings *store.Settings,
	gpu GPUGate,
	llm *llmprovider.Service,
) *Worker {
	return &Worker{
		cfg:      cfg,
		llmCfg:   llmCfg,
		items:    items,
		channels: channels,
		logs:     logs,
		events:   events,
		control:  control,
		settings: settings,
		gpu:      gpu,
		llm:      llm,
		fresh:    NewQueue(cfg.FreshQueueCapacity),
		stopCh:   make(chan struct{}),
	}
}

// Queue returns the fresh-items queue, wired into pipeline.New as its
// pipeline.FreshQueue.
func (w *Worker) Queue() *Queue { return w.fresh }

// Start launches the worker's run loop and command-channel poller.
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

func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// Status returns a snapshot of the worker's current counters.
func (w *Worker) Status() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// isLLMEnabled checks the settings-table runtime override (default: on).
func (w *Worker) isLLMEnabled(ctx context.Context) bool {
	if w.settings == nil {
		return true
	}
	return w.settings.GetBoolOr(ctx, "llm_enabled", true)
}

// run is the main loop: fresh queue always checked first, backlog only
// consulted when fresh is empty, idle shutdown/sleep as the fallback.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	consecutiveErrors := 0
	const maxConsecutiveErrors = 10

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		if w.isPaused() || !w.isLLMEnabled(ctx) {
			if !w.sleep(1 * time.Second) {
				return
			}
			continue
		}

		freshIDs := w.fresh.DrainUpTo(w.cfg.BatchSize)
		if len(freshIDs) > 0 {
			outcome, err := w.gpu.EnsureAvailable(ctx)
			if err != nil || outcome != gpupower.OutcomeReady {
				// Wake failed or denied outside hours: put the ids back so
				// the next cycle (or the backlog scan once classified) can
				// retry them. No error is surfaced; this is the documented
				// "external resource unavailable" non-error path.
				w.fresh.Requeue(freshIDs)
				if !w.sleep(5 * time.Second) {
					return
				}
				continue
			}
			errs := w.processBatch(ctx, freshIDs, true)
			w.gpu.RecordActivity()
			consecutiveErrors = w.accountErrors(errs, consecutiveErrors, maxConsecutiveErrors)
			if consecutiveErrors < 0 {
				return
			}
			continue
		}

		backlogItems, err := w.items.LLMBacklog(ctx, w.cfg.BacklogBatchSize)
		if err != nil {
			slog.Error("llm worker backlog query failed", "error", err)
			consecutiveErrors++
			if !w.handleLoopError(ctx, consecutiveErrors, maxConsecutiveErrors) {
				return
			}
			continue
		}
		if len(backlogItems) > 0 {
			outcome, err := w.gpu.EnsureAvailable(ctx)
			if err != nil || outcome != gpupower.OutcomeReady {
				if !w.sleep(5 * time.Second) {
					return
				}
				continue
			}
			ids := make([]int, len(backlogItems))
			for i, it := range backlogItems {
				ids[i] = it.ID
			}
			errs := w.processBatch(ctx, ids, false)
			w.gpu.RecordActivity()
			consecutiveErrors = w.accountErrors(errs, consecutiveErrors, maxConsecutiveErrors)
			if consecutiveErrors < 0 {
				return
			}
			continue
		}

		if _, err := w.gpu.ShutdownIfIdle(ctx); err != nil {
			slog.Warn("llm worker idle shutdown failed", "error", err)
		}

		if !w.sleep(w.cfg.IdleSleep) {
			return
		}
	}
}

// processBatch processes ids in order, checking for fresh-queue preemption
// between items (but never mid-item) when processing the backlog tag.
// Returns the count of per-item failures.
func (w *Worker) processBatch(ctx context.Context, ids []int, freshTag bool) int {
	errs := 0
	for _, id := range ids {
		select {
		case <-w.stopCh:
			return errs
		default:
		}
		if w.isPaused() {
			break
		}
		if !freshTag && !w.fresh.Empty() {
			// Fresh items preempt backlog between items, never mid-item.
			break
		}
		if err := w.processOne(ctx, id); err != nil {
			slog.Error("llm worker item processing failed", "item_id", id, "error", err)
			errs++
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
			continue
		}
		w.mu.Lock()
		if freshTag {
			w.stats.FreshProcessed++
		} else {
			w.stats.BacklogProcessed++
		}
		w.stats.LastProcessedAt = time.Now()
		w.mu.Unlock()
	}
	return errs
}

// processOne loads one item, runs the LLM analysis, and commits the result.
func (w *Worker) processOne(ctx context.Context, id int) error {
	it, err := w.items.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading item %d: %w", id, err)
	}

	meta := store.MetadataFromMap(it.Metadata)
	if meta.PreFilter == nil {
		// Never process an item the classifier hasn't touched. The backlog
		// query already filters on pre_filter, but the fresh queue is fed
		// unconditionally by the pipeline, so check again here.
		return nil
	}

	started := time.Now()
	runID := fmt.Sprintf("llm-%d-%d", id, started.UnixNano())
	sourceName := w.channels.SourceName(ctx, it.ChannelID)

	prompt := llmprovider.BuildAnalysisPrompt(it.Title, it.Content, sourceName, it.PublishedAt)
	resp, err := w.llm.Complete(ctx, prompt, llmprovider.AnalysisSystemPrompt, w.llmCfg.Temperature, w.llmCfg.MaxTokens)
	if err != nil {
		w.logStep(ctx, runID, id, started, string(it.Priority), "", false, err.Error())
		return fmt.Errorf("llm completion: %w", err)
	}

	analysis := llmprovider.ParseAnalysisResponse(resp.Text)

	newPriority, baseline := priority.FromLLMPriority(analysis.Priority)
	if !analysis.Relevant {
		newPriority, baseline = priority.None, 10
	}

	newScore := baseline
	if newPriority == priority.None {
		if it.PriorityScore < newScore {
			newScore = it.PriorityScore
		}
	} else if it.PriorityScore > newScore {
		newScore = it.PriorityScore
	}

	aks := analysis.AssignedAKs
	if len(aks) == 0 && meta.PreFilter != nil && meta.PreFilter.AKSuggestion != "" {
		aks = []string{meta.PreFilter.AKSuggestion}
	}

	meta.LLMAnalysis = &store.LLMAnalysis{
		Relevant:           analysis.Relevant,
		PrioritySuggestion: analysis.Priority,
		AssignedAKs:        aks,
		RelevanceScore:     analysis.RelevanceScore,
		Tags:               analysis.Tags,
		ProcessedAt:        time.Now(),
		ModelName:          resp.Model,
		Source:             "llm_worker",
	}

	if err := w.items.ApplyLLMAnalysis(ctx, id, store.LLMAnalysisResult{
		Summary:          analysis.Summary,
		DetailedAnalysis: analysis.DetailedAnalysis,
		Priority:         string(newPriority),
		PriorityScore:    newScore,
		AssignedAKs:      aks,
		Metadata:         meta,
	}); err != nil {
		w.logStep(ctx, runID, id, started, string(it.Priority), string(newPriority), false, err.Error())
		return fmt.Errorf("applying analysis: %w", err)
	}

	completed := time.Now()
	if evErr := w.events.Record(ctx, id, "llm_processed", map[string]interface{}{
		"priority": string(newPriority),
		"model":    resp.Model,
	}); evErr != nil {
		slog.Warn("recording llm_processed event failed", "item_id", id, "error", evErr)
	}

	durationMS := int(completed.Sub(started).Milliseconds())
	priorityChanged := string(it.Priority) != string(newPriority)
	relevant := analysis.Relevant
	relevanceScore := analysis.RelevanceScore
	if logErr := w.logs.Append(ctx, store.StepInput{
		ItemID:          &id,
		ProcessingRunID: runID,
		StepType:        "llm_analysis",
		StartedAt:       started,
		CompletedAt:     &completed,
		DurationMS:      &durationMS,
		ModelName:       resp.Model,
		PriorityInput:   string(it.Priority),
		PriorityOutput:  string(newPriority),
		PriorityChanged: priorityChanged,
		Relevant:        &relevant,
		RelevanceScore:  &relevanceScore,
		Success:         true,
	}); logErr != nil {
		slog.Warn("logging llm_analysis step failed", "item_id", id, "error", logErr)
	}

	w.mu.Lock()
	w.stats.TotalProcessingMS += int64(durationMS)
	w.stats.ItemsTimed++
	w.mu.Unlock()

	return nil
}

func (w *Worker) logStep(ctx context.Context, runID string, itemID int, started time.Time, priorityIn, priorityOut string, success bool, errMsg string) {
	completed := time.Now()
	durationMS := int(completed.Sub(started).Milliseconds())
	if err := w.logs.Append(ctx, store.StepInput{
		ItemID:          &itemID,
		ProcessingRunID: runID,
		StepType:        "llm_analysis",
		StartedAt:       started,
		CompletedAt:     &completed,
		DurationMS:      &durationMS,
		PriorityInput:   priorityIn,
		PriorityOutput:  priorityOut,
		Success:         success,
		ErrorMessage:    errMsg,
	}); err != nil {
		slog.Warn("logging llm_analysis failure step failed", "item_id", itemID, "error", err)
	}
}

// accountErrors folds a batch's failure count into the consecutive-error
// counter, returning -1 if the worker hit the hard stop and should exit.
func (w *Worker) accountErrors(batchErrs, consecutive, max int) int {
	if batchErrs == 0 {
		return 0
	}
	consecutive += batchErrs
	if consecutive >= max {
		slog.Error("llm worker exceeded max consecutive errors, stopping", "max", max)
		w.mu.Lock()
		w.stats.StoppedDueToErrors = true
		w.mu.Unlock()
		if w.control != nil {
			if err := w.control.PublishState(context.Background(), "llm", "stopped", "", true); err != nil {
				slog.Error("publishing stopped state failed", "error", err)
			}
		}
		return -1
	}
	return consecutive
}

func (w *Worker) handleLoopError(ctx context.Context, consecutive, max int) bool {
	if consecutive >= max {
		slog.Error("llm worker exceeded max consecutive loop errors, stopping", "max", max)
		w.mu.Lock()
		w.stats.StoppedDueToErrors = true
		w.mu.Unlock()
		if w.control != nil {
			if err := w.control.PublishState(ctx, "llm", "stopped", "", true); err != nil {
				slog.Error("publishing stopped state failed", "error", err)
			}
		}
		return false
	}
	backoff := time.Duration(5*(1<<uint(consecutive-1))) * time.Second
	if backoff > w.cfg.ErrorBackoffMax {
		backoff = w.cfg.ErrorBackoffMax
	}
	return w.sleep(backoff)
}

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
	if w.control == nil {
		return
	}
	w.mu.Lock()
	s := w.stats
	w.mu.Unlock()
	snapshot := store.StatsSnapshot{
		WorkerName:        "llm",
		FreshProcessed:    s.FreshProcessed,
		BacklogProcessed:  s.BacklogProcessed,
		Errors:            s.Errors,
		TotalProcessingMS: s.TotalProcessingMS,
		ItemsTimed:        s.ItemsTimed,
	}
	if !s.StartedAt.IsZero() {
		snapshot.StartedAt = &s.StartedAt
	}
	if !s.LastProcessedAt.IsZero() {
		snapshot.LastProcessedAt = &s.LastProcessedAt
	}
	if err := w.control.PublishStats(ctx, snapshot); err != nil {
		slog.Error("syncing llm worker stats failed", "error", err)
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
	if err := w.control.PublishState(ctx, "llm", status, "", stopped); err != nil {
		slog.Error("syncing llm worker state failed", "error", err)
	}
}

func (w *Worker) handlePendingCommands(ctx context.Context) {
	if w.control == nil {
		return
	}
	cmds, err := w.control.PendingCommands(ctx, "llm")
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
