// Package scheduler runs the periodic ingestion scan: finding channels due
// for a fetch, invoking their connector with bounded concurrency, and
// handing the results to the pipeline.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/pkg/connector"
	"github.com/liga-hessen/news-aggregator/pkg/pipeline"
	"github.com/liga-hessen/news-aggregator/pkg/store"
)

// Ingester is the subset of pipeline.Pipeline the scheduler depends on.
type Ingester interface {
	Ingest(ctx context.Context, channel pipeline.ChannelRef, raw []connector.RawItem) (int, error)
}

// Config tunes the scheduler's polling cadence and concurrency cap.
type Config struct {
	TickInterval       time.Duration
	MaxConcurrentFetch int
	FetchTimeout       time.Duration
}

// Scheduler polls for channels due to be fetched and dispatches them to
// their registered connector, bounded by a weighted semaphore.
type Scheduler struct {
	cfg        Config
	channels   *store.Channels
	registry   *connector.Registry
	pipeline   Ingester
	logs       *store.ProcessingLogs
	control    *store.WorkerControl
	sem        *semaphore.Weighted
	channelMus sync.Map // channel id -> *sync.Mutex, serializes fetches per channel

	onDemand chan int

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New constructs a Scheduler. control may be nil, in which case on-demand
// fetches can only arrive through RequestFetch.
func New(cfg Config, channels *store.Channels, registry *connector.Registry, p Ingester, logs *store.ProcessingLogs, control *store.WorkerControl) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		channels: channels,
		registry: registry,
		pipeline: p,
		logs:     logs,
		control:  control,
		sem:      semaphore.NewWeighted(int64(cfg.MaxConcurrentFetch)),
		onDemand: make(chan int, 64),
		stopCh:   make(chan struct{}),
	}
}

// Start begins the ticker-driven scan loop in a background goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop signals the scan loop to exit and waits for it to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// RequestFetch queues an on-demand fetch for one channel, delivered through
// the leader's command channel (e.g. a "fetch_now" worker command).
func (s *Scheduler) RequestFetch(channelID int) {
	select {
	case s.onDemand <- channelID:
	default:
		slog.Warn("on-demand fetch queue full, dropping request", "channel_id", channelID)
	}
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	cmdTicker := time.NewTicker(5 * time.Second)
	defer cmdTicker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case channelID := <-s.onDemand:
			s.dispatchOne(ctx, channelID)
		case <-cmdTicker.C:
			s.pollCommands(ctx)
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

// pollCommands drains pending scheduler commands; a fetch_now command with a
// channel_id payload queues an on-demand fetch.
func (s *Scheduler) pollCommands(ctx context.Context) {
	if s.control == nil {
		return
	}
	cmds, err := s.control.PendingCommands(ctx, "scheduler")
	if err != nil {
		slog.Error("polling scheduler commands failed", "error", err)
		return
	}
	for _, cmd := range cmds {
		if string(cmd.Command) == "fetch_now" {
			if idRaw, ok := cmd.Payload["channel_id"].(float64); ok {
				s.RequestFetch(int(idRaw))
			}
		}
		if err := s.control.MarkProcessed(ctx, cmd.ID); err != nil {
			slog.Error("marking scheduler command processed failed", "command_id", cmd.ID, "error", err)
		}
	}
}

func (s *Scheduler) scan(ctx context.Context) {
	due, err := s.channels.DueForFetch(ctx, time.Now())
	if err != nil {
		slog.Error("scheduler scan failed", "error", err)
		return
	}

	var wg sync.WaitGroup
	for _, ch := range due {
		ch := ch
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.sem.Release(1)
			s.fetchChannel(ctx, ch)
		}()
	}
	wg.Wait()
}

func (s *Scheduler) dispatchOne(ctx context.Context, channelID int) {
	ch, err := s.channels.Get(ctx, channelID)
	if err != nil {
		slog.Error("on-demand fetch: channel lookup failed", "channel_id", channelID, "error", err)
		return
	}
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return
	}
	defer s.sem.Release(1)
	s.fetchChannel(ctx, ch)
}

// fetchChannel runs one channel's fetch (log the attempt, call the
// connector, hand results to the pipeline, record the outcome), serialized
// per-channel so two concurrent fetches of the same channel never overlap.
func (s *Scheduler) fetchChannel(ctx context.Context, ch *ent.Channel) {
	muAny, _ := s.channelMus.LoadOrStore(ch.ID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	started := time.Now()
	s.logFetchAttempt(ctx, ch.ID, started)

	conn, err := s.registry.Get(string(ch.ConnectorType))
	if err != nil {
		s.recordFailure(ctx, ch.ID, started, err)
		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	raw, err := conn.Fetch(fetchCtx, ch.Config)
	if err != nil {
		s.recordFailure(ctx, ch.ID, started, err)
		return
	}

	inserted, err := s.pipeline.Ingest(ctx, pipeline.ChannelRef{ID: ch.ID}, raw)
	if err != nil {
		s.recordFailure(ctx, ch.ID, started, err)
		return
	}

	if err := s.channels.RecordFetchSuccess(ctx, ch.ID, time.Now()); err != nil {
		slog.Error("recording fetch success failed", "channel_id", ch.ID, "error", err)
	}
	s.logFetchResult(ctx, ch.ID, started, inserted, true, "")
}

func (s *Scheduler) recordFailure(ctx context.Context, channelID int, started time.Time, fetchErr error) {
	slog.Warn("channel fetch failed", "channel_id", channelID, "error", fetchErr)
	if err := s.channels.RecordFetchFailure(ctx, channelID, time.Now(), fetchErr.Error()); err != nil {
		slog.Error("recording fetch failure failed", "channel_id", channelID, "error", err)
	}
	s.logFetchResult(ctx, channelID, started, 0, false, fetchErr.Error())
}

func (s *Scheduler) logFetchAttempt(ctx context.Context, channelID int, started time.Time) {
	if s.logs == nil {
		return
	}
	if err := s.logs.Append(ctx, store.StepInput{
		ProcessingRunID: fmt.Sprintf("channel-%d-%d", channelID, started.UnixNano()),
		StepType:        "fetch",
		StepOrder:       0,
		StartedAt:       started,
	}); err != nil {
		slog.Warn("logging fetch attempt failed", "channel_id", channelID, "error", err)
	}
}

func (s *Scheduler) logFetchResult(ctx context.Context, channelID int, started time.Time, inserted int, success bool, errMsg string) {
	if s.logs == nil {
		return
	}
	completed := time.Now()
	durationMS := int(completed.Sub(started).Milliseconds())
	if err := s.logs.Append(ctx, store.StepInput{
		ProcessingRunID: fmt.Sprintf("channel-%d-%d", channelID, started.UnixNano()),
		StepType:        "fetch",
		StepOrder:       1,
		StartedAt:       started,
		CompletedAt:     &completed,
		DurationMS:      &durationMS,
		Success:         success,
		ErrorMessage:    errMsg,
		Details:         map[string]interface{}{"items_inserted": inserted},
	}); err != nil {
		slog.Warn("logging fetch result failed", "channel_id", channelID, "error", err)
	}
}
