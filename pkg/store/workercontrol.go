package store

import (
	"context"
	"fmt"
	"time"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/ent/workercommand"
	"github.com/liga-hessen/news-aggregator/ent/workerstate"
)

// WorkerControl provides the leader-side command-channel operations: polling
// pending commands for a named worker, marking them processed, and
// publishing worker_state/worker_stats rows.
type WorkerControl struct {
	client *ent.Client
}

// NewWorkerControl constructs a WorkerControl repository.
func NewWorkerControl(client *ent.Client) *WorkerControl {
	return &WorkerControl{client: client}
}

// PendingCommands returns unprocessed commands for workerName, oldest first.
func (w *WorkerControl) PendingCommands(ctx context.Context, workerName string) ([]*ent.WorkerCommand, error) {
	cmds, err := w.client.WorkerCommand.Query().
		Where(
			workercommand.WorkerNameEQ(workercommand.WorkerName(workerName)),
			workercommand.ProcessedAtIsNil(),
		).
		Order(ent.Asc(workercommand.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying pending commands for %q: %w", workerName, err)
	}
	return cmds, nil
}

// MarkProcessed stamps processed_at on a command.
func (w *WorkerControl) MarkProcessed(ctx context.Context, id int) error {
	return w.client.WorkerCommand.UpdateOneID(id).
		SetProcessedAt(time.Now()).
		Exec(ctx)
}

// Enqueue submits a new command for workerName (the admin-facing entry point
// this repository does not itself expose over HTTP; callers such as an
// operator CLI or a future admin surface write rows here directly).
func (w *WorkerControl) Enqueue(ctx context.Context, workerName, command string, payload map[string]interface{}) error {
	create := w.client.WorkerCommand.Create().
		SetWorkerName(workercommand.WorkerName(workerName)).
		SetCommand(workercommand.Command(command))
	if payload != nil {
		create = create.SetPayload(payload)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("enqueueing %s command for %q: %w", command, workerName, err)
	}
	return nil
}

// PublishState upserts the worker_states row for workerName.
func (w *WorkerControl) PublishState(ctx context.Context, workerName, status, podID string, stoppedDueToErrors bool) error {
	err := w.client.WorkerState.Create().
		SetWorkerName(workerName).
		SetStatus(workerstate.Status(status)).
		SetStoppedDueToErrors(stoppedDueToErrors).
		SetNillablePodID(nonEmptyPtr(podID)).
		OnConflictColumns("worker_name").
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("publishing state for %q: %w", workerName, err)
	}
	return nil
}

// StatsSnapshot is the periodically-synced worker_stats row shape.
type StatsSnapshot struct {
	WorkerName        string
	FreshProcessed    int
	BacklogProcessed  int
	Errors            int
	StartedAt         *time.Time
	LastProcessedAt   *time.Time
	TotalProcessingMS int64
	ItemsTimed        int
}

// PublishStats upserts the worker_stats row for one worker.
func (w *WorkerControl) PublishStats(ctx context.Context, s StatsSnapshot) error {
	create := w.client.WorkerStats.Create().
		SetWorkerName(s.WorkerName).
		SetFreshProcessed(s.FreshProcessed).
		SetBacklogProcessed(s.BacklogProcessed).
		SetErrors(s.Errors).
		SetTotalProcessingMs(s.TotalProcessingMS).
		SetItemsTimed(s.ItemsTimed)
	if s.StartedAt != nil {
		create = create.SetStartedAt(*s.StartedAt)
	}
	if s.LastProcessedAt != nil {
		create = create.SetLastProcessedAt(*s.LastProcessedAt)
	}
	err := create.
		OnConflictColumns("worker_name").
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("publishing stats for %q: %w", s.WorkerName, err)
	}
	return nil
}
