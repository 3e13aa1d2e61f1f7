package store

import (
	"context"
	"fmt"
	"time"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/ent/itemprocessinglog"
)

// ProcessingLogs appends per-step processing records, chained by a
// correlation id (processing_run_id) threading fetch -> pre_filter ->
// duplicate_check -> rule_match -> llm_analysis for one ingestion run.
type ProcessingLogs struct {
	client *ent.Client
}

// NewProcessingLogs constructs a ProcessingLogs repository.
func NewProcessingLogs(client *ent.Client) *ProcessingLogs {
	return &ProcessingLogs{client: client}
}

// StepInput describes one processing-step record to append.
type StepInput struct {
	ItemID          *int
	ProcessingRunID string
	StepType        string
	StepOrder       int
	StartedAt       time.Time
	CompletedAt     *time.Time
	DurationMS      *int
	ModelName       string
	ConfidenceScore *float64
	PriorityInput   string
	PriorityOutput  string
	PriorityChanged bool
	Relevant        *bool
	RelevanceScore  *float64
	Success         bool
	Skipped         bool
	SkipReason      string
	ErrorMessage    string
	Details         map[string]interface{}
}

// Append records one processing step.
func (p *ProcessingLogs) Append(ctx context.Context, in StepInput) error {
	create := p.client.ItemProcessingLog.Create().
		SetProcessingRunID(in.ProcessingRunID).
		SetStepType(itemprocessinglog.StepType(in.StepType)).
		SetStepOrder(in.StepOrder).
		SetStartedAt(in.StartedAt).
		SetPriorityChanged(in.PriorityChanged).
		SetSuccess(in.Success).
		SetSkipped(in.Skipped)

	if in.ItemID != nil {
		create = create.SetItemID(*in.ItemID)
	}
	if in.CompletedAt != nil {
		create = create.SetCompletedAt(*in.CompletedAt)
	}
	if in.DurationMS != nil {
		create = create.SetDurationMs(*in.DurationMS)
	}
	if in.ModelName != "" {
		create = create.SetModelName(in.ModelName)
	}
	if in.ConfidenceScore != nil {
		create = create.SetConfidenceScore(*in.ConfidenceScore)
	}
	if in.PriorityInput != "" {
		create = create.SetPriorityInput(in.PriorityInput)
	}
	if in.PriorityOutput != "" {
		create = create.SetPriorityOutput(in.PriorityOutput)
	}
	if in.Relevant != nil {
		create = create.SetRelevant(*in.Relevant)
	}
	if in.RelevanceScore != nil {
		create = create.SetRelevanceScore(*in.RelevanceScore)
	}
	if in.SkipReason != "" {
		create = create.SetSkipReason(in.SkipReason)
	}
	if in.ErrorMessage != "" {
		create = create.SetErrorMessage(in.ErrorMessage)
	}
	if in.Details != nil {
		create = create.SetDetails(in.Details)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("appending processing log step %q (run %s): %w", in.StepType, in.ProcessingRunID, err)
	}
	return nil
}
