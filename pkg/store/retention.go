package store

import (
	"context"
	"fmt"
	"time"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/ent/itemevent"
	"github.com/liga-hessen/news-aggregator/ent/itemprocessinglog"
)

// Retention purges audit-trail rows past their configured retention
// window.
type Retention struct {
	client *ent.Client
}

// NewRetention constructs a Retention repository.
func NewRetention(client *ent.Client) *Retention {
	return &Retention{client: client}
}

// PurgeItemEvents deletes ItemEvent rows older than olderThan, returning the
// count removed.
func (r *Retention) PurgeItemEvents(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := r.client.ItemEvent.Delete().
		Where(itemevent.TimestampLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purging item events: %w", err)
	}
	return n, nil
}

// PurgeProcessingLogs deletes ItemProcessingLog rows older than olderThan,
// returning the count removed.
func (r *Retention) PurgeProcessingLogs(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := r.client.ItemProcessingLog.Delete().
		Where(itemprocessinglog.StartedAtLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purging processing logs: %w", err)
	}
	return n, nil
}
