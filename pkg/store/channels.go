package store

import (
	"context"
	"fmt"
	"time"

	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/liga-hessen/news-aggregator/ent/channel"
	"github.com/liga-hessen/news-aggregator/ent/source"
)

// Channels wraps channel-repository operations, in particular the
// due-for-fetch query the ingestion scheduler polls on every tick.
type Channels struct {
	client *ent.Client
}

// NewChannels constructs a Channels repository.
func NewChannels(client *ent.Client) *Channels {
	return &Channels{client: client}
}

// DueForFetch returns every enabled channel (of an enabled source) whose
// fetch interval has elapsed, or which has never been fetched. Disabled
// channels and channels belonging to a disabled source are never
// returned.
func (c *Channels) DueForFetch(ctx context.Context, now time.Time) ([]*ent.Channel, error) {
	channels, err := c.client.Channel.Query().
		Where(
			channel.EnabledEQ(true),
			channel.HasSourceWith(source.EnabledEQ(true)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying channels: %w", err)
	}

	var due []*ent.Channel
	for _, ch := range channels {
		if ch.LastFetchAt == nil {
			due = append(due, ch)
			continue
		}
		nextDue := ch.LastFetchAt.Add(time.Duration(ch.FetchIntervalMinutes) * time.Minute)
		if !now.Before(nextDue) {
			due = append(due, ch)
		}
	}
	return due, nil
}

// Get fetches a channel by id, used for on-demand fetch requests delivered
// through the command channel.
func (c *Channels) Get(ctx context.Context, id int) (*ent.Channel, error) {
	ch, err := c.client.Channel.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching channel %d: %w", id, err)
	}
	return ch, nil
}

// RecordFetchSuccess stamps last_fetch_at and clears last_error.
func (c *Channels) RecordFetchSuccess(ctx context.Context, id int, at time.Time) error {
	return c.client.Channel.UpdateOneID(id).
		SetLastFetchAt(at).
		ClearLastError().
		Exec(ctx)
}

// RecordFetchFailure stamps last_fetch_at and sets last_error, keeping it
// visible until the next successful fetch.
func (c *Channels) RecordFetchFailure(ctx context.Context, id int, at time.Time, errMsg string) error {
	return c.client.Channel.UpdateOneID(id).
		SetLastFetchAt(at).
		SetLastError(errMsg).
		Exec(ctx)
}

// SourceName returns the name of the source a channel belongs to, used by
// the LLM worker to attribute an item to its outlet in the analysis prompt.
// Falls back to "Unbekannt" if the channel or source cannot be resolved.
func (c *Channels) SourceName(ctx context.Context, channelID int) string {
	src, err := c.client.Channel.Query().
		Where(channel.IDEQ(channelID)).
		QuerySource().
		Only(ctx)
	if err != nil {
		return "Unbekannt"
	}
	return src.Name
}
