package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/liga-hessen/news-aggregator/pkg/connector"
	"github.com/liga-hessen/news-aggregator/pkg/pipeline"
	"github.com/liga-hessen/news-aggregator/pkg/store"
	testdb "github.com/liga-hessen/news-aggregator/test/database"
)

type fakeConnector struct {
	calls int32
	items []connector.RawItem
	err   error
}

func (f *fakeConnector) Fetch(ctx context.Context, cfg map[string]interface{}) ([]connector.RawItem, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeConnector) Validate(ctx context.Context, cfg map[string]interface{}) (bool, string) {
	return true, ""
}

type fakeIngester struct {
	calls int32
}

func (f *fakeIngester) Ingest(ctx context.Context, channel pipeline.ChannelRef, raw []connector.RawItem) (int, error) {
	atomic.AddInt32(&f.calls, 1)
	return len(raw), nil
}

func TestScheduler_ScanFetchesDueChannelAndSkipsDisabled(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	enabledSource, err := client.Source.Create().SetName("Enabled").Save(ctx)
	require.NoError(t, err)
	dueChannel, err := client.Channel.Create().
		SetSource(enabledSource).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://a.test/feed.xml").
		SetFetchIntervalMinutes(30).
		Save(ctx)
	require.NoError(t, err)

	disabledSource, err := client.Source.Create().SetName("Disabled").SetEnabled(false).Save(ctx)
	require.NoError(t, err)
	_, err = client.Channel.Create().
		SetSource(disabledSource).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://b.test/feed.xml").
		Save(ctx)
	require.NoError(t, err)

	registry := connector.NewRegistry()
	fc := &fakeConnector{items: []connector.RawItem{{ExternalID: "1", Title: "t", Content: "c"}}}
	registry.Register("web-feed", fc)

	ingester := &fakeIngester{}
	channels := store.NewChannels(client.Client)
	logs := store.NewProcessingLogs(client.Client)

	s := New(Config{TickInterval: time.Hour, MaxConcurrentFetch: 2, FetchTimeout: time.Second}, channels, registry, ingester, logs, nil)

	s.scan(ctx)

	require.Equal(t, int32(1), atomic.LoadInt32(&fc.calls))
	require.Equal(t, int32(1), atomic.LoadInt32(&ingester.calls))

	updated, err := channels.Get(ctx, dueChannel.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastFetchAt)
}

func TestScheduler_FetchFailureRecordsLastError(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	src, err := client.Source.Create().SetName("S").Save(ctx)
	require.NoError(t, err)
	ch, err := client.Channel.Create().
		SetSource(src).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://c.test/feed.xml").
		Save(ctx)
	require.NoError(t, err)

	registry := connector.NewRegistry()
	fc := &fakeConnector{err: context.DeadlineExceeded}
	registry.Register("web-feed", fc)

	channels := store.NewChannels(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	s := New(Config{TickInterval: time.Hour, MaxConcurrentFetch: 2, FetchTimeout: time.Second}, channels, registry, &fakeIngester{}, logs, nil)

	s.scan(ctx)

	updated, err := channels.Get(ctx, ch.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastError)
}
