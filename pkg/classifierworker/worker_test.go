package classifierworker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/liga-hessen/news-aggregator/pkg/classifier"
	"github.com/liga-hessen/news-aggregator/pkg/config"
	"github.com/liga-hessen/news-aggregator/pkg/database"
	"github.com/liga-hessen/news-aggregator/pkg/store"
	testdb "github.com/liga-hessen/news-aggregator/test/database"
)

func seedChannel(t *testing.T, client *database.Client, ctx context.Context, feedURL string) int {
	t.Helper()
	source, err := client.Source.Create().SetName("Ministry").Save(ctx)
	require.NoError(t, err)
	channel, err := client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier(feedURL).
		Save(ctx)
	require.NoError(t, err)
	return channel.ID
}

func TestProcessUnclassified_StampsPreFilterAndPriority(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client, ctx, "https://example.test/a.xml")

	it, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("ext-1").
		SetTitle("t").
		SetContent("c").
		SetURL("https://example.test/a/1").
		SetPublishedAt(time.Now()).
		SetContentHash("hash1").
		Save(ctx)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/classify":
			_ = json.NewEncoder(w).Encode(classifier.ClassifyResult{Relevant: true, RelevanceConfidence: 0.9, AK: "AK1"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cls := classifier.NewClient(srv.URL, time.Second)
	items := store.NewItems(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	control := store.NewWorkerControl(client.Client)

	w := New(config.DefaultClassifierQueueConfig(), config.DefaultClassifierConfig(), items, logs, control, cls)

	n, err := w.processUnclassified(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	updated, err := items.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "medium", string(updated.Priority))
	require.True(t, updated.NeedsLlmProcessing)

	meta := store.MetadataFromMap(updated.Metadata)
	require.NotNil(t, meta.PreFilter)
	require.Equal(t, 0.9, meta.PreFilter.RelevanceConfidence)
	require.Equal(t, "high", meta.RetryPriority)
}

func TestProcessUnindexed_StampsVectorDBIndexed(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client, ctx, "https://example.test/b.xml")

	meta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.8, ClassifiedAt: time.Now()}}
	it, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("ext-2").
		SetTitle("t2").
		SetContent("c2").
		SetURL("https://example.test/b/1").
		SetPublishedAt(time.Now()).
		SetContentHash("hash2").
		SetMetadata(meta.ToMap()).
		Save(ctx)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/index-batch" {
			_ = json.NewEncoder(w).Encode(map[string]int{"added": 1})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cls := classifier.NewClient(srv.URL, time.Second)
	items := store.NewItems(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	control := store.NewWorkerControl(client.Client)
	w := New(config.DefaultClassifierQueueConfig(), config.DefaultClassifierConfig(), items, logs, control, cls)

	n, err := w.processUnindexed(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	updated, err := items.Get(ctx, it.ID)
	require.NoError(t, err)
	require.True(t, store.MetadataFromMap(updated.Metadata).VectorDBIndexed)
}

func TestCheckDuplicateOne_URLMatchLinksToOldestAcrossChannels(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelA := seedChannel(t, client, ctx, "https://example.test/c.xml")
	channelB := seedChannel(t, client, ctx, "https://example.test/d.xml")

	older, err := client.Item.Create().
		SetChannelID(channelA).
		SetExternalID("ext-older").
		SetTitle("older").
		SetContent("c").
		SetURL("https://shared.test/story").
		SetPublishedAt(time.Now()).
		SetContentHash("hash-older").
		Save(ctx)
	require.NoError(t, err)

	newer, err := client.Item.Create().
		SetChannelID(channelB).
		SetExternalID("ext-newer").
		SetTitle("newer").
		SetContent("c").
		SetURL("https://shared.test/story").
		SetPublishedAt(time.Now()).
		SetContentHash("hash-newer").
		Save(ctx)
	require.NoError(t, err)

	cls := classifier.NewClient("http://127.0.0.1:1", 50*time.Millisecond)
	items := store.NewItems(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	control := store.NewWorkerControl(client.Client)
	w := New(config.DefaultClassifierQueueConfig(), config.DefaultClassifierConfig(), items, logs, control, cls)

	err = w.checkDuplicateOne(ctx, newer)
	require.NoError(t, err)

	updated, err := items.Get(ctx, newer.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.SimilarToID)
	require.Equal(t, older.ID, *updated.SimilarToID)
}
