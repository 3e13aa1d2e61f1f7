package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/liga-hessen/news-aggregator/pkg/classifier"
	"github.com/liga-hessen/news-aggregator/pkg/connector"
	"github.com/liga-hessen/news-aggregator/pkg/store"
	testdb "github.com/liga-hessen/news-aggregator/test/database"
)

type noopFreshQueue struct{ pushed []int }

func (q *noopFreshQueue) Push(id int) { q.pushed = append(q.pushed, id) }

func TestIngest_PersistsNewItemAndSkipsExactDuplicate(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	source, err := client.Source.Create().SetName("Ministry").Save(ctx)
	require.NoError(t, err)
	channel, err := client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://example.test/feed.xml").
		Save(ctx)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			_ = json.NewEncoder(w).Encode(classifier.HealthStatus{})
		case "/classify":
			_ = json.NewEncoder(w).Encode(classifier.ClassifyResult{Relevant: true, RelevanceConfidence: 0.8, Priority: "medium", AK: "AK3"})
		case "/index-batch":
			_ = json.NewEncoder(w).Encode(map[string]int{"added": 1})
		case "/find-duplicates":
			_ = json.NewEncoder(w).Encode([]classifier.DuplicateCandidate{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cls := classifier.NewClient(srv.URL, time.Second)
	items := store.NewItems(client.Client)
	events := store.NewEvents(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	fresh := &noopFreshQueue{}

	p := New(items, events, logs, cls, fresh, nil, nil, 0.75)

	raw := []connector.RawItem{{
		ExternalID: "ext-1",
		Title:      "Bundestag beschließt Pflegereform",
		Content:    "Lang text body",
		URL:        "https://example.test/a",
	}}

	count, err := p.Ingest(ctx, ChannelRef{ID: channel.ID}, raw)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Len(t, fresh.pushed, 1)

	// Re-ingesting the same external id is skipped as a duplicate.
	count, err = p.Ingest(ctx, ChannelRef{ID: channel.ID}, raw)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	stored, err := items.Get(ctx, fresh.pushed[0])
	require.NoError(t, err)
	require.Equal(t, "medium", string(stored.Priority))
	require.True(t, stored.NeedsLlmProcessing)
}

func TestIngest_ClassifierUnreachableStillPersists(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	source, err := client.Source.Create().SetName("Ministry").Save(ctx)
	require.NoError(t, err)
	channel, err := client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://example.test/feed2.xml").
		Save(ctx)
	require.NoError(t, err)

	cls := classifier.NewClient("http://127.0.0.1:1", 50*time.Millisecond)
	items := store.NewItems(client.Client)
	events := store.NewEvents(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	fresh := &noopFreshQueue{}

	p := New(items, events, logs, cls, fresh, nil, nil, 0.75)

	raw := []connector.RawItem{{
		ExternalID: "ext-2",
		Title:      "Unreachable classifier test",
		Content:    "body",
		URL:        "https://example.test/b",
	}}

	count, err := p.Ingest(ctx, ChannelRef{ID: channel.ID}, raw)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	stored, err := items.FindByExternalID(ctx, channel.ID, "ext-2")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.True(t, stored.NeedsLlmProcessing)
	require.Nil(t, store.MetadataFromMap(stored.Metadata).PreFilter)
}

func TestIngest_KeywordBoostNeverOverridesClassifierPriority(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	source, err := client.Source.Create().SetName("Ministry").Save(ctx)
	require.NoError(t, err)
	channel, err := client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://example.test/feed4.xml").
		Save(ctx)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			_ = json.NewEncoder(w).Encode(classifier.HealthStatus{})
		case "/classify":
			_ = json.NewEncoder(w).Encode(classifier.ClassifyResult{Relevant: true, RelevanceConfidence: 0.6, Priority: "medium"})
		case "/index-batch":
			_ = json.NewEncoder(w).Encode(map[string]int{"added": 1})
		case "/find-duplicates":
			_ = json.NewEncoder(w).Encode([]classifier.DuplicateCandidate{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cls := classifier.NewClient(srv.URL, time.Second)
	items := store.NewItems(client.Client)
	events := store.NewEvents(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	fresh := &noopFreshQueue{}

	p := New(items, events, logs, cls, fresh, nil, nil, 0.75)

	// "Kürzung" scores 90 through the keyword table alone; the classifier's
	// MEDIUM verdict must still decide the stored priority outright.
	raw := []connector.RawItem{{
		ExternalID: "ext-4",
		Title:      "Kürzung der Landesmittel angekündigt",
		Content:    "Das Land kündigt eine Kürzung der Förderung an.",
		URL:        "https://example.test/d",
	}}

	count, err := p.Ingest(ctx, ChannelRef{ID: channel.ID}, raw)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	stored, err := items.FindByExternalID(ctx, channel.ID, "ext-4")
	require.NoError(t, err)
	require.Equal(t, "medium", string(stored.Priority))
	require.Equal(t, 70, stored.PriorityScore)
	require.True(t, stored.NeedsLlmProcessing)
}

func TestIngest_CertainlyIrrelevantSkipsLLMAndFreshQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	source, err := client.Source.Create().SetName("Ministry").Save(ctx)
	require.NoError(t, err)
	channel, err := client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://example.test/feed3.xml").
		Save(ctx)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			_ = json.NewEncoder(w).Encode(classifier.HealthStatus{})
		case "/classify":
			_ = json.NewEncoder(w).Encode(classifier.ClassifyResult{Relevant: false, RelevanceConfidence: 0.1})
		case "/index-batch":
			_ = json.NewEncoder(w).Encode(map[string]int{"added": 1})
		case "/find-duplicates":
			_ = json.NewEncoder(w).Encode([]classifier.DuplicateCandidate{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cls := classifier.NewClient(srv.URL, time.Second)
	items := store.NewItems(client.Client)
	events := store.NewEvents(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	fresh := &noopFreshQueue{}

	p := New(items, events, logs, cls, fresh, nil, nil, 0.75)

	raw := []connector.RawItem{{
		ExternalID: "ext-3",
		Title:      "Sportergebnisse vom Wochenende",
		Content:    "Tabellenstand nach dem 12. Spieltag",
		URL:        "https://example.test/c",
	}}

	count, err := p.Ingest(ctx, ChannelRef{ID: channel.ID}, raw)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Empty(t, fresh.pushed, "certainly-irrelevant items never enter the fresh queue")

	stored, err := items.FindByExternalID(ctx, channel.ID, "ext-3")
	require.NoError(t, err)
	require.Equal(t, "none", string(stored.Priority))
	require.Equal(t, 20, stored.PriorityScore)
	require.False(t, stored.NeedsLlmProcessing)
	meta := store.MetadataFromMap(stored.Metadata)
	require.Equal(t, "low", meta.RetryPriority)
	require.True(t, meta.VectorDBIndexed)
	require.True(t, meta.DuplicateChecked)
}
