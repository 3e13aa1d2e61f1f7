package llmworker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/liga-hessen/news-aggregator/pkg/config"
	"github.com/liga-hessen/news-aggregator/pkg/database"
	"github.com/liga-hessen/news-aggregator/pkg/gpupower"
	"github.com/liga-hessen/news-aggregator/pkg/llmprovider"
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

// fakeGate is an always-ready GPUGate: active-hours/wake-on-lan behavior is
// gpupower's own concern, unit-tested in pkg/gpupower.
type fakeGate struct {
	outcome       gpupower.Outcome
	err           error
	activityCalls int
	idleShutdowns int
}

func (g *fakeGate) EnsureAvailable(ctx context.Context) (gpupower.Outcome, error) {
	return g.outcome, g.err
}
func (g *fakeGate) RecordActivity() { g.activityCalls++ }
func (g *fakeGate) ShutdownIfIdle(ctx context.Context) (bool, error) {
	g.idleShutdowns++
	return false, nil
}

// fakeProvider implements llmprovider.Provider with a canned response,
// standing in for a real Ollama/OpenRouter backend in tests.
type fakeProvider struct {
	text string
	err  error
}

func (p *fakeProvider) Name() string { return "fake" }
func (p *fakeProvider) Complete(ctx context.Context, prompt, system string, temperature float64, maxTokens int) (llmprovider.Response, error) {
	if p.err != nil {
		return llmprovider.Response{}, p.err
	}
	return llmprovider.Response{Text: p.text, Model: "fake-model"}, nil
}
func (p *fakeProvider) Chat(ctx context.Context, messages []llmprovider.ChatMessage, temperature float64, maxTokens int) (llmprovider.Response, error) {
	return p.Complete(ctx, "", "", temperature, maxTokens)
}
func (p *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func newTestWorker(t *testing.T, client *database.Client, provider *fakeProvider, gate *fakeGate) *Worker {
	t.Helper()
	svc, err := llmprovider.NewService([]llmprovider.Provider{provider}, nil)
	require.NoError(t, err)

	items := store.NewItems(client.Client)
	channels := store.NewChannels(client.Client)
	logs := store.NewProcessingLogs(client.Client)
	events := store.NewEvents(client.Client)
	control := store.NewWorkerControl(client.Client)
	settings := store.NewSettings(client.Client)

	return New(
		config.DefaultLLMQueueConfig(),
		config.LLMConfig{Temperature: 0.3, MaxTokens: 2048},
		items, channels, logs, events, control, settings,
		gate, svc,
	)
}

const sampleAnalysisJSON = `{
  "summary": "Kurzfassung des Artikels.",
  "detailed_analysis": "Ausfuehrliche Analyse.",
  "relevant": true,
  "relevance_score": 0.88,
  "priority": "high",
  "assigned_aks": ["AK1", "AK3"],
  "tags": ["kinderschutz"],
  "reasoning": "Betrifft direkt AK1."
}`

func TestProcessOne_HappyPath(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client, ctx, "https://example.test/llm-a.xml")

	meta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.9, ClassifiedAt: time.Now()}}
	it, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("llm-ext-1").
		SetTitle("Neues Gesetz zur Kinderbetreuung").
		SetContent("Der Hessische Landtag hat ein neues Gesetz beschlossen.").
		SetURL("https://example.test/llm-a/1").
		SetPublishedAt(time.Now()).
		SetContentHash("llm-hash1").
		SetMetadata(meta.ToMap()).
		SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	gate := &fakeGate{outcome: gpupower.OutcomeReady}
	w := newTestWorker(t, client, &fakeProvider{text: sampleAnalysisJSON}, gate)

	require.NoError(t, w.processOne(ctx, it.ID))

	updated, err := store.NewItems(client.Client).Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "high", string(updated.Priority))
	require.False(t, updated.NeedsLlmProcessing)
	require.NotNil(t, updated.Summary)
	require.Equal(t, "Kurzfassung des Artikels.", *updated.Summary)
	require.ElementsMatch(t, []string{"AK1", "AK3"}, updated.AssignedAks)

	analysis := store.MetadataFromMap(updated.Metadata).LLMAnalysis
	require.NotNil(t, analysis)
	require.True(t, analysis.Relevant)
	require.Equal(t, "llm_worker", analysis.Source)
}

func TestProcessOne_IrrelevantForcesNonePriority(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client, ctx, "https://example.test/llm-b.xml")

	meta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.3, ClassifiedAt: time.Now()}}
	it, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("llm-ext-2").
		SetTitle("Sportergebnisse der Liga").
		SetContent("Die Tabelle nach dem 12. Spieltag.").
		SetURL("https://example.test/llm-b/1").
		SetPublishedAt(time.Now()).
		SetContentHash("llm-hash2").
		SetPriority("low").
		SetPriorityScore(50).
		SetMetadata(meta.ToMap()).
		SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	irrelevant := `{"summary":"","relevant":false,"relevance_score":0.05,"priority":"none","assigned_aks":[]}`
	gate := &fakeGate{outcome: gpupower.OutcomeReady}
	w := newTestWorker(t, client, &fakeProvider{text: irrelevant}, gate)

	require.NoError(t, w.processOne(ctx, it.ID))

	updated, err := store.NewItems(client.Client).Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "none", string(updated.Priority))
	require.LessOrEqual(t, updated.PriorityScore, 50)
}

func TestProcessOne_SkipsItemsWithoutPreFilter(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client, ctx, "https://example.test/llm-c.xml")

	it, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("llm-ext-3").
		SetTitle("Noch nicht klassifiziert").
		SetContent("c").
		SetURL("https://example.test/llm-c/1").
		SetPublishedAt(time.Now()).
		SetContentHash("llm-hash3").
		SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	gate := &fakeGate{outcome: gpupower.OutcomeReady}
	w := newTestWorker(t, client, &fakeProvider{text: sampleAnalysisJSON}, gate)

	require.NoError(t, w.processOne(ctx, it.ID))

	updated, err := store.NewItems(client.Client).Get(ctx, it.ID)
	require.NoError(t, err)
	require.True(t, updated.NeedsLlmProcessing, "item without a pre_filter stamp must not be analyzed yet")
	require.Nil(t, updated.Summary)
}

func TestQueue_FreshPreemptsBacklogBetweenItems(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client, ctx, "https://example.test/llm-d.xml")

	meta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.9, ClassifiedAt: time.Now()}}
	backlogItem, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("llm-ext-4").
		SetTitle("Backlog-Artikel").
		SetContent("c").
		SetURL("https://example.test/llm-d/1").
		SetPublishedAt(time.Now()).
		SetContentHash("llm-hash4").
		SetMetadata(meta.ToMap()).
		SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	freshItem, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("llm-ext-5").
		SetTitle("Frischer Artikel").
		SetContent("c").
		SetURL("https://example.test/llm-d/2").
		SetPublishedAt(time.Now()).
		SetContentHash("llm-hash5").
		SetMetadata(meta.ToMap()).
		SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	gate := &fakeGate{outcome: gpupower.OutcomeReady}
	w := newTestWorker(t, client, &fakeProvider{text: sampleAnalysisJSON}, gate)
	w.fresh.Push(freshItem.ID)

	// A backlog batch that includes both ids: the fresh item must be
	// processed, but the loop must stop before touching the backlog item
	// because the fresh queue became non-empty mid-batch is not possible
	// here (it was pushed before the batch starts) -- instead this asserts
	// that a batch tagged as backlog bails out as soon as fresh is non-empty.
	errs := w.processBatch(ctx, []int{backlogItem.ID}, false)
	require.Equal(t, 0, errs)

	updated, err := store.NewItems(client.Client).Get(ctx, backlogItem.ID)
	require.NoError(t, err)
	require.True(t, updated.NeedsLlmProcessing, "backlog processing must yield to a non-empty fresh queue")
}

func TestProcessBatch_GPUNotReadyRequeuesFreshItems(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client, ctx, "https://example.test/llm-e.xml")

	meta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.9, ClassifiedAt: time.Now()}}
	it, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("llm-ext-6").
		SetTitle("t").
		SetContent("c").
		SetURL("https://example.test/llm-e/1").
		SetPublishedAt(time.Now()).
		SetContentHash("llm-hash6").
		SetMetadata(meta.ToMap()).
		SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	gate := &fakeGate{outcome: gpupower.OutcomeDeniedOutsideHours}
	w := newTestWorker(t, client, &fakeProvider{text: sampleAnalysisJSON}, gate)
	w.fresh.Push(it.ID)

	ids := w.fresh.DrainUpTo(10)
	require.Equal(t, []int{it.ID}, ids)
	outcome, err := w.gpu.EnsureAvailable(ctx)
	require.NoError(t, err)
	require.NotEqual(t, gpupower.OutcomeReady, outcome)
	w.fresh.Requeue(ids)

	require.Equal(t, 1, w.fresh.Len())
}
