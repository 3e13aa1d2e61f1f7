package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/liga-hessen/news-aggregator/pkg/database"
	"github.com/liga-hessen/news-aggregator/pkg/rules"
	"github.com/liga-hessen/news-aggregator/pkg/store"
	testdb "github.com/liga-hessen/news-aggregator/test/database"
)

func seedChannel(t *testing.T, client *database.Client) int {
	t.Helper()
	ctx := context.Background()
	source, err := client.Source.Create().SetName("Ministry").Save(ctx)
	require.NoError(t, err)
	channel, err := client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://example.test/store.xml").
		Save(ctx)
	require.NoError(t, err)
	return channel.ID
}

func TestRulesLoadEnabled_OrdersByConfiguredOrderAndSkipsDisabled(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	_, err := client.Rule.Create().
		SetName("second").SetRuleType("keyword").SetPattern("kita").
		SetOrder(2).SetEnabled(true).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Rule.Create().
		SetName("first").SetRuleType("keyword").SetPattern("pflege").
		SetOrder(1).SetEnabled(true).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Rule.Create().
		SetName("disabled").SetRuleType("keyword").SetPattern("ignored").
		SetOrder(0).SetEnabled(false).
		Save(ctx)
	require.NoError(t, err)

	repo := store.NewRules(client.Client)
	loaded, err := repo.LoadEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "first", loaded[0].Name)
	require.Equal(t, "second", loaded[1].Name)
	require.Equal(t, rules.Keyword, loaded[0].Type)
}

func TestApplyLLMAnalysis_ClearsNeedsProcessingAndWritesFields(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client)

	it, err := client.Item.Create().
		SetChannelID(channelID).
		SetExternalID("apply-1").
		SetTitle("t").
		SetContent("c").
		SetURL("https://example.test/apply/1").
		SetPublishedAt(time.Now()).
		SetContentHash("apply-hash-1").
		SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	items := store.NewItems(client.Client)
	meta := store.ItemMetadata{LLMAnalysis: &store.LLMAnalysis{Relevant: true, Source: "llm_worker"}}
	err = items.ApplyLLMAnalysis(ctx, it.ID, store.LLMAnalysisResult{
		Summary:       "summary text",
		Priority:      "high",
		PriorityScore: 92,
		AssignedAKs:   []string{"AK2"},
		Metadata:      meta,
	})
	require.NoError(t, err)

	updated, err := items.Get(ctx, it.ID)
	require.NoError(t, err)
	require.False(t, updated.NeedsLlmProcessing)
	require.NotNil(t, updated.Summary)
	require.Equal(t, "summary text", *updated.Summary)
	require.Equal(t, "high", string(updated.Priority))
	require.Equal(t, []string{"AK2"}, updated.AssignedAks)
}

func TestLLMBacklog_OrdersByRetryPriorityThenRecency(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client)

	lowMeta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.3}, RetryPriority: "low"}
	highMeta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.9}, RetryPriority: "high"}

	_, err := client.Item.Create().
		SetChannelID(channelID).SetExternalID("bl-low").SetTitle("t").SetContent("c").
		SetURL("https://example.test/bl/1").SetPublishedAt(time.Now()).SetContentHash("bl-hash-1").
		SetMetadata(lowMeta.ToMap()).SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)
	highItem, err := client.Item.Create().
		SetChannelID(channelID).SetExternalID("bl-high").SetTitle("t").SetContent("c").
		SetURL("https://example.test/bl/2").SetPublishedAt(time.Now()).SetContentHash("bl-hash-2").
		SetMetadata(highMeta.ToMap()).SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	items := store.NewItems(client.Client)
	backlog, err := items.LLMBacklog(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, backlog)
	require.Equal(t, highItem.ID, backlog[0].ID, "high retry priority must sort ahead of low")
}

func TestLLMBacklog_SkipsCertainlyIrrelevantItems(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client)

	irrelevantMeta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.1}, RetryPriority: "low"}
	_, err := client.Item.Create().
		SetChannelID(channelID).SetExternalID("bl-none").SetTitle("t").SetContent("c").
		SetURL("https://example.test/bl/3").SetPublishedAt(time.Now()).SetContentHash("bl-hash-3").
		SetPriority("none").SetPriorityScore(20).
		SetMetadata(irrelevantMeta.ToMap()).SetNeedsLlmProcessing(false).
		Save(ctx)
	require.NoError(t, err)

	// An unclassified item must never surface either, regardless of its
	// needs_llm_processing flag.
	_, err = client.Item.Create().
		SetChannelID(channelID).SetExternalID("bl-unclassified").SetTitle("t").SetContent("c").
		SetURL("https://example.test/bl/4").SetPublishedAt(time.Now()).SetContentHash("bl-hash-4").
		SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	items := store.NewItems(client.Client)
	backlog, err := items.LLMBacklog(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, backlog)
}

func TestLLMBacklog_RelaxedBranchPicksRelevantItemsWithoutAK(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client)

	// Already analyzed (needs_llm=false, retry_priority low) but relevant and
	// still lacking a working-group assignment: the relaxed branch must
	// reselect it.
	meta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.3}, RetryPriority: "low"}
	it, err := client.Item.Create().
		SetChannelID(channelID).SetExternalID("bl-noak").SetTitle("t").SetContent("c").
		SetURL("https://example.test/bl/5").SetPublishedAt(time.Now()).SetContentHash("bl-hash-5").
		SetPriority("medium").SetPriorityScore(70).
		SetMetadata(meta.ToMap()).SetNeedsLlmProcessing(false).
		Save(ctx)
	require.NoError(t, err)

	items := store.NewItems(client.Client)
	backlog, err := items.LLMBacklog(ctx, 10)
	require.NoError(t, err)
	require.Len(t, backlog, 1)
	require.Equal(t, it.ID, backlog[0].ID)
}

func TestLLMBacklog_OldHighPriorityItemBeatsManyFresherRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client)

	// Thirty fresh eligible rows without a retry hint, then one high-retry
	// item fetched a month earlier: the derived ordering must still surface
	// the old high-priority item first, regardless of any batch size.
	plainMeta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.6}}
	for n := 0; n < 30; n++ {
		_, err := client.Item.Create().
			SetChannelID(channelID).SetExternalID(fmt.Sprintf("bl-fresh-%d", n)).
			SetTitle("t").SetContent("c").
			SetURL(fmt.Sprintf("https://example.test/bl/fresh/%d", n)).
			SetPublishedAt(time.Now()).SetContentHash(fmt.Sprintf("bl-fresh-hash-%d", n)).
			SetMetadata(plainMeta.ToMap()).SetNeedsLlmProcessing(true).
			Save(ctx)
		require.NoError(t, err)
	}

	highMeta := store.ItemMetadata{PreFilter: &store.PreFilter{RelevanceConfidence: 0.9}, RetryPriority: "high"}
	oldHigh, err := client.Item.Create().
		SetChannelID(channelID).SetExternalID("bl-old-high").
		SetTitle("t").SetContent("c").
		SetURL("https://example.test/bl/old-high").
		SetPublishedAt(time.Now().AddDate(0, -1, 0)).
		SetFetchedAt(time.Now().AddDate(0, -1, 0)).
		SetContentHash("bl-old-high-hash").
		SetMetadata(highMeta.ToMap()).SetNeedsLlmProcessing(true).
		Save(ctx)
	require.NoError(t, err)

	items := store.NewItems(client.Client)
	backlog, err := items.LLMBacklog(ctx, 5)
	require.NoError(t, err)
	require.Len(t, backlog, 5)
	require.Equal(t, oldHigh.ID, backlog[0].ID,
		"an old high-retry item must never be starved by fresher low-ranked rows")
}

func TestLinkDuplicate_RejectsForwardLinks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	channelID := seedChannel(t, client)

	older, err := client.Item.Create().
		SetChannelID(channelID).SetExternalID("fw-1").SetTitle("t").SetContent("c").
		SetURL("https://example.test/fw/1").SetPublishedAt(time.Now()).SetContentHash("fw-hash-1").
		Save(ctx)
	require.NoError(t, err)
	newer, err := client.Item.Create().
		SetChannelID(channelID).SetExternalID("fw-2").SetTitle("t").SetContent("c").
		SetURL("https://example.test/fw/2").SetPublishedAt(time.Now()).SetContentHash("fw-hash-2").
		Save(ctx)
	require.NoError(t, err)

	items := store.NewItems(client.Client)
	require.Error(t, items.LinkDuplicate(ctx, older.ID, newer.ID, "url_match", 0),
		"linking an older item forward to a newer one must be rejected")
	require.Error(t, items.LinkDuplicate(ctx, older.ID, older.ID, "url_match", 0),
		"self-links must be rejected")

	require.NoError(t, items.LinkDuplicate(ctx, newer.ID, older.ID, "url_match", 0))
	linked, err := items.Get(ctx, newer.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.SimilarToID)
	require.Equal(t, older.ID, *linked.SimilarToID)
	meta := store.MetadataFromMap(linked.Metadata)
	require.True(t, meta.DuplicateChecked)
	require.Equal(t, "url_match", meta.DuplicateMethod)
}
