package retention

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/liga-hessen/news-aggregator/pkg/store"
	testdb "github.com/liga-hessen/news-aggregator/test/database"
)

func TestPurge_RemovesOnlyRowsOlderThanRetentionWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	source, err := client.Source.Create().SetName("Ministry").Save(ctx)
	require.NoError(t, err)
	channel, err := client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://example.test/retention.xml").
		Save(ctx)
	require.NoError(t, err)
	it, err := client.Item.Create().
		SetChannelID(channel.ID).
		SetExternalID("retention-1").
		SetTitle("t").
		SetContent("c").
		SetURL("https://example.test/retention/1").
		SetPublishedAt(time.Now()).
		SetContentHash("retention-hash-1").
		Save(ctx)
	require.NoError(t, err)

	old, err := client.ItemEvent.Create().
		SetItemID(it.ID).
		SetEventType("read").
		SetTimestamp(time.Now().AddDate(0, 0, -120)).
		Save(ctx)
	require.NoError(t, err)
	recent, err := client.ItemEvent.Create().
		SetItemID(it.ID).
		SetEventType("star").
		SetTimestamp(time.Now().AddDate(0, 0, -1)).
		Save(ctx)
	require.NoError(t, err)

	repo := store.NewRetention(client.Client)
	cutoff := time.Now().AddDate(0, 0, -90)
	n, err := repo.PurgeItemEvents(ctx, cutoff)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = client.ItemEvent.Get(ctx, old.ID)
	require.Error(t, err)
	_, err = client.ItemEvent.Get(ctx, recent.ID)
	require.NoError(t, err)
}
