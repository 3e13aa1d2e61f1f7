package database

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/liga-hessen/news-aggregator/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client against a real Postgres
// container, using Ent's auto-migration instead of the embedded SQL files
// (keeps the test independent of the golang-migrate source path).
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	db := drv.DB()
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(drv))

	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateSupportingIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.Equal(t, int64(0), health.ItemCount)
	assert.Equal(t, int64(0), health.EnabledChannelCount)
	assert.Equal(t, int64(0), health.LLMBacklogCount)

	source, err := client.Source.Create().SetName("Ministry").Save(ctx)
	require.NoError(t, err)
	_, err = client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://example.test/health.xml").
		Save(ctx)
	require.NoError(t, err)

	health, err = Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, int64(1), health.EnabledChannelCount)
	assert.Equal(t, int64(0), health.FailingChannelCount)
}

func TestMetadataJSONBFilter(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	source, err := client.Source.Create().SetName("Test Ministry").Save(ctx)
	require.NoError(t, err)

	channel, err := client.Channel.Create().
		SetSource(source).
		SetConnectorType("web-feed").
		SetSourceIdentifier("https://example.test/feed.xml").
		Save(ctx)
	require.NoError(t, err)

	classified, err := client.Item.Create().
		SetChannel(channel).
		SetExternalID("item-1").
		SetTitle("Classified item").
		SetContent("body").
		SetURL("https://example.test/1").
		SetPublishedAt(time.Now()).
		SetContentHash("hash1").
		SetMetadata(map[string]interface{}{"pre_filter": map[string]interface{}{"confidence": 0.8}}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Item.Create().
		SetChannel(channel).
		SetExternalID("item-2").
		SetTitle("Unclassified item").
		SetContent("body").
		SetURL("https://example.test/2").
		SetPublishedAt(time.Now()).
		SetContentHash("hash2").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT id FROM items WHERE metadata -> 'pre_filter' IS NOT NULL`)
	require.NoError(t, err)
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	assert.Equal(t, []int{classified.ID}, ids)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5,
			},
			wantErr: false,
		},
		{
			name: "missing password",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "",
				Database: "test", MaxOpenConns: 10, MaxIdleConns: 5,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", MaxOpenConns: 5, MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", MaxOpenConns: 0, MaxIdleConns: 0,
			},
			wantErr: true,
		},
		{
			name: "negative idle conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", MaxOpenConns: 10, MaxIdleConns: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
