package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports database reachability, connection-pool pressure, and
// the coarse ingestion counters the /health endpoint surfaces: how many
// items and enabled channels exist, how deep the LLM backlog is, and how
// many channels are currently failing their fetches.
type HealthStatus struct {
	Status          string        `json:"status"`
	ResponseTime    time.Duration `json:"response_time_ms"`
	OpenConnections int           `json:"open_connections"`
	InUse           int           `json:"in_use"`
	Idle            int           `json:"idle"`
	WaitCount       int64         `json:"wait_count"`
	MaxOpenConns    int           `json:"max_open_conns"`

	ItemCount           int64 `json:"item_count"`
	EnabledChannelCount int64 `json:"enabled_channel_count"`
	FailingChannelCount int64 `json:"failing_channel_count"`
	LLMBacklogCount     int64 `json:"llm_backlog_count"`
}

// Health checks database connectivity and gathers the pool statistics and
// ingestion counters. A failing counter query degrades that counter to -1
// rather than marking the whole check unhealthy — reachability is the
// health signal, the counters are operator context.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start),
		}, err
	}

	stats := db.Stats()
	h := &HealthStatus{
		Status:          "healthy",
		ResponseTime:    time.Since(start),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		MaxOpenConns:    stats.MaxOpenConnections,
	}

	h.ItemCount = countRow(ctx, db,
		`SELECT COUNT(*) FROM items WHERE deleted_at IS NULL`)
	h.EnabledChannelCount = countRow(ctx, db,
		`SELECT COUNT(*) FROM channels WHERE enabled`)
	h.FailingChannelCount = countRow(ctx, db,
		`SELECT COUNT(*) FROM channels WHERE enabled AND last_error IS NOT NULL`)
	h.LLMBacklogCount = countRow(ctx, db,
		`SELECT COUNT(*) FROM items WHERE deleted_at IS NULL AND needs_llm_processing`)

	return h, nil
}

func countRow(ctx context.Context, db *sql.DB, query string) int64 {
	var n int64
	if err := db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return -1
	}
	return n
}
