package config

import (
	"fmt"
	"os"
	"time"
)

// LeaderConfig configures the filesystem-lock leader election and the
// worker_commands/worker_state/worker_stats polling cadence.
type LeaderConfig struct {
	LockFilePath string
	PodID        string
	PollInterval time.Duration
}

// DefaultLeaderConfig returns production-ready leader election defaults.
func DefaultLeaderConfig() LeaderConfig {
	return LeaderConfig{
		LockFilePath: "/var/run/news-aggregator/leader.lock",
		PollInterval: 5 * time.Second,
	}
}

// LoadLeaderConfigFromEnv loads leader-election configuration from
// environment variables.
func LoadLeaderConfigFromEnv() (LeaderConfig, error) {
	cfg := DefaultLeaderConfig()

	if v := os.Getenv("LEADER_LOCK_FILE"); v != "" {
		cfg.LockFilePath = v
	}
	if v := os.Getenv("LEADER_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return LeaderConfig{}, fmt.Errorf("invalid LEADER_POLL_INTERVAL: %w", err)
		}
		cfg.PollInterval = d
	}

	cfg.PodID = os.Getenv("POD_ID")
	if cfg.PodID == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return LeaderConfig{}, fmt.Errorf("POD_ID not set and hostname unavailable: %w", err)
		}
		cfg.PodID = hostname
	}

	return cfg, nil
}
