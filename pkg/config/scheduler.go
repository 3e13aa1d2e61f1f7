package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// SchedulerConfig tunes the ingestion scheduler's polling cadence and
// concurrency cap across channels.
type SchedulerConfig struct {
	TickInterval       time.Duration
	MaxConcurrentFetch int
	FetchTimeout       time.Duration
}

// DefaultSchedulerConfig returns production-ready scheduler defaults.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		TickInterval:       time.Minute,
		MaxConcurrentFetch: 5,
		FetchTimeout:       2 * time.Minute,
	}
}

// LoadSchedulerConfigFromEnv loads scheduler configuration from environment
// variables, falling back to DefaultSchedulerConfig for anything unset.
func LoadSchedulerConfigFromEnv() (SchedulerConfig, error) {
	cfg := DefaultSchedulerConfig()

	if v := os.Getenv("SCHEDULER_TICK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_TICK_INTERVAL: %w", err)
		}
		cfg.TickInterval = d
	}

	if v := os.Getenv("SCHEDULER_MAX_CONCURRENT_FETCH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_MAX_CONCURRENT_FETCH: %w", err)
		}
		cfg.MaxConcurrentFetch = n
	}

	if v := os.Getenv("SCHEDULER_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}

	if cfg.MaxConcurrentFetch < 1 {
		return SchedulerConfig{}, fmt.Errorf("SCHEDULER_MAX_CONCURRENT_FETCH must be at least 1")
	}

	return cfg, nil
}
