package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// RetentionConfig tunes the housekeeping pass that purges stale events and
// soft-deletes archived items past their retention window.
type RetentionConfig struct {
	ItemEventRetentionDays int
	LogRetentionDays       int
	CleanupInterval        time.Duration
}

// DefaultRetentionConfig returns production-ready retention defaults.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		ItemEventRetentionDays: 90,
		LogRetentionDays:       30,
		CleanupInterval:        24 * time.Hour,
	}
}

// LoadRetentionConfigFromEnv loads retention configuration from environment
// variables, falling back to DefaultRetentionConfig.
func LoadRetentionConfigFromEnv() (RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	if v := os.Getenv("RETENTION_ITEM_EVENT_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return RetentionConfig{}, fmt.Errorf("invalid RETENTION_ITEM_EVENT_DAYS: %w", err)
		}
		cfg.ItemEventRetentionDays = n
	}
	if v := os.Getenv("RETENTION_LOG_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return RetentionConfig{}, fmt.Errorf("invalid RETENTION_LOG_DAYS: %w", err)
		}
		cfg.LogRetentionDays = n
	}
	if v := os.Getenv("RETENTION_CLEANUP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return RetentionConfig{}, fmt.Errorf("invalid RETENTION_CLEANUP_INTERVAL: %w", err)
		}
		cfg.CleanupInterval = d
	}

	return cfg, nil
}
