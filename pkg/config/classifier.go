package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ClassifierConfig configures the HTTP client for the external embedding
// classifier / vector-store service (/classify, /find-duplicates,
// /index-batch, /delete, /all-indexed-ids, /health, /storage-stats).
type ClassifierConfig struct {
	BaseURL            string
	RequestTimeout     time.Duration
	DuplicateThreshold float64
	DailySyncThreshold int

	// DuplicateCutoffDays bounds the duplicate-recheck scan to items fetched
	// within the last N days; 0 disables the cutoff.
	DuplicateCutoffDays int
}

// DefaultClassifierConfig returns the classifier client defaults: 30s call
// timeout, 0.75 cosine threshold for near-duplicates, a 50-item daily-sync
// delta before it is treated as a drift worth alerting, and a 30-day
// duplicate-recheck window.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		BaseURL:             "http://localhost:8001",
		RequestTimeout:      30 * time.Second,
		DuplicateThreshold:  0.75,
		DailySyncThreshold:  50,
		DuplicateCutoffDays: 30,
	}
}

// LoadClassifierConfigFromEnv loads classifier-service configuration from
// environment variables, falling back to DefaultClassifierConfig.
func LoadClassifierConfigFromEnv() (ClassifierConfig, error) {
	cfg := DefaultClassifierConfig()

	if v := os.Getenv("CLASSIFIER_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CLASSIFIER_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return ClassifierConfig{}, fmt.Errorf("invalid CLASSIFIER_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("CLASSIFIER_DUPLICATE_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return ClassifierConfig{}, fmt.Errorf("invalid CLASSIFIER_DUPLICATE_THRESHOLD: %w", err)
		}
		cfg.DuplicateThreshold = f
	}
	if v := os.Getenv("CLASSIFIER_DAILY_SYNC_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ClassifierConfig{}, fmt.Errorf("invalid CLASSIFIER_DAILY_SYNC_THRESHOLD: %w", err)
		}
		cfg.DailySyncThreshold = n
	}
	if v := os.Getenv("CLASSIFIER_DUPLICATE_CUTOFF_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ClassifierConfig{}, fmt.Errorf("invalid CLASSIFIER_DUPLICATE_CUTOFF_DAYS: %w", err)
		}
		cfg.DuplicateCutoffDays = n
	}

	if cfg.BaseURL == "" {
		return ClassifierConfig{}, fmt.Errorf("CLASSIFIER_BASE_URL must not be empty")
	}

	return cfg, nil
}
