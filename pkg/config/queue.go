package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// QueueConfig tunes the classifier and LLM worker loops: fresh-queue
// capacity, backlog batch sizes, idle sleep, and error backoff.
type QueueConfig struct {
	FreshQueueCapacity int
	BatchSize          int
	BacklogBatchSize   int
	IdleSleep          time.Duration
	ErrorBackoffMin    time.Duration
	ErrorBackoffMax    time.Duration
	MaxConsecutiveErrs int
}

// DefaultClassifierQueueConfig returns the classifier worker's loop defaults.
func DefaultClassifierQueueConfig() QueueConfig {
	return QueueConfig{
		FreshQueueCapacity: 500,
		BatchSize:          20,
		BacklogBatchSize:   100,
		IdleSleep:          15 * time.Second,
		ErrorBackoffMin:    10 * time.Second,
		ErrorBackoffMax:    120 * time.Second,
		MaxConsecutiveErrs: 10,
	}
}

// DefaultLLMQueueConfig returns the LLM worker's loop defaults.
func DefaultLLMQueueConfig() QueueConfig {
	return QueueConfig{
		FreshQueueCapacity: 200,
		BatchSize:          10,
		BacklogBatchSize:   50,
		IdleSleep:          30 * time.Second,
		ErrorBackoffMin:    5 * time.Second,
		ErrorBackoffMax:    60 * time.Second,
		MaxConsecutiveErrs: 10,
	}
}

// LoadQueueConfigFromEnv loads one of the two worker queue configs from
// environment variables prefixed with the given worker name
// ("CLASSIFIER"/"LLM"), falling back to the supplied defaults.
func LoadQueueConfigFromEnv(prefix string, defaults QueueConfig) (QueueConfig, error) {
	cfg := defaults

	if v := os.Getenv(prefix + "_FRESH_QUEUE_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return QueueConfig{}, fmt.Errorf("invalid %s_FRESH_QUEUE_CAPACITY: %w", prefix, err)
		}
		cfg.FreshQueueCapacity = n
	}
	if v := os.Getenv(prefix + "_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return QueueConfig{}, fmt.Errorf("invalid %s_BATCH_SIZE: %w", prefix, err)
		}
		cfg.BatchSize = n
	}
	if v := os.Getenv(prefix + "_BACKLOG_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return QueueConfig{}, fmt.Errorf("invalid %s_BACKLOG_BATCH_SIZE: %w", prefix, err)
		}
		cfg.BacklogBatchSize = n
	}
	if v := os.Getenv(prefix + "_IDLE_SLEEP"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return QueueConfig{}, fmt.Errorf("invalid %s_IDLE_SLEEP: %w", prefix, err)
		}
		cfg.IdleSleep = d
	}

	if cfg.FreshQueueCapacity < 1 {
		return QueueConfig{}, fmt.Errorf("%s_FRESH_QUEUE_CAPACITY must be at least 1", prefix)
	}
	if cfg.BatchSize < 1 {
		return QueueConfig{}, fmt.Errorf("%s_BATCH_SIZE must be at least 1", prefix)
	}

	return cfg, nil
}
