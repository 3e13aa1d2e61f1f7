package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchedulerConfig(t *testing.T) {
	cfg := DefaultSchedulerConfig()

	assert.Equal(t, time.Minute, cfg.TickInterval)
	assert.Equal(t, 5, cfg.MaxConcurrentFetch)
	assert.Equal(t, 2*time.Minute, cfg.FetchTimeout)
}

func TestLoadSchedulerConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadSchedulerConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultSchedulerConfig(), cfg)
}

func TestLoadSchedulerConfigFromEnv_InvalidConcurrency(t *testing.T) {
	t.Setenv("SCHEDULER_MAX_CONCURRENT_FETCH", "0")
	_, err := LoadSchedulerConfigFromEnv()
	require.Error(t, err)
}

func TestLoadQueueConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("LLM_BATCH_SIZE", "25")
	cfg, err := LoadQueueConfigFromEnv("LLM", DefaultLLMQueueConfig())
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.BatchSize)
	assert.Equal(t, DefaultLLMQueueConfig().BacklogBatchSize, cfg.BacklogBatchSize)
}

func TestLoadGPUConfigFromEnv_DisabledByDefault(t *testing.T) {
	cfg, err := LoadGPUConfigFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestLoadGPUConfigFromEnv_RequiresSSHKey(t *testing.T) {
	t.Setenv("GPU_MAC_ADDRESS", "aa:bb:cc:dd:ee:ff")
	t.Setenv("GPU_HOST", "gpu1.internal")
	_, err := LoadGPUConfigFromEnv()
	require.Error(t, err)
}

func TestLoadLLMConfigFromEnv_ProviderChain(t *testing.T) {
	t.Setenv("LLM_PROVIDER_1_NAME", "local")
	t.Setenv("LLM_PROVIDER_1_BASE_URL", "http://gpu1.internal:8000")
	t.Setenv("LLM_PROVIDER_2_NAME", "fallback")
	t.Setenv("LLM_PROVIDER_2_BASE_URL", "https://api.example.test")
	t.Setenv("LLM_PROVIDER_2_API_KEY", "secret")

	cfg, err := LoadLLMConfigFromEnv()
	require.NoError(t, err)
	require.Len(t, cfg.Providers, 2)
	assert.Equal(t, "local", cfg.Providers[0].Name)
	assert.Equal(t, "fallback", cfg.Providers[1].Name)
	assert.Equal(t, "secret", cfg.Providers[1].APIKey)
}

func TestLoadLeaderConfigFromEnv_DefaultPodID(t *testing.T) {
	cfg, err := LoadLeaderConfigFromEnv()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.PodID)
}
