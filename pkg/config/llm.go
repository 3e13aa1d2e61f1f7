package config

import (
	"fmt"
	"os"
	"strconv"
)

// LLMProviderConfig describes one entry in the ordered fallback chain of
// LLM providers consulted by the LLM worker.
type LLMProviderConfig struct {
	Name    string
	BaseURL string
	APIKey  string
	Model   string
}

// LLMConfig is the ordered provider chain plus shared call tuning.
type LLMConfig struct {
	Providers      []LLMProviderConfig
	Temperature    float64
	MaxTokens      int
	RequestTimeout string // parsed by callers via time.ParseDuration
}

// LoadLLMConfigFromEnv builds the provider chain from LLM_PROVIDER_1..N style
// environment variables. At least a local/primary provider is expected; an
// empty chain is valid and simply means classification-only operation until
// LLM_PROVIDER_1_BASE_URL is configured.
func LoadLLMConfigFromEnv() (LLMConfig, error) {
	cfg := LLMConfig{
		Temperature:    0.3,
		MaxTokens:      2048,
		RequestTimeout: "90s",
	}

	for i := 1; ; i++ {
		prefix := fmt.Sprintf("LLM_PROVIDER_%d", i)
		name := os.Getenv(prefix + "_NAME")
		baseURL := os.Getenv(prefix + "_BASE_URL")
		if name == "" && baseURL == "" {
			break
		}
		if name == "" || baseURL == "" {
			return LLMConfig{}, fmt.Errorf("%s_NAME and %s_BASE_URL must both be set", prefix, prefix)
		}
		cfg.Providers = append(cfg.Providers, LLMProviderConfig{
			Name:    name,
			BaseURL: baseURL,
			APIKey:  os.Getenv(prefix + "_API_KEY"),
			Model:   os.Getenv(prefix + "_MODEL"),
		})
	}

	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return LLMConfig{}, fmt.Errorf("invalid LLM_MAX_TOKENS: %w", err)
		}
		cfg.MaxTokens = n
	}

	return cfg, nil
}
