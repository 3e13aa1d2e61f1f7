package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider accesses OpenRouter's OpenAI-compatible chat
// completions API as a cloud fallback behind a local Ollama instance.
// OpenRouter speaks the same wire format as OpenAI, so the
// request/response plumbing is delegated to go-openai rather than
// hand-rolled.
type OpenRouterProvider struct {
	client *openai.Client
	model  string
}

// NewOpenRouterProvider constructs an OpenRouterProvider.
func NewOpenRouterProvider(apiKey, model string, timeout time.Duration) *OpenRouterProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenRouterProvider{client: openai.NewClientWithConfig(cfg), model: model}
}

func (p *OpenRouterProvider) Name() string { return "openrouter" }

// Complete issues a single-turn chat completion.
func (p *OpenRouterProvider) Complete(ctx context.Context, prompt, system string, temperature float64, maxTokens int) (Response, error) {
	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})
	return p.doChat(ctx, messages, temperature, maxTokens)
}

// Chat issues a completion from a full message list.
func (p *OpenRouterProvider) Chat(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (Response, error) {
	converted := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		converted[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return p.doChat(ctx, converted, temperature, maxTokens)
}

func (p *OpenRouterProvider) doChat(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float64, maxTokens int) (Response, error) {
	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: float32(temperature),
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Response{}, fmt.Errorf("calling openrouter: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("openrouter returned no choices")
	}

	return Response{
		Text:             resp.Choices[0].Message.Content,
		Model:            resp.Model,
		TokensUsed:       resp.Usage.TotalTokens,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// IsAvailable issues a minimal completion request to confirm the API key
// and endpoint are working.
func (p *OpenRouterProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "ping"}},
		MaxTokens: 1,
	})
	return err == nil
}
