package llmprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OllamaProvider talks to a local Ollama instance's /api/chat endpoint.
type OllamaProvider struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// NewOllamaProvider constructs an OllamaProvider.
func NewOllamaProvider(baseURL, model string, timeout time.Duration) *OllamaProvider {
	return &OllamaProvider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
	}
}

func (p *OllamaProvider) Name() string { return "ollama" }

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaRequest struct {
	Model    string              `json:"model"`
	Messages []ollamaChatMessage `json:"messages"`
	Stream   bool                `json:"stream"`
	Think    bool                `json:"think"`
	Options  ollamaOptions       `json:"options"`
}

type ollamaResponse struct {
	Message struct {
		Content  string `json:"content"`
		Thinking string `json:"thinking"`
	} `json:"message"`
	PromptEvalCount int `json:"prompt_eval_count"`
	EvalCount       int `json:"eval_count"`
}

func (p *OllamaProvider) doChat(ctx context.Context, messages []ollamaChatMessage, temperature float64, maxTokens int) (Response, error) {
	req := ollamaRequest{
		Model:    p.model,
		Messages: messages,
		Stream:   false,
		Think:    false, // disable qwen3 thinking mode so content is always populated
		Options:  ollamaOptions{Temperature: temperature},
	}
	if maxTokens > 0 {
		req.Options.NumPredict = maxTokens
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("encoding ollama request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("calling ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("ollama returned HTTP %d", resp.StatusCode)
	}

	var decoded ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Response{}, fmt.Errorf("decoding ollama response: %w", err)
	}

	content := decoded.Message.Content
	if content == "" && decoded.Message.Thinking != "" {
		return Response{}, fmt.Errorf("ollama returned empty content with thinking mode active")
	}

	return Response{
		Text:             content,
		Model:            p.model,
		PromptTokens:     decoded.PromptEvalCount,
		CompletionTokens: decoded.EvalCount,
		TokensUsed:       decoded.PromptEvalCount + decoded.EvalCount,
	}, nil
}

// Complete issues a single-turn completion, optionally with a system prompt.
func (p *OllamaProvider) Complete(ctx context.Context, prompt, system string, temperature float64, maxTokens int) (Response, error) {
	var messages []ollamaChatMessage
	if system != "" {
		messages = append(messages, ollamaChatMessage{Role: "system", Content: system})
	}
	messages = append(messages, ollamaChatMessage{Role: "user", Content: prompt})
	return p.doChat(ctx, messages, temperature, maxTokens)
}

// Chat issues a completion from a full message list.
func (p *OllamaProvider) Chat(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (Response, error) {
	converted := make([]ollamaChatMessage, len(messages))
	for i, m := range messages {
		converted[i] = ollamaChatMessage{Role: m.Role, Content: m.Content}
	}
	return p.doChat(ctx, converted, temperature, maxTokens)
}

// IsAvailable pings Ollama's tag-listing endpoint.
func (p *OllamaProvider) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
