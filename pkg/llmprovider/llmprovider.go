// Package llmprovider provides ordered-fallback access to one or more LLM
// backends for item summarization, relevance analysis, and semantic rule
// checks.
package llmprovider

import (
	"context"
	"fmt"
	"log/slog"
)

// Response is what a Provider returns for one completion.
type Response struct {
	Text             string
	Model            string
	TokensUsed       int
	PromptTokens     int
	CompletionTokens int
}

// ChatMessage is one turn in a chat-style request.
type ChatMessage struct {
	Role    string
	Content string
}

// Provider is the interface every backend (Ollama, OpenRouter, ...) must
// implement.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt, system string, temperature float64, maxTokens int) (Response, error)
	Chat(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (Response, error)
	IsAvailable(ctx context.Context) bool
}

// AllProvidersFailedError aggregates the per-provider failures from one
// Service call so the caller (and its logs) can see every attempt.
type AllProvidersFailedError struct {
	Op     string
	Errors []string
}

func (e *AllProvidersFailedError) Error() string {
	return fmt.Sprintf("all LLM providers failed (%s): %v", e.Op, e.Errors)
}

// Service tries its providers in order, falling back to the next on any
// failure; typically a local Ollama instance as primary with OpenRouter as
// a cloud fallback.
type Service struct {
	providers []Provider
	logger    *slog.Logger
}

// NewService constructs a Service. providers must be non-empty.
func NewService(providers []Provider, logger *slog.Logger) (*Service, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("at least one LLM provider is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{providers: providers, logger: logger}, nil
}

// Complete generates a completion from the first provider that succeeds.
func (s *Service) Complete(ctx context.Context, prompt, system string, temperature float64, maxTokens int) (Response, error) {
	var errs []string
	for _, p := range s.providers {
		resp, err := p.Complete(ctx, prompt, system, temperature, maxTokens)
		if err != nil {
			s.logger.Warn("llm provider failed", "provider", p.Name(), "error", err)
			errs = append(errs, fmt.Sprintf("%s: %v", p.Name(), err))
			continue
		}
		s.logger.Debug("llm response", "provider", p.Name())
		return resp, nil
	}
	return Response{}, &AllProvidersFailedError{Op: "complete", Errors: errs}
}

// Chat generates a completion from a full message list, same fallback
// semantics as Complete.
func (s *Service) Chat(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (Response, error) {
	var errs []string
	for _, p := range s.providers {
		resp, err := p.Chat(ctx, messages, temperature, maxTokens)
		if err != nil {
			s.logger.Warn("llm provider chat failed", "provider", p.Name(), "error", err)
			errs = append(errs, fmt.Sprintf("%s: %v", p.Name(), err))
			continue
		}
		return resp, nil
	}
	return Response{}, &AllProvidersFailedError{Op: "chat", Errors: errs}
}

// CheckAvailability reports every provider's reachability.
func (s *Service) CheckAvailability(ctx context.Context) map[string]bool {
	result := make(map[string]bool, len(s.providers))
	for _, p := range s.providers {
		result[p.Name()] = p.IsAvailable(ctx)
	}
	return result
}

// FirstAvailable returns the first reachable provider, or nil.
func (s *Service) FirstAvailable(ctx context.Context) Provider {
	for _, p := range s.providers {
		if p.IsAvailable(ctx) {
			return p
		}
	}
	return nil
}
