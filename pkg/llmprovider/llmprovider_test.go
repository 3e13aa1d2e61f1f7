package llmprovider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name      string
	response  Response
	err       error
	available bool
}

func (s stubProvider) Name() string { return s.name }

func (s stubProvider) Complete(ctx context.Context, prompt, system string, temperature float64, maxTokens int) (Response, error) {
	return s.response, s.err
}

func (s stubProvider) Chat(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (Response, error) {
	return s.response, s.err
}

func (s stubProvider) IsAvailable(ctx context.Context) bool { return s.available }

func TestNewService_RequiresAtLeastOneProvider(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)
}

func TestService_Complete_FallsBackToSecondProvider(t *testing.T) {
	primary := stubProvider{name: "ollama", err: errors.New("connection refused")}
	fallback := stubProvider{name: "openrouter", response: Response{Text: "ok", Model: "m"}}

	svc, err := NewService([]Provider{primary, fallback}, nil)
	require.NoError(t, err)

	resp, err := svc.Complete(context.Background(), "prompt", "", 0.1, 100)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}

func TestService_Complete_AllProvidersFail(t *testing.T) {
	primary := stubProvider{name: "ollama", err: errors.New("down")}
	fallback := stubProvider{name: "openrouter", err: errors.New("no key")}

	svc, err := NewService([]Provider{primary, fallback}, nil)
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), "prompt", "", 0.1, 100)
	require.Error(t, err)
	var allFailed *AllProvidersFailedError
	require.ErrorAs(t, err, &allFailed)
	assert.Len(t, allFailed.Errors, 2)
}

func TestService_FirstAvailable(t *testing.T) {
	primary := stubProvider{name: "ollama", available: false}
	fallback := stubProvider{name: "openrouter", available: true}

	svc, err := NewService([]Provider{primary, fallback}, nil)
	require.NoError(t, err)

	p := svc.FirstAvailable(context.Background())
	require.NotNil(t, p)
	assert.Equal(t, "openrouter", p.Name())
}
