package connector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnector struct{}

func (fakeConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	return nil, nil
}

func (fakeConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	return true, "ok"
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("web-feed", fakeConnector{})

	c, err := r.Get("web-feed")
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestRegistry_GetUnknownType(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("does-not-exist")
	require.Error(t, err)
}

func TestRegistry_RegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register("web-feed", fakeConnector{})
	r.Register("web-feed", fakeConnector{})
	assert.Len(t, r.Types(), 1)
}

func TestNewDefaultRegistry_CoversAllConnectorTypes(t *testing.T) {
	r := NewDefaultRegistry()
	for _, ct := range []string{
		"web-feed", "web-feed-variant", "html-scrape", "document-page",
		"social-a", "social-b", "messaging-channel",
		"professional-network", "photo-network",
	} {
		_, err := r.Get(ct)
		assert.NoError(t, err, "connector type %q should be registered", ct)
	}
}
