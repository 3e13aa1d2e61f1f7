package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Test Feed</title>
  <item>
    <title>First item</title>
    <link>https://example.org/first</link>
    <guid>https://example.org/first</guid>
    <description>First item body</description>
    <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
  </item>
</channel>
</rss>`

func TestFeedConnector_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	conn := NewFeedConnector()
	items, err := conn.Fetch(context.Background(), map[string]interface{}{"url": srv.URL})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "First item", items[0].Title)
	require.Equal(t, "https://example.org/first", items[0].URL)
	require.NotNil(t, items[0].PublishedAt)
}

func TestFeedConnector_Fetch_MissingURL(t *testing.T) {
	conn := NewFeedConnector()
	_, err := conn.Fetch(context.Background(), map[string]interface{}{})
	require.Error(t, err)
}

func TestFeedConnector_Validate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	conn := NewFeedConnector()
	ok, msg := conn.Validate(context.Background(), map[string]interface{}{"url": srv.URL})
	require.True(t, ok)
	require.NotEmpty(t, msg)
}
