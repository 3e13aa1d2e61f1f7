package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePage = `<html><body>
<div class="news-item"><h2><a href="/article/1">Headline one</a></h2><p class="body">Summary one</p></div>
<div class="news-item"><h2><a href="/article/2">Headline two</a></h2><p class="body">Summary two</p></div>
</body></html>`

func TestHTMLConnector_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	conn := NewHTMLConnector()
	items, err := conn.Fetch(context.Background(), map[string]interface{}{
		"url":              srv.URL,
		"item_selector":    ".news-item",
		"title_selector":   "h2",
		"content_selector": ".body",
		"link_selector":    "h2 a",
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Headline one", items[0].Title)
	require.Equal(t, "Summary one", items[0].Content)
	require.Equal(t, srv.URL+"/article/1", items[0].URL)
}

func TestHTMLConnector_Validate_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	conn := NewHTMLConnector()
	ok, msg := conn.Validate(context.Background(), map[string]interface{}{
		"url":           srv.URL,
		"item_selector": ".does-not-exist",
	})
	require.False(t, ok)
	require.Contains(t, msg, "matched no elements")
}
