package connector

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedConnector fetches RSS/Atom feeds, serving both the web-feed
// connector type and web-feed-variant (Google Alerts delivers a standard
// Atom feed, so it reuses the same parsing path).
type FeedConnector struct {
	httpClient *http.Client
	parser     *gofeed.Parser
}

// NewFeedConnector constructs a FeedConnector.
func NewFeedConnector() *FeedConnector {
	client := &http.Client{Timeout: 30 * time.Second}
	parser := gofeed.NewParser()
	parser.Client = client
	return &FeedConnector{httpClient: client, parser: parser}
}

// Fetch retrieves and normalizes every entry in the configured feed.
func (c *FeedConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	feedURL, err := stringField(config, "url")
	if err != nil {
		return nil, err
	}

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", feedURL, err)
	}

	items := make([]RawItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		externalID := entry.GUID
		if externalID == "" {
			externalID = entry.Link
		}

		content := entry.Content
		if content == "" {
			content = entry.Description
		}

		author := ""
		if entry.Author != nil {
			author = entry.Author.Name
		} else if len(entry.Authors) > 0 {
			author = entry.Authors[0].Name
		}

		var publishedAt *time.Time
		if entry.PublishedParsed != nil {
			publishedAt = entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			publishedAt = entry.UpdatedParsed
		}

		items = append(items, RawItem{
			ExternalID:  externalID,
			Title:       entry.Title,
			Content:     content,
			URL:         entry.Link,
			Author:      author,
			PublishedAt: publishedAt,
			Metadata:    map[string]interface{}{"feed_title": feed.Title},
		})
	}
	return items, nil
}

// Validate confirms the feed URL is reachable and parses as RSS/Atom.
func (c *FeedConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	feedURL, err := stringField(config, "url")
	if err != nil {
		return false, err.Error()
	}
	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return false, fmt.Sprintf("could not parse feed: %v", err)
	}
	return true, fmt.Sprintf("feed %q resolved with %d items", feed.Title, len(feed.Items))
}
