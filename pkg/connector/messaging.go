package connector

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// MessagingConnector scrapes a public messaging-channel preview page (the
// unauthenticated t.me/s/{channel} web preview works for any public
// channel without a bot token).
type MessagingConnector struct {
	httpClient *http.Client
}

const messagingUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// NewMessagingConnector constructs a MessagingConnector.
func NewMessagingConnector() *MessagingConnector {
	return &MessagingConnector{httpClient: &http.Client{Timeout: 30 * time.Second}}
}

func (c *MessagingConnector) fetchPreview(ctx context.Context, channel string) (*goquery.Document, error) {
	channel = normalizeChannelHandle(channel)
	previewURL := fmt.Sprintf("https://t.me/s/%s", channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, previewURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", messagingUserAgent)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", previewURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned HTTP %d", previewURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing preview page: %w", err)
	}
	if doc.Find(".tgme_page_icon_error").Length() > 0 {
		return nil, fmt.Errorf("channel %q not found", channel)
	}
	return doc, nil
}

func normalizeChannelHandle(v string) string {
	v = strings.TrimSpace(v)
	if idx := strings.Index(v, "t.me/"); idx != -1 {
		v = v[idx+len("t.me/"):]
		v = strings.SplitN(v, "/", 2)[0]
	}
	return strings.ToLower(strings.TrimPrefix(v, "@"))
}

// Fetch extracts posts from the public channel preview, most recent first.
func (c *MessagingConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	channel, err := stringField(config, "channel")
	if err != nil {
		return nil, err
	}
	maxPosts := intFieldOr(config, "max_posts", 20)
	includeForwards := boolFieldOr(config, "include_forwards", true)

	doc, err := c.fetchPreview(ctx, channel)
	if err != nil {
		return nil, err
	}

	var items []RawItem
	doc.Find(".tgme_widget_message_wrap").Each(func(_ int, wrap *goquery.Selection) {
		if len(items) >= maxPosts {
			return
		}
		msg := wrap.Find(".tgme_widget_message").First()
		if msg.Length() == 0 {
			return
		}
		if !includeForwards && msg.Find(".tgme_widget_message_forwarded_from").Length() > 0 {
			return
		}

		dateLink := msg.Find(".tgme_widget_message_date").First()
		msgURL, _ := dateLink.Attr("href")
		if msgURL == "" {
			return
		}

		text := strings.TrimSpace(msg.Find(".tgme_widget_message_text").First().Text())
		if text == "" {
			return
		}
		title := text
		if len(title) > 120 {
			title = title[:120] + "…"
		}

		externalID := msgURL
		if idx := strings.LastIndex(msgURL, "/"); idx != -1 {
			externalID = msgURL[idx+1:]
		}

		items = append(items, RawItem{
			ExternalID: externalID,
			Title:      title,
			Content:    text,
			URL:        msgURL,
		})
	})
	return items, nil
}

// Validate confirms the public channel preview exists and resolves.
func (c *MessagingConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	channel, err := stringField(config, "channel")
	if err != nil {
		return false, err.Error()
	}
	doc, err := c.fetchPreview(ctx, channel)
	if err != nil {
		return false, err.Error()
	}
	count := doc.Find(".tgme_widget_message_wrap").Length()
	return true, fmt.Sprintf("channel preview resolved with %d visible posts", count)
}
