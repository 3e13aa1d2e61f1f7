package connector

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PhotoNetworkConnector follows photo-sharing accounts through a public
// viewer-proxy service (picuki.com/picnob.com/imginn.com-style mirrors
// that need no authenticated API access). Proxies of this kind are
// unreliable by nature; Validate surfaces failures plainly rather than
// retrying.
type PhotoNetworkConnector struct {
	httpClient *http.Client
}

// NewPhotoNetworkConnector constructs a PhotoNetworkConnector.
func NewPhotoNetworkConnector() *PhotoNetworkConnector {
	return &PhotoNetworkConnector{httpClient: &http.Client{Timeout: 30 * time.Second}}
}

func proxyProfileURL(proxyInstance, username string) string {
	switch proxyInstance {
	case "picnob.com":
		return fmt.Sprintf("https://www.picnob.com/profile/%s/", username)
	case "imginn.com":
		return fmt.Sprintf("https://imginn.com/%s/", username)
	default:
		return fmt.Sprintf("https://www.picuki.com/profile/%s", username)
	}
}

func (c *PhotoNetworkConnector) fetchProfile(ctx context.Context, profileURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "NewsAggregator/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", profileURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy %s returned HTTP %d (viewer proxies are frequently blocked)", profileURL, resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// Fetch scrapes recent posts from the configured viewer proxy.
func (c *PhotoNetworkConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	username, err := stringField(config, "username")
	if err != nil {
		return nil, err
	}
	username = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
	proxyInstance := stringFieldOr(config, "proxy_instance", "picuki.com")
	maxPosts := intFieldOr(config, "max_posts", 20)

	profileURL := proxyProfileURL(proxyInstance, username)
	doc, err := c.fetchProfile(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	var items []RawItem
	doc.Find(".box-photos .box-photo").Each(func(_ int, post *goquery.Selection) {
		if len(items) >= maxPosts {
			return
		}
		link := post.Find("a").First()
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}
		caption := strings.TrimSpace(post.Find("img").First().AttrOr("alt", ""))
		title := caption
		if title == "" {
			title = fmt.Sprintf("%s post", username)
		}
		if len(title) > 120 {
			title = title[:120] + "…"
		}

		items = append(items, RawItem{
			ExternalID: hashString(href),
			Title:      title,
			Content:    caption,
			URL:        href,
			Author:     username,
		})
	})
	return items, nil
}

// Validate confirms the proxy profile page resolves and exposes posts.
func (c *PhotoNetworkConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	username, err := stringField(config, "username")
	if err != nil {
		return false, err.Error()
	}
	proxyInstance := stringFieldOr(config, "proxy_instance", "picuki.com")
	profileURL := proxyProfileURL(proxyInstance, strings.ToLower(strings.TrimPrefix(username, "@")))

	doc, err := c.fetchProfile(ctx, profileURL)
	if err != nil {
		return false, err.Error()
	}
	count := doc.Find(".box-photos .box-photo").Length()
	return true, fmt.Sprintf("proxy profile resolved with %d visible posts", count)
}
