package connector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// HTMLConnector scrapes news items out of an arbitrary web page using
// configurable CSS selectors.
type HTMLConnector struct {
	httpClient *http.Client
}

// NewHTMLConnector constructs an HTMLConnector.
func NewHTMLConnector() *HTMLConnector {
	return &HTMLConnector{httpClient: &http.Client{Timeout: 30 * time.Second}}
}

func (c *HTMLConnector) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "NewsAggregator/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned HTTP %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing html from %s: %w", pageURL, err)
	}
	return doc, nil
}

// Fetch extracts items matching item_selector from the configured page.
func (c *HTMLConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	pageURL, err := stringField(config, "url")
	if err != nil {
		return nil, err
	}
	itemSelector, err := stringField(config, "item_selector")
	if err != nil {
		return nil, err
	}
	titleSelector := stringFieldOr(config, "title_selector", "h2, h3, a")
	contentSelector := stringFieldOr(config, "content_selector", "")
	linkSelector := stringFieldOr(config, "link_selector", "")

	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	var items []RawItem
	doc.Find(itemSelector).Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find(titleSelector).First().Text())
		if title == "" {
			return
		}

		content := ""
		if contentSelector != "" {
			content = strings.TrimSpace(sel.Find(contentSelector).Text())
		}

		link := pageURL
		linkTarget := sel
		if linkSelector != "" {
			linkTarget = sel.Find(linkSelector).First()
		}
		if href, ok := linkTarget.Attr("href"); ok {
			if resolved, err := base.Parse(href); err == nil {
				link = resolved.String()
			}
		}

		externalID := hashString(link + title)
		items = append(items, RawItem{
			ExternalID: externalID,
			Title:      title,
			Content:    content,
			URL:        link,
		})
	})
	return items, nil
}

// Validate confirms the page responds and the item selector matches at
// least one element.
func (c *HTMLConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	pageURL, err := stringField(config, "url")
	if err != nil {
		return false, err.Error()
	}
	itemSelector, err := stringField(config, "item_selector")
	if err != nil {
		return false, err.Error()
	}
	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return false, err.Error()
	}
	count := doc.Find(itemSelector).Length()
	if count == 0 {
		return false, fmt.Sprintf("selector %q matched no elements", itemSelector)
	}
	return true, fmt.Sprintf("selector %q matched %d elements", itemSelector, count)
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
