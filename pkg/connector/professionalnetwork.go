package connector

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ProfessionalNetworkConnector scrapes public posts from a company or
// personal profile page with a plain unauthenticated HTTP fetch of the
// public profile HTML. It sees far less than a logged-in feed would, but
// needs no browser binary and keeps the connector interface uniform.
type ProfessionalNetworkConnector struct {
	httpClient *http.Client
}

// NewProfessionalNetworkConnector constructs a ProfessionalNetworkConnector.
func NewProfessionalNetworkConnector() *ProfessionalNetworkConnector {
	return &ProfessionalNetworkConnector{httpClient: &http.Client{Timeout: 30 * time.Second}}
}

func normalizeProfileURL(raw string) (string, error) {
	v := strings.TrimSpace(strings.TrimSuffix(raw, "/"))
	if !strings.HasPrefix(v, "http") {
		v = "https://" + v
	}
	v = strings.Replace(v, "www.linkedin.com", "linkedin.com", 1)
	if !strings.Contains(v, "linkedin.com") {
		return "", fmt.Errorf("profile_url must be a LinkedIn URL, got %q", raw)
	}
	return v, nil
}

func (c *ProfessionalNetworkConnector) fetch(ctx context.Context, profileURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; NewsAggregator/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", profileURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned HTTP %d (LinkedIn blocks most unauthenticated scraping)", profileURL, resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// Fetch extracts whatever public post summaries are present in the
// server-rendered profile HTML.
func (c *ProfessionalNetworkConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	rawURL, err := stringField(config, "profile_url")
	if err != nil {
		return nil, err
	}
	profileURL, err := normalizeProfileURL(rawURL)
	if err != nil {
		return nil, err
	}
	maxPosts := intFieldOr(config, "max_posts", 10)

	doc, err := c.fetch(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	var items []RawItem
	doc.Find("[data-urn*='activity']").Each(func(_ int, post *goquery.Selection) {
		if len(items) >= maxPosts {
			return
		}
		text := strings.TrimSpace(post.Text())
		if text == "" {
			return
		}
		urn, _ := post.Attr("data-urn")
		title := text
		if len(title) > 120 {
			title = title[:120] + "…"
		}
		items = append(items, RawItem{
			ExternalID: urn,
			Title:      title,
			Content:    text,
			URL:        profileURL,
		})
	})
	return items, nil
}

// Validate confirms the profile URL is well-formed and reachable.
func (c *ProfessionalNetworkConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	rawURL, err := stringField(config, "profile_url")
	if err != nil {
		return false, err.Error()
	}
	profileURL, err := normalizeProfileURL(rawURL)
	if err != nil {
		return false, err.Error()
	}
	if _, err := c.fetch(ctx, profileURL); err != nil {
		return false, err.Error()
	}
	return true, fmt.Sprintf("profile %s reachable", profileURL)
}
