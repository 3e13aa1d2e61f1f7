package connector

import (
	"context"
	"fmt"
	"strings"
)

// SocialAConnector follows Bluesky-style accounts via the platform's
// native per-profile RSS feed (https://bsky.app/profile/{handle}/rss needs
// no auth).
type SocialAConnector struct {
	feeds *FeedConnector
}

// NewSocialAConnector constructs a SocialAConnector.
func NewSocialAConnector() *SocialAConnector {
	return &SocialAConnector{feeds: NewFeedConnector()}
}

func (c *SocialAConnector) rssConfig(config map[string]interface{}) (map[string]interface{}, error) {
	handle, err := stringField(config, "handle")
	if err != nil {
		return nil, err
	}
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	return map[string]interface{}{
		"url": fmt.Sprintf("https://bsky.app/profile/%s/rss", handle),
	}, nil
}

// Fetch delegates to the RSS parser against the account's native feed.
func (c *SocialAConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	rssConfig, err := c.rssConfig(config)
	if err != nil {
		return nil, err
	}
	return c.feeds.Fetch(ctx, rssConfig)
}

// Validate confirms the derived RSS feed resolves.
func (c *SocialAConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	rssConfig, err := c.rssConfig(config)
	if err != nil {
		return false, err.Error()
	}
	return c.feeds.Validate(ctx, rssConfig)
}

// SocialBConnector follows X/Twitter-style accounts through a
// configurable Nitter-style RSS-bridge proxy instance, so outages of any
// single public proxy only require a config change rather than a code
// change.
type SocialBConnector struct {
	feeds *FeedConnector
}

// NewSocialBConnector constructs a SocialBConnector.
func NewSocialBConnector() *SocialBConnector {
	return &SocialBConnector{feeds: NewFeedConnector()}
}

func (c *SocialBConnector) rssConfig(config map[string]interface{}) (map[string]interface{}, error) {
	username, err := stringField(config, "username")
	if err != nil {
		return nil, err
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	proxyInstance := stringFieldOr(config, "proxy_instance", "nitter.privacydev.net")
	return map[string]interface{}{
		"url": fmt.Sprintf("https://%s/%s/rss", proxyInstance, username),
	}, nil
}

// Fetch delegates to the RSS parser against the configured proxy instance.
func (c *SocialBConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	rssConfig, err := c.rssConfig(config)
	if err != nil {
		return nil, err
	}
	return c.feeds.Fetch(ctx, rssConfig)
}

// Validate confirms the proxy feed resolves.
func (c *SocialBConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	rssConfig, err := c.rssConfig(config)
	if err != nil {
		return false, err.Error()
	}
	return c.feeds.Validate(ctx, rssConfig)
}
