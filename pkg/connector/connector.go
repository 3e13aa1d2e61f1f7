// Package connector implements the closed set of source connectors a
// Channel can be configured with. Each connector normalizes its upstream
// format into RawItem for the ingestion pipeline.
package connector

import (
	"context"
	"time"
)

// RawItem is the normalized item format every connector returns, mirroring
// the fields the ingestion pipeline needs before content hashing and rule
// evaluation.
type RawItem struct {
	ExternalID  string
	Title       string
	Content     string
	URL         string
	Author      string
	PublishedAt *time.Time
	Metadata    map[string]interface{}
}

// Connector fetches and validates items for one connector_type.
type Connector interface {
	// Fetch retrieves items from the configured source. config is the
	// channel's raw JSON config blob.
	Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error)

	// Validate tests a candidate configuration (e.g. reachability of the
	// feed URL) without persisting anything.
	Validate(ctx context.Context, config map[string]interface{}) (bool, string)
}
