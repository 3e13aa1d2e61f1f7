// Package classifier is the HTTP client for the external embedding
// classifier / vector-store service.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the external classifier/vector-store service over plain
// HTTP/JSON. It has no direct dependency on the item store: callers
// translate its responses into store writes.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a Client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// ClassifyRequest is the /classify request body.
type ClassifyRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

// ClassifyResult is the /classify response shape.
type ClassifyResult struct {
	Relevant            bool    `json:"relevant"`
	RelevanceConfidence float64 `json:"relevance_confidence"`
	Priority            string  `json:"priority"`
	PriorityConfidence  float64 `json:"priority_confidence"`
	AK                  string  `json:"ak"`
	AKConfidence        float64 `json:"ak_confidence"`
}

// Classify calls POST /classify.
func (c *Client) Classify(ctx context.Context, req ClassifyRequest) (ClassifyResult, error) {
	var out ClassifyResult
	if err := c.postJSON(ctx, "/classify", req, &out); err != nil {
		return ClassifyResult{}, fmt.Errorf("classify: %w", err)
	}
	return out, nil
}

// DuplicateCandidate is one hit returned by /find-duplicates.
type DuplicateCandidate struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

type findDuplicatesRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Threshold float64 `json:"threshold"`
}

// FindDuplicates calls POST /find-duplicates, returning candidates ordered
// by descending similarity score as the service returns them.
func (c *Client) FindDuplicates(ctx context.Context, title, content string, threshold float64) ([]DuplicateCandidate, error) {
	var out []DuplicateCandidate
	req := findDuplicatesRequest{Title: title, Content: content, Threshold: threshold}
	if err := c.postJSON(ctx, "/find-duplicates", req, &out); err != nil {
		return nil, fmt.Errorf("find-duplicates: %w", err)
	}
	return out, nil
}

// IndexDoc is one entry in an /index-batch request.
type IndexDoc struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type indexBatchResponse struct {
	Added int `json:"added"`
}

// IndexBatch calls POST /index-batch. Re-indexing an id already present
// is idempotent on the service side, so callers never need to check
// existence first.
func (c *Client) IndexBatch(ctx context.Context, docs []IndexDoc) (int, error) {
	var out indexBatchResponse
	if err := c.postJSON(ctx, "/index-batch", docs, &out); err != nil {
		return 0, fmt.Errorf("index-batch: %w", err)
	}
	return out.Added, nil
}

type deleteResponse struct {
	DeletedSearch int `json:"deleted_search"`
	DeletedDup    int `json:"deleted_dup"`
}

// Delete calls POST /delete for the given ids, returning how many entries
// were removed from each of the service's two internal indexes.
func (c *Client) Delete(ctx context.Context, ids []string) (deletedSearch, deletedDup int, err error) {
	var out deleteResponse
	if err := c.postJSON(ctx, "/delete", ids, &out); err != nil {
		return 0, 0, fmt.Errorf("delete: %w", err)
	}
	return out.DeletedSearch, out.DeletedDup, nil
}

// AllIndexedIDs calls GET /all-indexed-ids, used by the classifier worker's
// daily reconciliation pass.
func (c *Client) AllIndexedIDs(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, "/all-indexed-ids", &out); err != nil {
		return nil, fmt.Errorf("all-indexed-ids: %w", err)
	}
	return out, nil
}

// HealthStatus is the /health response shape.
type HealthStatus struct {
	SearchIndexItems    int `json:"search_index_items"`
	DuplicateIndexItems int `json:"duplicate_index_items"`
}

// Health calls GET /health, with a short 5s timeout independent of the
// client's configured RequestTimeout.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var out HealthStatus
	if err := c.getJSON(ctx, "/health", &out); err != nil {
		return HealthStatus{}, fmt.Errorf("health: %w", err)
	}
	return out, nil
}

// StorageStats is the /storage-stats response shape. Fields beyond what the
// core consumes round-trip as opaque JSON.
type StorageStats struct {
	Raw map[string]interface{}
}

// StorageStats calls GET /storage-stats.
func (c *Client) StorageStats(ctx context.Context) (StorageStats, error) {
	var raw map[string]interface{}
	if err := c.getJSON(ctx, "/storage-stats", &raw); err != nil {
		return StorageStats{}, fmt.Errorf("storage-stats: %w", err)
	}
	return StorageStats{Raw: raw}, nil
}

// IsAvailable reports whether the classifier service answers its health
// endpoint, used as the ingestion pipeline's synchronous-classify gate;
// when offline the classifier worker catches up later.
func (c *Client) IsAvailable(ctx context.Context) bool {
	_, err := c.Health(ctx)
	return err == nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling classifier service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("classifier service returned HTTP %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
