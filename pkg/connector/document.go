package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// DocumentConnector downloads a PDF and extracts its text content.
type DocumentConnector struct {
	httpClient *http.Client
}

// NewDocumentConnector constructs a DocumentConnector.
func NewDocumentConnector() *DocumentConnector {
	return &DocumentConnector{httpClient: &http.Client{Timeout: 60 * time.Second}}
}

func (c *DocumentConnector) download(ctx context.Context, docURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "NewsAggregator/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", docURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned HTTP %d", docURL, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Fetch downloads the configured PDF and returns a single RawItem holding
// its extracted text. is_direct_link=false (discovering PDF links from an
// HTML page first) is not supported.
func (c *DocumentConnector) Fetch(ctx context.Context, config map[string]interface{}) ([]RawItem, error) {
	docURL, err := stringField(config, "url")
	if err != nil {
		return nil, err
	}
	if !boolFieldOr(config, "is_direct_link", true) {
		return nil, fmt.Errorf("document-page connector: link extraction from HTML is not supported, is_direct_link must be true")
	}

	body, err := c.download(ctx, docURL)
	if err != nil {
		return nil, err
	}

	text, err := extractPDFText(body)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", docURL, err)
	}

	title := docURL
	if parts := strings.Split(docURL, "/"); len(parts) > 0 {
		title = parts[len(parts)-1]
	}

	return []RawItem{{
		ExternalID: hashString(docURL),
		Title:      title,
		Content:    text,
		URL:        docURL,
	}}, nil
}

func extractPDFText(body []byte) (string, error) {
	reader := bytes.NewReader(body)
	doc, err := pdf.NewReader(reader, int64(len(body)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Validate downloads the document and confirms it yields at least one page
// of extractable text.
func (c *DocumentConnector) Validate(ctx context.Context, config map[string]interface{}) (bool, string) {
	docURL, err := stringField(config, "url")
	if err != nil {
		return false, err.Error()
	}
	body, err := c.download(ctx, docURL)
	if err != nil {
		return false, err.Error()
	}
	text, err := extractPDFText(body)
	if err != nil {
		return false, fmt.Sprintf("could not parse pdf: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		return false, "pdf contained no extractable text"
	}
	return true, fmt.Sprintf("extracted %d characters", len(text))
}
