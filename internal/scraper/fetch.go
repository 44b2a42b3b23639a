package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Timeout bounds each page fetch. A request exceeding it fails that one
// page only; there are no retries.
const Timeout = 30 * time.Second

// Fetcher retrieves venue pages with a fixed header set and request timeout.
type Fetcher struct {
	client  *http.Client
	headers map[string]string
}

// NewFetcher creates a Fetcher that sends headers on every request.
func NewFetcher(headers map[string]string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
		headers: headers,
	}
}

// Fetch performs a GET against pageURL and returns the response body.
// Any non-2xx status is a fetch failure.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}
