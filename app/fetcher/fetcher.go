package fetcher

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/bbsimage/appfree/app/feed"
)

// Fetcher downloads the source channel feed and maps its items into
// pipeline entries.
type Fetcher struct {
	httpClient   *http.Client
	gofeedParser *gofeed.Parser
	userAgent    string
	timeout      time.Duration
}

func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient:   &http.Client{},
		gofeedParser: gofeed.NewParser(),
		userAgent:    userAgent,
		timeout:      timeout,
	}
}

func (f *Fetcher) Run(ctx context.Context, url string) ([]feed.Entry, error) {
	data, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return f.Parse(data)
}

// Parse maps feed items to entries. The item description falls back to the
// content body, which is where Telegram bridges put the post HTML.
func (f *Fetcher) Parse(data []byte) ([]feed.Entry, error) {
	parsed, err := f.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]feed.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, feed.Entry{
			Title:       item.Title,
			Description: cmp.Or(item.Description, item.Content),
			Published:   item.Published,
		})
	}

	return entries, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
