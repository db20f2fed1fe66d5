package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// Fetcher retrieves raw page markup for a URL. The comparison builder
// treats it as a black box: any error (network, timeout, non-2xx) routes
// the platform to estimation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// maxBodyBytes caps how much markup we read from a single page.
const maxBodyBytes = 5 << 20

// requestProfile is one set of browser-like request headers.
type requestProfile struct {
	userAgent string
	accept    string
	language  string
}

// headerPool is rotated across requests so consecutive fetches don't all
// present the same fingerprint.
var headerPool = []requestProfile{
	{
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		accept:    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		language:  "en-IN,en;q=0.9",
	},
	{
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
		accept:    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		language:  "en-US,en;q=0.8",
	},
	{
		userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
		accept:    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		language:  "en-IN,en-GB;q=0.9,en;q=0.8",
	},
	{
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
		accept:    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		language:  "en-IN,en;q=0.9",
	},
}

// HTTPFetcher fetches pages over plain HTTP with a rotated header pool.
type HTTPFetcher struct {
	client *http.Client
	next   uint64
}

// NewHTTPFetcher creates a fetcher with the given per-request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the markup at url. Non-2xx responses are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %v", url, err)
	}

	profile := headerPool[atomic.AddUint64(&f.next, 1)%uint64(len(headerPool))]
	req.Header.Set("User-Agent", profile.userAgent)
	req.Header.Set("Accept", profile.accept)
	req.Header.Set("Accept-Language", profile.language)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch failed for %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch failed for %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read body for %s: %v", url, err)
	}

	return string(body), nil
}
