package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// errParsePage marks responses that arrived but could not be parsed as HTML,
// so the caller can word the warning differently from a network failure.
var errParsePage = errors.New("parse page")

const (
	// FetchTimeout bounds a single page retrieval end to end.
	FetchTimeout = 5 * time.Second
	// MaxBodyBytes caps how much of a response body is read; anything past
	// the limit is discarded, never buffered.
	MaxBodyBytes = 1 << 20 // 1 MiB

	// Some boards serve empty pages to obvious bots, so send a real browser UA.
	browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client fetches and extracts job postings from external pages.
type Client struct {
	hc  *http.Client
	lim *HostLimiter
}

func NewClient(lim *HostLimiter) *Client {
	return &Client{
		hc:  &http.Client{Timeout: FetchTimeout},
		lim: lim,
	}
}

// fetchDocument retrieves url under the size cap and parses it. Redirects are
// followed by the default client policy.
func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	if c.lim != nil {
		if err := c.lim.WaitURL(ctx, url); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("page status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(res.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParsePage, err)
	}
	return doc, nil
}

// FetchRaw retrieves url as plain bytes under limit (used for the markdown feed).
func (c *Client) FetchRaw(ctx context.Context, url string, limit int64) ([]byte, error) {
	if c.lim != nil {
		if err := c.lim.WaitURL(ctx, url); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("document status %d", res.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return b, nil
}
