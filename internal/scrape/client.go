// Package scrape pulls the card catalog from the public database site:
// listing pages per rarity, per-card availability text, attribute
// listings, and card images. Every fetch goes through one resty client
// with a polite delay so the site never sees request bursts.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/mufgmixi/cgss-checker/internal/common"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client wraps the HTTP layer shared by the scrape commands.
type Client struct {
	http    *resty.Client
	baseURL string
	delay   time.Duration
	lastHit time.Time
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Delay   time.Duration
	Timeout time.Duration
}

// NewClient creates a scraping client for the database site.
func NewClient(opts Options) *Client {
	if opts.Delay <= 0 {
		opts.Delay = 1200 * time.Millisecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}

	http := resty.New()
	http.SetTimeout(opts.Timeout)
	http.SetHeader("User-Agent", defaultUserAgent)

	return &Client{
		http:    http,
		baseURL: opts.BaseURL,
		delay:   opts.Delay,
	}
}

// fetchDocument GETs a page and parses it, waiting out the polite
// delay since the previous request first.
func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	var doc *goquery.Document
	err := common.WithRetry(ctx, func() error {
		res, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", common.ErrFetchFailed, url, err)
		}
		if res.StatusCode() != http.StatusOK {
			retryable := res.StatusCode() >= 500 || res.StatusCode() == http.StatusTooManyRequests
			return &common.RetryableError{
				Err:       fmt.Errorf("%w: %s: HTTP %d", common.ErrFetchFailed, url, res.StatusCode()),
				Retryable: retryable,
			}
		}
		parsed, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
		if err != nil {
			return &common.RetryableError{
				Err:       fmt.Errorf("%w: %s: %v", common.ErrParseFailed, url, err),
				Retryable: false,
			}
		}
		doc = parsed
		return nil
	}, common.RetryOptions{MaxAttempts: 3})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) wait(ctx context.Context) error {
	since := time.Since(c.lastHit)
	if since < c.delay {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.delay - since):
		}
	}
	c.lastHit = time.Now()
	return nil
}
