// Package http provides an HTTP-based implementation of
// bergfex.PageFetcher. The site is static HTML, so plain requests
// suffice; no JavaScript rendering is involved.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mbarbey/bergfex"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the site root. The .fr, .com and .at hosts serve the
// same structure with localized labels.
const DefaultBaseURL = "https://www.bergfex.fr"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestsPerSecond bounds the polling rate. The site is polled
// on a refresh interval, not crawled, so a low ceiling costs nothing.
const DefaultRequestsPerSecond = 2.0

// DefaultConcurrency bounds concurrent resort-page fetches.
const DefaultConcurrency = 4

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) snowreport/1.0"

// Ensure Client implements bergfex.PageFetcher at compile time.
var _ bergfex.PageFetcher = (*Client)(nil)

// Client retrieves snow-report pages over HTTP. Requests share a token
// bucket so that polling several resorts stays polite.
type Client struct {
	client    *http.Client
	limiter   *rate.Limiter
	baseURL   string
	userAgent string
	timeout   time.Duration
	now       func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the site root. Defaults to DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRequestsPerSecond sets the request rate ceiling.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		limiter:   rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   DefaultFetchTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// OverviewPage fetches the snow-report listing page for a country code.
func (c *Client) OverviewPage(ctx context.Context, country string) (*bergfex.Page, error) {
	if country == "" {
		return nil, bergfex.Errorf(bergfex.EINVALID, "country required")
	}
	return c.get(ctx, c.join("/"+strings.Trim(country, "/")+"/schneewerte/"))
}

// ResortPage fetches a single resort's snow-report page by its relative
// link path, as produced by the overview extractor.
func (c *Client) ResortPage(ctx context.Context, areaPath string) (*bergfex.Page, error) {
	if areaPath == "" {
		return nil, bergfex.Errorf(bergfex.EINVALID, "resort path required")
	}
	return c.get(ctx, c.join(areaPath))
}

// ForecastPage fetches a resort's snow-forecast page. page is the
// 0-based forecast page number, appended as a query parameter when
// non-zero.
func (c *Client) ForecastPage(ctx context.Context, areaPath string, page int) (*bergfex.Page, error) {
	if areaPath == "" {
		return nil, bergfex.Errorf(bergfex.EINVALID, "resort path required")
	}
	pageURL := c.join(strings.TrimRight(areaPath, "/") + "/schneeprognose/")
	if page != 0 {
		pageURL += "?page=" + strconv.Itoa(page)
	}
	return c.get(ctx, pageURL)
}

// ResortPages fetches several resort pages concurrently, keyed by path.
// The first failed fetch cancels the rest.
func (c *Client) ResortPages(ctx context.Context, areaPaths []string) (map[string]*bergfex.Page, error) {
	fetched := make([]*bergfex.Page, len(areaPaths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)
	for i, areaPath := range areaPaths {
		i, areaPath := i, areaPath
		g.Go(func() error {
			page, err := c.ResortPage(ctx, areaPath)
			if err != nil {
				return err
			}
			fetched[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages := make(map[string]*bergfex.Page, len(areaPaths))
	for i, areaPath := range areaPaths {
		pages[areaPath] = fetched[i]
	}
	return pages, nil
}

// get fetches one URL, waiting on the shared rate limiter first.
func (c *Client) get(ctx context.Context, pageURL string) (*bergfex.Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, bergfex.Errorf(bergfex.ENOTFOUND, "page not found: %s", pageURL)
	case resp.StatusCode != http.StatusOK:
		return nil, bergfex.Errorf(bergfex.EINTERNAL, "HTTP %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &bergfex.Page{
		URL:         pageURL,
		HTML:        string(body),
		ContentHash: xxhash.Sum64(body),
		FetchedAt:   c.now(),
	}, nil
}

// join resolves a site-relative path against the base URL.
func (c *Client) join(relPath string) string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL + relPath
	}
	ref, err := url.Parse(relPath)
	if err != nil {
		return c.baseURL + relPath
	}
	return u.ResolveReference(ref).String()
}
