// Package http provides HTTP-based implementations of wixbook.Fetcher and
// wixbook.JSONFetcher for sites that don't require JavaScript rendering.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/wixbook"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the fetcher to servers.
const DefaultUserAgent = "wixbook/1.0 (+https://github.com/fwojciec/wixbook)"

// DefaultMaxBodySize caps the bytes read from a single response.
const DefaultMaxBodySize = 32 << 20

// Ensure Fetcher implements wixbook.Fetcher and wixbook.JSONFetcher at compile time.
var (
	_ wixbook.Fetcher     = (*Fetcher)(nil)
	_ wixbook.JSONFetcher = (*Fetcher)(nil)
)

// Fetcher retrieves content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of bytes read from a response.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.get(ctx, url, "text/html,application/xhtml+xml")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchJSON retrieves url and decodes its JSON body into v.
func (f *Fetcher) FetchJSON(ctx context.Context, url string, v any) error {
	body, err := f.get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return wixbook.WrapError(wixbook.ETRANSPORT, err, "decode JSON from %s", url)
	}
	return nil
}

func (f *Fetcher) get(ctx context.Context, url string, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wixbook.Errorf(wixbook.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("Accept", accept)
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, wixbook.WrapError(wixbook.ETRANSPORT, err, "fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wixbook.Errorf(statusCode(resp.StatusCode), "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, wixbook.WrapError(wixbook.ETRANSPORT, err, "read %s", url)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, wixbook.Errorf(wixbook.ETRANSPORT, "response from %s exceeds %s", url, formatSize(f.maxBodySize))
	}

	return body, nil
}

// statusCode maps a non-200 status to an error code. Client errors other
// than timeouts and throttling are permanent and must not be retried.
func statusCode(status int) string {
	switch {
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
		return wixbook.ETRANSPORT
	case status == http.StatusNotFound, status == http.StatusGone:
		return wixbook.ENOTFOUND
	case status >= 400 && status < 500:
		return wixbook.EINVALID
	default:
		return wixbook.ETRANSPORT
	}
}

func formatSize(n int64) string {
	if n >= 1<<20 {
		return fmt.Sprintf("%d MiB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
