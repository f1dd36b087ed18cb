package wixbook

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// JSONFetcher retrieves a URL and decodes its JSON body into v.
// Failures to fetch or decode are reported with code ETRANSPORT; a
// missing resource is ENOTFOUND and other client errors are EINVALID.
type JSONFetcher interface {
	FetchJSON(ctx context.Context, url string, v any) error
}
