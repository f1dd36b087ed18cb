package mock

import (
	"context"

	"github.com/fwojciec/wixbook"
)

var (
	_ wixbook.Fetcher     = (*Fetcher)(nil)
	_ wixbook.JSONFetcher = (*JSONFetcher)(nil)
)

// Fetcher is a mock implementation of wixbook.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// JSONFetcher is a mock implementation of wixbook.JSONFetcher.
type JSONFetcher struct {
	FetchJSONFn func(ctx context.Context, url string, v any) error
}

func (f *JSONFetcher) FetchJSON(ctx context.Context, url string, v any) error {
	return f.FetchJSONFn(ctx, url, v)
}
