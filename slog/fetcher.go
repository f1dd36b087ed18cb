// Package slog decorates wixbook collaborators with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wixbook"
)

// Ensure the decorators implement their interfaces.
var (
	_ wixbook.Fetcher     = (*LoggingFetcher)(nil)
	_ wixbook.JSONFetcher = (*LoggingJSONFetcher)(nil)
)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   wixbook.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wixbook.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingJSONFetcher wraps a JSONFetcher with logging.
type LoggingJSONFetcher struct {
	next   wixbook.JSONFetcher
	logger *slog.Logger
}

// NewLoggingJSONFetcher creates a new LoggingJSONFetcher.
func NewLoggingJSONFetcher(next wixbook.JSONFetcher, logger *slog.Logger) *LoggingJSONFetcher {
	return &LoggingJSONFetcher{next: next, logger: logger}
}

// FetchJSON delegates to the wrapped fetcher and logs the request.
func (f *LoggingJSONFetcher) FetchJSON(ctx context.Context, url string, v any) (err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch json",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchJSON(ctx, url, v)
}
