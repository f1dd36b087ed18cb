package crawl

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/wixbook"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retryable reports whether err may go away on a later attempt. Only
// transport failures qualify; a missing API resource or a response
// without body text fails the same way every time.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return wixbook.ErrorCode(err) == wixbook.ETRANSPORT
}

// Retry calls fn until it succeeds, returns a non-retryable error, or the
// delays are exhausted. It makes len(delays)+1 attempts at most.
// The logger function, if provided, is called for each retry attempt.
func Retry[T any](ctx context.Context, label string, delays []time.Duration, logger LogFunc, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if !Retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", label, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}

// FetchWithRetryDelays fetches url, retrying transport failures after
// each of delays.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	return Retry(ctx, url, delays, logger, func(ctx context.Context) (string, error) {
		return fetch(ctx, url)
	})
}
