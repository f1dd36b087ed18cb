package wixbook

import "context"

// Strategy knows how to read the works of one hosting platform.
type Strategy interface {
	// Name identifies the strategy (e.g., "wix", "generic").
	Name() string

	// ChapterList builds the work's Session from the markup of its table
	// of contents page. It must complete before any FetchChapter call for
	// the same work. A failure aborts the whole work; no partial list is
	// returned.
	ChapterList(ctx context.Context, html string, pageURL string) (*Session, error)

	// FetchChapter fetches and reconstructs one chapter. The pageURL
	// must come from the session's chapter list. Calls for different
	// chapters are independent and may run concurrently.
	FetchChapter(ctx context.Context, session *Session, pageURL string) (*Document, error)
}

// Matcher reports whether a strategy applies to a URL.
type Matcher func(url string) bool

// StrategyRegistry dispatches URLs to strategies.
type StrategyRegistry interface {
	// Register appends a strategy. Earlier registrations take precedence.
	Register(match Matcher, strategy Strategy)

	// Lookup returns the first strategy whose matcher accepts the URL.
	// Returns ENOTFOUND if no strategy applies.
	Lookup(url string) (Strategy, error)
}
