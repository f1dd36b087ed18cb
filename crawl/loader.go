// Package crawl loads whole works: it fetches the table of contents,
// builds the chapter index through the matching strategy, and fetches the
// chapters concurrently with rate limiting and retries.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/wixbook"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of chapters fetched at once.
const DefaultConcurrency = 3

// Loader orchestrates the loading of works.
type Loader struct {
	Strategies  wixbook.StrategyRegistry
	Fetcher     wixbook.Fetcher
	RateLimiter wixbook.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Log         LogFunc
}

// Index is a work whose chapter list has been built.
type Index struct {
	URL      string
	Strategy wixbook.Strategy
	Session  *wixbook.Session
}

// Result holds the outcome of a load operation.
type Result struct {
	// Documents holds the fetched chapters in table of contents order.
	Documents []*wixbook.Document

	// Failed holds one entry per chapter that could not be fetched.
	Failed []*ChapterError

	Bytes int
}

// ChapterError reports a chapter that failed to load.
type ChapterError struct {
	Position int
	Chapter  wixbook.Chapter
	Err      error
}

// Error implements the error interface.
func (e *ChapterError) Error() string {
	return e.Chapter.SourceURL + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ChapterError) Unwrap() error {
	return e.Err
}

// ProgressEvent reports progress during a load operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting load progress.
type ProgressFunc func(event ProgressEvent)

// loadResult holds the outcome of loading a single chapter.
type loadResult struct {
	position int
	chapter  wixbook.Chapter
	doc      *wixbook.Document
	err      error
}

// Index fetches the table of contents at rawURL and builds the work's
// chapter index with the strategy registered for it. Any failure aborts
// the whole work.
func (l *Loader) Index(ctx context.Context, rawURL string) (*Index, error) {
	strategy, err := l.Strategies.Lookup(rawURL)
	if err != nil {
		return nil, err
	}

	if err := l.wait(ctx, rawURL); err != nil {
		return nil, err
	}

	html, err := FetchWithRetryDelays(ctx, rawURL, l.Fetcher.Fetch, l.Log, l.retryDelays())
	if err != nil {
		return nil, err
	}

	session, err := strategy.ChapterList(ctx, html, rawURL)
	if err != nil {
		return nil, err
	}

	return &Index{URL: rawURL, Strategy: strategy, Session: session}, nil
}

// Load fetches the chapters at positions (zero-based, as returned by
// SelectChapters) from the index. A nil positions slice loads every
// chapter. A failed chapter never stops its siblings; it is reported
// through progress and in Result.Failed. Load only returns an error when
// ctx is canceled.
func (l *Loader) Load(ctx context.Context, idx *Index, positions []int, progress ProgressFunc) (*Result, error) {
	chapters := idx.Session.Chapters()
	if positions == nil {
		positions = make([]int, len(chapters))
		for i := range positions {
			positions[i] = i
		}
	}
	for _, p := range positions {
		if p < 0 || p >= len(chapters) {
			return nil, wixbook.Errorf(wixbook.EINVALID, "chapter position %d outside 0-%d", p, len(chapters)-1)
		}
	}

	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(positions)
	resultCh := make(chan loadResult, total)
	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, p := range positions {
			g.Go(func() error {
				resultCh <- l.loadChapter(gctx, idx, p, chapters[p])
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	byPosition := make(map[int]loadResult, total)
	for r := range resultCh {
		completed.Add(1)
		byPosition[r.position] = r

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       r.chapter.SourceURL,
			Title:     r.chapter.Title,
		}
		if r.err != nil {
			event.Type = ProgressFailed
			event.Error = r.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, p := range positions {
		r := byPosition[p]
		if r.err != nil {
			result.Failed = append(result.Failed, &ChapterError{Position: p, Chapter: r.chapter, Err: r.err})
			continue
		}
		result.Documents = append(result.Documents, r.doc)
		result.Bytes += len(r.doc.Content)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

// loadChapter fetches one chapter through the strategy.
func (l *Loader) loadChapter(ctx context.Context, idx *Index, position int, ch wixbook.Chapter) loadResult {
	result := loadResult{position: position, chapter: ch}

	if err := l.wait(ctx, ch.SourceURL); err != nil {
		result.err = err
		return result
	}

	doc, err := Retry(ctx, ch.SourceURL, l.retryDelays(), l.Log, func(ctx context.Context) (*wixbook.Document, error) {
		return idx.Strategy.FetchChapter(ctx, idx.Session, ch.SourceURL)
	})
	if err != nil {
		result.err = err
		return result
	}

	doc.Position = position
	doc.ContentHash = contentHash(doc.Content)
	doc.FetchedAt = time.Now()
	result.doc = doc
	return result
}

// wait applies the per-host rate limit, if configured.
func (l *Loader) wait(ctx context.Context, rawURL string) error {
	if l.RateLimiter == nil {
		return ctx.Err()
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return wixbook.Errorf(wixbook.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return l.RateLimiter.Wait(ctx, u.Host)
}

func (l *Loader) retryDelays() []time.Duration {
	if l.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return l.RetryDelays
}
