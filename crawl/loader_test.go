package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wixbook"
	"github.com/fwojciec/wixbook/crawl"
	"github.com/fwojciec/wixbook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChapters() []wixbook.Chapter {
	return []wixbook.Chapter{
		{SourceURL: "https://s.wixsite.com/w/ch-1", Title: "One"},
		{SourceURL: "https://s.wixsite.com/w/ch-2", Title: "Two"},
		{SourceURL: "https://s.wixsite.com/w/ch-3", Title: "Three"},
	}
}

func fixedStrategy(fetch func(ctx context.Context, session *wixbook.Session, pageURL string) (*wixbook.Document, error)) *mock.Strategy {
	return &mock.Strategy{
		NameFn: func() string { return "wix" },
		ChapterListFn: func(_ context.Context, _ string, _ string) (*wixbook.Session, error) {
			return wixbook.NewSession(testChapters(), nil), nil
		},
		FetchChapterFn: fetch,
	}
}

func registryFor(s wixbook.Strategy) *mock.StrategyRegistry {
	return &mock.StrategyRegistry{
		LookupFn: func(string) (wixbook.Strategy, error) { return s, nil },
	}
}

func echoChapter(_ context.Context, session *wixbook.Session, pageURL string) (*wixbook.Document, error) {
	return &wixbook.Document{SourceURL: pageURL, Title: session.Title(pageURL), Content: "<p>" + pageURL + "</p>"}, nil
}

func TestLoader_Index(t *testing.T) {
	t.Parallel()

	t.Run("fetches table of contents and builds session", func(t *testing.T) {
		t.Parallel()

		var gotHTML, gotURL string
		strategy := fixedStrategy(echoChapter)
		strategy.ChapterListFn = func(_ context.Context, html string, pageURL string) (*wixbook.Session, error) {
			gotHTML, gotURL = html, pageURL
			return wixbook.NewSession(testChapters(), nil), nil
		}
		l := &crawl.Loader{
			Strategies: registryFor(strategy),
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
				return "<html>toc</html>", nil
			}},
			RetryDelays: []time.Duration{0},
		}

		idx, err := l.Index(context.Background(), "https://s.wixsite.com/w")

		require.NoError(t, err)
		assert.Equal(t, "<html>toc</html>", gotHTML)
		assert.Equal(t, "https://s.wixsite.com/w", gotURL)
		assert.Equal(t, "wix", idx.Strategy.Name())
		assert.Equal(t, 3, idx.Session.Len())
	})

	t.Run("retries transport failures of the table of contents", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		l := &crawl.Loader{
			Strategies: registryFor(fixedStrategy(echoChapter)),
			Fetcher: &mock.Fetcher{FetchFn: func(_ context.Context, url string) (string, error) {
				if calls.Add(1) < 3 {
					return "", wixbook.Errorf(wixbook.ETRANSPORT, "HTTP 503 for %s", url)
				}
				return "<html/>", nil
			}},
			RetryDelays: []time.Duration{0, 0, 0},
		}

		_, err := l.Index(context.Background(), "https://s.wixsite.com/w")

		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("discovery failure aborts the work", func(t *testing.T) {
		t.Parallel()

		strategy := fixedStrategy(echoChapter)
		strategy.ChapterListFn = func(context.Context, string, string) (*wixbook.Session, error) {
			return nil, wixbook.Errorf(wixbook.EDISCOVERY, "no site configuration")
		}
		l := &crawl.Loader{
			Strategies:  registryFor(strategy),
			Fetcher:     &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return "", nil }},
			RetryDelays: []time.Duration{0},
		}

		idx, err := l.Index(context.Background(), "https://s.wixsite.com/w")

		assert.Nil(t, idx)
		assert.Equal(t, wixbook.EDISCOVERY, wixbook.ErrorCode(err))
	})

	t.Run("unknown site is not found", func(t *testing.T) {
		t.Parallel()

		l := &crawl.Loader{
			Strategies: &mock.StrategyRegistry{LookupFn: func(url string) (wixbook.Strategy, error) {
				return nil, wixbook.Errorf(wixbook.ENOTFOUND, "no strategy for %s", url)
			}},
		}

		_, err := l.Index(context.Background(), "https://x.test")

		assert.Equal(t, wixbook.ENOTFOUND, wixbook.ErrorCode(err))
	})

	t.Run("waits on the rate limiter for the host", func(t *testing.T) {
		t.Parallel()

		var domains []string
		l := &crawl.Loader{
			Strategies: registryFor(fixedStrategy(echoChapter)),
			Fetcher:    &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return "", nil }},
			RateLimiter: &mock.DomainLimiter{WaitFn: func(_ context.Context, domain string) error {
				domains = append(domains, domain)
				return nil
			}},
		}

		_, err := l.Index(context.Background(), "https://s.wixsite.com/w")

		require.NoError(t, err)
		assert.Equal(t, []string{"s.wixsite.com"}, domains)
	})
}

func index(s wixbook.Strategy) *crawl.Index {
	return &crawl.Index{
		URL:      "https://s.wixsite.com/w",
		Strategy: s,
		Session:  wixbook.NewSession(testChapters(), nil),
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads all chapters in order with position and hash", func(t *testing.T) {
		t.Parallel()

		l := &crawl.Loader{Concurrency: 3, RetryDelays: []time.Duration{0}}

		result, err := l.Load(context.Background(), index(fixedStrategy(echoChapter)), nil, nil)

		require.NoError(t, err)
		require.Len(t, result.Documents, 3)
		assert.Empty(t, result.Failed)
		for i, doc := range result.Documents {
			assert.Equal(t, i, doc.Position)
			assert.Equal(t, testChapters()[i].SourceURL, doc.SourceURL)
			assert.Equal(t, testChapters()[i].Title, doc.Title)
			assert.Equal(t, fmt.Sprintf("%x", xxhash.Sum64String(doc.Content)), doc.ContentHash)
			assert.False(t, doc.FetchedAt.IsZero())
		}
		assert.Positive(t, result.Bytes)
	})

	t.Run("keeps order when chapters finish out of order", func(t *testing.T) {
		t.Parallel()

		strategy := fixedStrategy(func(ctx context.Context, s *wixbook.Session, pageURL string) (*wixbook.Document, error) {
			if pageURL == testChapters()[0].SourceURL {
				time.Sleep(30 * time.Millisecond)
			}
			return echoChapter(ctx, s, pageURL)
		})
		l := &crawl.Loader{Concurrency: 3, RetryDelays: []time.Duration{0}}

		result, err := l.Load(context.Background(), index(strategy), nil, nil)

		require.NoError(t, err)
		require.Len(t, result.Documents, 3)
		assert.Equal(t, "One", result.Documents[0].Title)
		assert.Equal(t, "Three", result.Documents[2].Title)
	})

	t.Run("failed chapter does not stop siblings", func(t *testing.T) {
		t.Parallel()

		strategy := fixedStrategy(func(ctx context.Context, s *wixbook.Session, pageURL string) (*wixbook.Document, error) {
			if pageURL == testChapters()[1].SourceURL {
				return nil, wixbook.Errorf(wixbook.ECONTENT, "no txtNew components")
			}
			return echoChapter(ctx, s, pageURL)
		})
		l := &crawl.Loader{RetryDelays: []time.Duration{0}}

		result, err := l.Load(context.Background(), index(strategy), nil, nil)

		require.NoError(t, err)
		assert.Len(t, result.Documents, 2)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, 1, result.Failed[0].Position)
		assert.Equal(t, "Two", result.Failed[0].Chapter.Title)
		assert.Equal(t, wixbook.ECONTENT, wixbook.ErrorCode(result.Failed[0]))
	})

	t.Run("retries transport failures only", func(t *testing.T) {
		t.Parallel()

		var transportCalls, resolutionCalls atomic.Int32
		strategy := fixedStrategy(func(ctx context.Context, s *wixbook.Session, pageURL string) (*wixbook.Document, error) {
			switch pageURL {
			case testChapters()[0].SourceURL:
				if transportCalls.Add(1) == 1 {
					return nil, wixbook.Errorf(wixbook.ETRANSPORT, "HTTP 502")
				}
			case testChapters()[1].SourceURL:
				resolutionCalls.Add(1)
				return nil, wixbook.Errorf(wixbook.ERESOLUTION, "no API resource")
			}
			return echoChapter(ctx, s, pageURL)
		})
		l := &crawl.Loader{RetryDelays: []time.Duration{0, 0}}

		result, err := l.Load(context.Background(), index(strategy), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int32(2), transportCalls.Load())
		assert.Equal(t, int32(1), resolutionCalls.Load())
		assert.Len(t, result.Documents, 2)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, wixbook.ERESOLUTION, wixbook.ErrorCode(result.Failed[0].Err))
	})

	t.Run("loads only selected positions", func(t *testing.T) {
		t.Parallel()

		l := &crawl.Loader{RetryDelays: []time.Duration{0}}

		result, err := l.Load(context.Background(), index(fixedStrategy(echoChapter)), []int{2, 0}, nil)

		require.NoError(t, err)
		require.Len(t, result.Documents, 2)
		assert.Equal(t, 2, result.Documents[0].Position)
		assert.Equal(t, 0, result.Documents[1].Position)
	})

	t.Run("rejects positions outside the chapter list", func(t *testing.T) {
		t.Parallel()

		l := &crawl.Loader{}

		_, err := l.Load(context.Background(), index(fixedStrategy(echoChapter)), []int{3}, nil)

		assert.Equal(t, wixbook.EINVALID, wixbook.ErrorCode(err))
	})

	t.Run("never exceeds concurrency", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		strategy := fixedStrategy(func(ctx context.Context, s *wixbook.Session, pageURL string) (*wixbook.Document, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return echoChapter(ctx, s, pageURL)
		})
		l := &crawl.Loader{Concurrency: 1, RetryDelays: []time.Duration{0}}

		_, err := l.Load(context.Background(), index(strategy), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int32(1), peak.Load())
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		strategy := fixedStrategy(func(ctx context.Context, s *wixbook.Session, pageURL string) (*wixbook.Document, error) {
			if pageURL == testChapters()[2].SourceURL {
				return nil, errors.New("boom")
			}
			return echoChapter(ctx, s, pageURL)
		})
		l := &crawl.Loader{RetryDelays: []time.Duration{0}}

		var mu sync.Mutex
		counts := map[crawl.ProgressType]int{}
		_, err := l.Load(context.Background(), index(strategy), nil, func(e crawl.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			counts[e.Type]++
			if e.Type == crawl.ProgressFailed {
				assert.Equal(t, "Three", e.Title)
				assert.Error(t, e.Error)
			}
		})

		require.NoError(t, err)
		assert.Equal(t, 1, counts[crawl.ProgressStarted])
		assert.Equal(t, 2, counts[crawl.ProgressCompleted])
		assert.Equal(t, 1, counts[crawl.ProgressFailed])
		assert.Equal(t, 1, counts[crawl.ProgressFinished])
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		strategy := fixedStrategy(func(ctx context.Context, _ *wixbook.Session, _ string) (*wixbook.Document, error) {
			return nil, ctx.Err()
		})
		l := &crawl.Loader{RetryDelays: []time.Duration{0}}

		_, err := l.Load(ctx, index(strategy), nil, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
