package mock

import (
	"context"

	"github.com/fwojciec/wixbook"
)

var (
	_ wixbook.Strategy         = (*Strategy)(nil)
	_ wixbook.StrategyRegistry = (*StrategyRegistry)(nil)
)

// Strategy is a mock implementation of wixbook.Strategy.
type Strategy struct {
	NameFn         func() string
	ChapterListFn  func(ctx context.Context, html string, pageURL string) (*wixbook.Session, error)
	FetchChapterFn func(ctx context.Context, session *wixbook.Session, pageURL string) (*wixbook.Document, error)
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) ChapterList(ctx context.Context, html string, pageURL string) (*wixbook.Session, error) {
	return s.ChapterListFn(ctx, html, pageURL)
}

func (s *Strategy) FetchChapter(ctx context.Context, session *wixbook.Session, pageURL string) (*wixbook.Document, error) {
	return s.FetchChapterFn(ctx, session, pageURL)
}

// StrategyRegistry is a mock implementation of wixbook.StrategyRegistry.
type StrategyRegistry struct {
	RegisterFn func(match wixbook.Matcher, strategy wixbook.Strategy)
	LookupFn   func(url string) (wixbook.Strategy, error)
}

func (r *StrategyRegistry) Register(match wixbook.Matcher, strategy wixbook.Strategy) {
	r.RegisterFn(match, strategy)
}

func (r *StrategyRegistry) Lookup(url string) (wixbook.Strategy, error) {
	return r.LookupFn(url)
}
