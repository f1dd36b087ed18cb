// Package generic reads works whose chapters are served as ordinary HTML.
package generic

import (
	"context"

	"github.com/fwojciec/wixbook"
)

// Ensure Strategy implements wixbook.Strategy at compile time.
var _ wixbook.Strategy = (*Strategy)(nil)

// Strategy builds the chapter list from the table of contents links and
// extracts each chapter from its own markup.
type Strategy struct {
	chapters  wixbook.ChapterLister
	fetcher   wixbook.Fetcher
	extractor wixbook.Extractor
}

// NewStrategy creates a Strategy.
func NewStrategy(chapters wixbook.ChapterLister, fetcher wixbook.Fetcher, extractor wixbook.Extractor) *Strategy {
	return &Strategy{
		chapters:  chapters,
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// Name returns "generic".
func (s *Strategy) Name() string {
	return "generic"
}

// ChapterList returns a Session of the links found in html. Every chapter
// is fetched from its own URL, so the session carries no API endpoints.
func (s *Strategy) ChapterList(ctx context.Context, html string, pageURL string) (*wixbook.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chapters, err := s.chapters.ExtractChapters(html, pageURL)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, wixbook.Errorf(wixbook.EDISCOVERY, "no chapter links found on %s", pageURL)
	}
	return wixbook.NewSession(chapters, nil), nil
}

// FetchChapter fetches pageURL and extracts its main content. The table
// of contents title is preferred over the page's own title.
func (s *Strategy) FetchChapter(ctx context.Context, session *wixbook.Session, pageURL string) (*wixbook.Document, error) {
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if wixbook.ErrorCode(err) == wixbook.EINTERNAL {
			return nil, wixbook.WrapError(wixbook.ETRANSPORT, err, "fetch %s", pageURL)
		}
		return nil, err
	}

	result, err := s.extractor.Extract(html)
	if err != nil {
		return nil, wixbook.WrapError(wixbook.ECONTENT, err, "chapter %s", pageURL)
	}
	if result.ContentHTML == "" {
		return nil, wixbook.Errorf(wixbook.ECONTENT, "no main content on %s", pageURL)
	}

	title := session.Title(pageURL)
	if title == "" {
		title = result.Title
	}

	return &wixbook.Document{
		SourceURL: pageURL,
		Title:     title,
		Content:   result.ContentHTML,
	}, nil
}
