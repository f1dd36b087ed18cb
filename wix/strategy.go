package wix

import (
	"context"

	"github.com/fwojciec/wixbook"
)

// Ensure Strategy implements wixbook.Strategy at compile time.
var _ wixbook.Strategy = (*Strategy)(nil)

// Strategy reads works from Wix sites.
type Strategy struct {
	scripts  wixbook.ScriptExtractor
	chapters wixbook.ChapterLister
	json     wixbook.JSONFetcher
	marker   string
}

// Option configures a Strategy.
type Option func(*Strategy)

// WithMarker overrides the text that introduces the configuration blob.
func WithMarker(marker string) Option {
	return func(s *Strategy) {
		s.marker = marker
	}
}

// NewStrategy creates a Strategy from its collaborators.
func NewStrategy(
	scripts wixbook.ScriptExtractor,
	chapters wixbook.ChapterLister,
	json wixbook.JSONFetcher,
	opts ...Option,
) *Strategy {
	s := &Strategy{
		scripts:  scripts,
		chapters: chapters,
		json:     json,
		marker:   DefaultMarker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns "wix".
func (s *Strategy) Name() string {
	return "wix"
}

// ChapterList discovers the site's API endpoints and pairs them with the
// table of contents links of html. A page without a configuration blob
// is not a Wix work and fails with EDISCOVERY.
func (s *Strategy) ChapterList(ctx context.Context, html string, pageURL string) (*wixbook.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scripts, err := s.scripts.Scripts(html)
	if err != nil {
		return nil, wixbook.WrapError(wixbook.EDISCOVERY, err, "read scripts of %s", pageURL)
	}

	endpoints, err := DiscoverWithMarker(scripts, s.marker)
	if err != nil {
		return nil, err
	}
	if len(endpoints) == 0 {
		return nil, wixbook.Errorf(wixbook.EDISCOVERY, "no site configuration found on %s", pageURL)
	}

	chapters, err := s.chapters.ExtractChapters(html, pageURL)
	if err != nil {
		return nil, err
	}

	return wixbook.NewSession(chapters, endpoints), nil
}

// FetchChapter fetches the API resource of pageURL and rebuilds the
// chapter from its longest text component.
func (s *Strategy) FetchChapter(ctx context.Context, session *wixbook.Session, pageURL string) (*wixbook.Document, error) {
	restURL, ok := session.RESTURL(pageURL)
	if !ok {
		return nil, wixbook.Errorf(wixbook.ERESOLUTION, "no API resource for %s", pageURL)
	}

	var resp PageResponse
	if err := s.json.FetchJSON(ctx, restURL, &resp); err != nil {
		if wixbook.ErrorCode(err) == wixbook.EINTERNAL {
			return nil, wixbook.WrapError(wixbook.ETRANSPORT, err, "fetch %s", restURL)
		}
		return nil, err
	}

	content, err := SelectContent(&resp)
	if err != nil {
		return nil, wixbook.WrapError(wixbook.ECONTENT, err, "chapter %s", pageURL)
	}

	return &wixbook.Document{
		SourceURL: pageURL,
		Title:     session.Title(pageURL),
		Content:   content,
	}, nil
}
