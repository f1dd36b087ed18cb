package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wixbook"
)

// Ensure ChapterLister implements wixbook.ChapterLister at compile time.
var _ wixbook.ChapterLister = (*ChapterLister)(nil)

// DefaultChapterSelector matches every link in the page body.
const DefaultChapterSelector = "body a[href]"

// ChapterLister turns the links of a table of contents page into chapters.
type ChapterLister struct {
	selector string
}

// NewChapterLister creates a ChapterLister that reads links matching
// selector. An empty selector means DefaultChapterSelector.
func NewChapterLister(selector string) *ChapterLister {
	if selector == "" {
		selector = DefaultChapterSelector
	}
	return &ChapterLister{selector: selector}
}

// ExtractChapters returns same-host links in document order. Each URL
// appears once at the position of its first link; its title is the first
// non-empty link text.
func (l *ChapterLister) ExtractChapters(html string, baseURL string) ([]wixbook.Chapter, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, wixbook.Errorf(wixbook.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wixbook.Errorf(wixbook.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]int)
	var chapters []wixbook.Chapter

	doc.Find(l.selector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if !isSameHost(base, resolved) {
			return
		}

		title := normalizeText(sel.Text())
		if idx, ok := seen[resolved]; ok {
			if chapters[idx].Title == "" {
				chapters[idx].Title = title
			}
			return
		}
		seen[resolved] = len(chapters)
		chapters = append(chapters, wixbook.Chapter{SourceURL: resolved, Title: title})
	})

	return chapters, nil
}
