package mock

import "github.com/fwojciec/wixbook"

var (
	_ wixbook.ChapterLister   = (*ChapterLister)(nil)
	_ wixbook.ScriptExtractor = (*ScriptExtractor)(nil)
)

// ChapterLister is a mock implementation of wixbook.ChapterLister.
type ChapterLister struct {
	ExtractChaptersFn func(html string, baseURL string) ([]wixbook.Chapter, error)
}

func (l *ChapterLister) ExtractChapters(html string, baseURL string) ([]wixbook.Chapter, error) {
	return l.ExtractChaptersFn(html, baseURL)
}

// ScriptExtractor is a mock implementation of wixbook.ScriptExtractor.
type ScriptExtractor struct {
	ScriptsFn func(html string) ([]string, error)
}

func (e *ScriptExtractor) Scripts(html string) ([]string, error) {
	return e.ScriptsFn(html)
}
