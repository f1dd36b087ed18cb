package wixbook

// Chapter is one entry of a work's table of contents.
type Chapter struct {
	// SourceURL is the canonical page URL. It identifies the chapter
	// within a work.
	SourceURL string

	// Title is the display title taken from the link text.
	Title string
}

// ChapterLister extracts the ordered chapter list from a table of
// contents page.
type ChapterLister interface {
	// ExtractChapters parses HTML and returns chapters in document order.
	// The baseURL is used to resolve relative URLs.
	ExtractChapters(html string, baseURL string) ([]Chapter, error)
}

// ScriptExtractor enumerates the raw text of inline scripts in a page.
// Scripts are never executed.
type ScriptExtractor interface {
	Scripts(html string) ([]string, error)
}
