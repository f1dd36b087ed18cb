package wixbook

// Session is the per-work index built once from a table of contents page.
// It maps each page URL to its API resource and display title.
//
// A Session is immutable after construction and safe for concurrent reads.
// A nil Session has no chapters and resolves nothing.
type Session struct {
	chapters []Chapter
	restURLs map[string]string
	titles   map[string]string
}

// NewSession builds a Session from the ordered chapter list and the
// page URL to REST URL map discovered for the work. Only pages present
// in endpoints resolve to a REST URL. When the chapter list repeats a
// URL, the later title wins.
func NewSession(chapters []Chapter, endpoints map[string]string) *Session {
	s := &Session{
		chapters: make([]Chapter, len(chapters)),
		restURLs: make(map[string]string, len(endpoints)),
		titles:   make(map[string]string, len(chapters)),
	}
	copy(s.chapters, chapters)
	for pageURL, restURL := range endpoints {
		s.restURLs[pageURL] = restURL
	}
	for _, ch := range chapters {
		s.titles[ch.SourceURL] = ch.Title
	}
	return s
}

// Chapters returns the chapter list in table of contents order.
func (s *Session) Chapters() []Chapter {
	if s == nil {
		return nil
	}
	out := make([]Chapter, len(s.chapters))
	copy(out, s.chapters)
	return out
}

// Len returns the number of chapters.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.chapters)
}

// RESTURL returns the API resource for a page URL.
func (s *Session) RESTURL(pageURL string) (string, bool) {
	if s == nil {
		return "", false
	}
	u, ok := s.restURLs[pageURL]
	return u, ok
}

// Endpoints returns the number of page URLs with a known API resource.
func (s *Session) Endpoints() int {
	if s == nil {
		return 0
	}
	return len(s.restURLs)
}

// Title returns the display title for a page URL, or an empty string
// when the URL is not in the chapter list.
func (s *Session) Title(pageURL string) string {
	if s == nil {
		return ""
	}
	return s.titles[pageURL]
}
