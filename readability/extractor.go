// Package readability extracts chapter text with go-shiori/go-readability.
package readability

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/wixbook"
	"github.com/go-shiori/go-readability"
)

var _ wixbook.Extractor = (*Extractor)(nil)

// Extractor pulls the article body out of a chapter page. It is the second
// stage of the generic fallback chain, so an empty page yields an empty
// result rather than an error.
type Extractor struct {
	minTextLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinTextLength rejects articles whose visible text is shorter than n
// runes, such as chapter stubs that only carry navigation.
func WithMinTextLength(n int) Option {
	return func(e *Extractor) {
		e.minTextLength = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the title and article markup of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*wixbook.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wixbook.Errorf(wixbook.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, wixbook.WrapError(wixbook.ECONTENT, err, "extract content")
	}

	result := &wixbook.ExtractResult{Title: strings.TrimSpace(article.Title)}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return result, nil
	}
	if n := utf8.RuneCountInString(text); n < e.minTextLength {
		return nil, wixbook.Errorf(wixbook.ECONTENT, "article text too short (%d < %d)", n, e.minTextLength)
	}
	result.ContentHTML = article.Content
	return result, nil
}
