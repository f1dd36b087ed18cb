package generic

import (
	"strings"

	"github.com/fwojciec/wixbook"
)

// Ensure FallbackExtractor implements wixbook.Extractor at compile time.
var _ wixbook.Extractor = (*FallbackExtractor)(nil)

// FallbackExtractor tries extractors in order and returns the first result
// with non-empty content.
type FallbackExtractor struct {
	extractors []wixbook.Extractor
}

// NewFallbackExtractor creates a FallbackExtractor.
func NewFallbackExtractor(extractors ...wixbook.Extractor) *FallbackExtractor {
	return &FallbackExtractor{extractors: extractors}
}

// Extract returns the first non-empty result. When every extractor fails
// or finds nothing, the first error is returned, or an empty result if no
// extractor failed. A title found by an earlier extractor is kept.
func (e *FallbackExtractor) Extract(html string) (*wixbook.ExtractResult, error) {
	var (
		firstErr error
		title    string
	)
	for _, ext := range e.extractors {
		result, err := ext.Extract(html)
		if err != nil {
			if wixbook.ErrorCode(err) == wixbook.EINVALID {
				return nil, err
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if title == "" {
			title = result.Title
		}
		if strings.TrimSpace(result.ContentHTML) != "" {
			if result.Title == "" {
				result.Title = title
			}
			return result, nil
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return &wixbook.ExtractResult{Title: title}, nil
}
