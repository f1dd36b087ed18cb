package mock

import "github.com/fwojciec/wixbook"

var _ wixbook.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wixbook.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wixbook.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*wixbook.ExtractResult, error) {
	return e.ExtractFn(html)
}
