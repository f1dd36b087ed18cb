package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wixbook"
)

// Ensure ScriptExtractor implements wixbook.ScriptExtractor at compile time.
var _ wixbook.ScriptExtractor = (*ScriptExtractor)(nil)

// ScriptExtractor returns the raw text of inline scripts.
type ScriptExtractor struct{}

// NewScriptExtractor creates a new ScriptExtractor.
func NewScriptExtractor() *ScriptExtractor {
	return &ScriptExtractor{}
}

// Scripts returns the text of every script element with a body, in
// document order. External scripts (src only) are skipped.
func (e *ScriptExtractor) Scripts(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wixbook.Errorf(wixbook.EINVALID, "failed to parse HTML: %v", err)
	}

	var scripts []string
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if strings.TrimSpace(text) == "" {
			return
		}
		scripts = append(scripts, text)
	})
	return scripts, nil
}
