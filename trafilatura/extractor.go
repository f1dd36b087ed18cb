// Package trafilatura extracts chapter text from ordinary HTML pages with
// markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/wixbook"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wixbook.Extractor at compile time.
var _ wixbook.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main text of a chapter page. Reader comments are
// left out. When trafilatura yields plain text but no node tree, the
// paragraphs of that text are wrapped in <p> elements.
func (e *Extractor) Extract(rawHTML string) (*wixbook.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wixbook.Errorf(wixbook.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, wixbook.WrapError(wixbook.ECONTENT, err, "extract content")
	}

	var contentHTML string
	switch {
	case result.ContentNode != nil:
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, wixbook.WrapError(wixbook.ECONTENT, err, "render content")
		}
	case strings.TrimSpace(result.ContentText) != "":
		contentHTML = paragraphs(result.ContentText)
	}

	return &wixbook.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// paragraphs wraps each blank-line separated block of text in <p>.
func paragraphs(text string) string {
	var b strings.Builder
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(block))
		b.WriteString("</p>")
	}
	return b.String()
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
