package wixbook

import (
	"strconv"
	"strings"
)

// FormatDocuments renders chapters as one plain-text listing. Each
// chapter gets a numbered heading from its position and title (or source
// URL when untitled), its source line, and its content. Chapters are
// separated by blank lines.
func FormatDocuments(docs []*Document) string {
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		heading := doc.Title
		if heading == "" {
			heading = doc.SourceURL
		}
		b.WriteString("## ")
		b.WriteString(strconv.Itoa(doc.Position + 1))
		b.WriteString(". ")
		b.WriteString(heading)
		if doc.Title != "" && doc.SourceURL != "" {
			b.WriteString("\nSource: ")
			b.WriteString(doc.SourceURL)
		}
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(doc.Content))
	}
	return b.String()
}
