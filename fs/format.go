// Package fs provides file-based storage for fetched chapters.
package fs

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/wixbook"
)

// Format names an output file format.
type Format string

// Supported output formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", wixbook.Errorf(wixbook.EINVALID, "unknown format %q (want html or markdown)", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatMarkdown {
		return "md"
	}
	return "html"
}

var reUnderscore = regexp.MustCompile(`_+`)

// Slug reduces s to lowercase letters, digits and single underscores.
func Slug(s string) string {
	s = strings.ToLower(s)

	repl := strings.NewReplacer(
		"-", "_", "—", "_", "–", "_", "•", "_",
		"/", "_", "\\", "_", ".", "_", " ", "_",
		"(", "", ")", "",
	)
	s = repl.Replace(s)

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}

	return strings.Trim(reUnderscore.ReplaceAllString(string(clean), "_"), "_")
}

// FileName returns the file name for a document: the 1-based position
// padded to three digits, then a slug of the title or, when the title
// has no usable characters, of the last URL path segment.
// Example: position 0, title "The Return" -> 001-the_return.html
func FileName(doc *wixbook.Document, format Format) string {
	slug := Slug(doc.Title)
	if slug == "" {
		slug = Slug(lastSegment(doc.SourceURL))
	}
	if slug == "" {
		slug = "chapter"
	}
	return fmt.Sprintf("%03d-%s.%s", doc.Position+1, slug, format.Ext())
}

func lastSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// FormatMarkdownDocument renders a document as markdown with YAML frontmatter.
// The body is converted from the document's HTML content.
func FormatMarkdownDocument(doc *wixbook.Document, conv wixbook.Converter) (string, error) {
	var body string
	if strings.TrimSpace(doc.Content) != "" {
		md, err := conv.Convert(doc.Content, doc.SourceURL)
		if err != nil {
			return "", err
		}
		body = md
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(doc.Title))
	b.WriteString("\nposition: ")
	b.WriteString(strconv.Itoa(doc.Position + 1))
	if !doc.FetchedAt.IsZero() {
		b.WriteString("\nfetched: ")
		b.WriteString(doc.FetchedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	if doc.Title != "" {
		b.WriteString("# ")
		b.WriteString(doc.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String(), nil
}
