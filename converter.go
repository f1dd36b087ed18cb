package wixbook

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Relative links are resolved against baseURL when it is not empty.
	Convert(html string, baseURL string) (string, error)
}
