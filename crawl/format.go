package crawl

import (
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
)

// contentHash fingerprints chapter content so re-fetches can be compared.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// DisplayURL shortens a chapter URL for progress output. Chapters of a
// work share scheme and host, so only the path is shown, cut from the
// left to keep the distinguishing tail.
func DisplayURL(rawURL string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	s := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		s = u.Path
		if s == "" {
			s = "/"
		}
	}

	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[len(s)-maxLen:]
	}
	return "..." + s[len(s)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
