package crawl_test

import (
	"testing"

	"github.com/fwojciec/wixbook/crawl"
	"github.com/stretchr/testify/assert"
)

func TestDisplayURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"shows path only", "https://author.wixsite.com/tides/chapter-1", 40, "/tides/chapter-1"},
		{"keeps tail of long path", "https://author.wixsite.com/tides/chapter-one-hundred", 16, "...r-one-hundred"},
		{"root path", "https://author.wixsite.com", 10, "/"},
		{"tiny limit keeps tail", "https://a.com/abcdef", 2, "ef"},
		{"zero limit", "https://a.com/x", 0, ""},
		{"negative limit", "https://a.com/x", -1, ""},
		{"non-URL input", "chapter-1", 20, "chapter-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := crawl.DisplayURL(tt.url, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), max(tt.maxLen, 0))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", crawl.FormatBytes(512))
	assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
}
