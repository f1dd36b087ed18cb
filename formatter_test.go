package wixbook_test

import (
	"testing"

	"github.com/fwojciec/wixbook"
	"github.com/stretchr/testify/assert"
)

func TestFormatDocuments(t *testing.T) {
	t.Parallel()

	t.Run("numbers chapters by position", func(t *testing.T) {
		t.Parallel()

		docs := []*wixbook.Document{
			{Title: "The Harbor", SourceURL: "https://author.wixsite.com/serial/ch-3", Content: "The fog came in early.\n", Position: 2},
		}

		assert.Equal(t,
			"## 3. The Harbor\nSource: https://author.wixsite.com/serial/ch-3\n\nThe fog came in early.",
			wixbook.FormatDocuments(docs))
	})

	t.Run("uses source URL as heading when untitled", func(t *testing.T) {
		t.Parallel()

		docs := []*wixbook.Document{
			{SourceURL: "https://author.wixsite.com/serial/ch-2", Content: "Morning.", Position: 1},
		}

		assert.Equal(t, "## 2. https://author.wixsite.com/serial/ch-2\n\nMorning.", wixbook.FormatDocuments(docs))
	})

	t.Run("separates chapters with a blank line", func(t *testing.T) {
		t.Parallel()

		docs := []*wixbook.Document{
			{Title: "One", Content: "First."},
			{Title: "Two", Content: "Second.", Position: 1},
		}

		assert.Equal(t, "## 1. One\n\nFirst.\n\n## 2. Two\n\nSecond.", wixbook.FormatDocuments(docs))
	})

	t.Run("returns empty string for empty and nil slices", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wixbook.FormatDocuments([]*wixbook.Document{}))
		assert.Empty(t, wixbook.FormatDocuments(nil))
	})
}
