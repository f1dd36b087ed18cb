package fs_test

import (
	"testing"

	"github.com/fwojciec/wixbook"
	"github.com/fwojciec/wixbook/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Chapter 1", "chapter_1"},
		{"Chapter 1: The Return", "chapter_1_the_return"},
		{"Part II — Ashes (Revised)", "part_ii_ashes_revised"},
		{"  ...  ", ""},
		{"Épilogue", "épilogue"},
		{"a/b\\c.d", "a_b_c_d"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.Slug(tt.in))
		})
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	t.Run("uses position and title", func(t *testing.T) {
		t.Parallel()

		doc := &wixbook.Document{Title: "The Return", Position: 11, SourceURL: "https://a.wixsite.com/s/x"}

		assert.Equal(t, "012-the_return.md", fs.FileName(doc, fs.FormatMarkdown))
	})

	t.Run("falls back to last path segment", func(t *testing.T) {
		t.Parallel()

		doc := &wixbook.Document{SourceURL: "https://a.wixsite.com/serial/chapter-seven/"}

		assert.Equal(t, "001-chapter_seven.html", fs.FileName(doc, fs.FormatHTML))
	})

	t.Run("falls back to placeholder", func(t *testing.T) {
		t.Parallel()

		doc := &wixbook.Document{Title: "!!!", SourceURL: "https://a.wixsite.com/", Position: 4}

		assert.Equal(t, "005-chapter.html", fs.FileName(doc, fs.FormatHTML))
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]fs.Format{
		"":         fs.FormatHTML,
		"html":     fs.FormatHTML,
		"MD":       fs.FormatMarkdown,
		"markdown": fs.FormatMarkdown,
	} {
		got, err := fs.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := fs.ParseFormat("epub")
	assert.Equal(t, wixbook.EINVALID, wixbook.ErrorCode(err))
}
