package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/wixbook"
	"github.com/fwojciec/wixbook/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chapterPage = `<!DOCTYPE html>
<html>
<head>
<title>Chapter 4: The Lighthouse - Salt and Stone</title>
<meta property="og:title" content="Chapter 4: The Lighthouse">
</head>
<body>
<nav class="serial-nav">
<a href="/toc">Table of Contents</a>
<a href="/ch-3">Previous</a>
<a href="/ch-5">Next</a>
</nav>
<article>
<h1>Chapter 4: The Lighthouse</h1>
<p>The keeper had not spoken to anyone in eleven days, and the silence had become a kind of weather.</p>
<p>When the boat finally appeared on the horizon he did not wave, because he was no longer sure it was real.</p>
<p>By evening the rowers had dragged it onto the shingle and were asking for water.</p>
</article>
<footer><p>Copyright 2026 Salt and Stone Press</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(chapterPage)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "The Lighthouse")
	})

	t.Run("extracts chapter prose", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(chapterPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "a kind of weather")
		assert.Contains(t, result.ContentHTML, "asking for water")
	})

	t.Run("removes navigation and footer", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(chapterPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "serial-nav")
		assert.NotContains(t, result.ContentHTML, "Salt and Stone Press")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")

		assert.Equal(t, wixbook.EINVALID, wixbook.ErrorCode(err))
	})
}
