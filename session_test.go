package wixbook_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/wixbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	t.Parallel()

	chapters := []wixbook.Chapter{
		{SourceURL: "https://x.test/ch-1", Title: "Chapter 1"},
		{SourceURL: "https://x.test/ch-2", Title: "Chapter 2"},
		{SourceURL: "https://x.test/about", Title: "About"},
	}
	endpoints := map[string]string{
		"https://x.test/ch-1": "https://api.test/pages/p1.json",
		"https://x.test/ch-2": "https://api.test/pages/p2.json",
	}

	t.Run("resolves only discovered pages", func(t *testing.T) {
		t.Parallel()

		s := wixbook.NewSession(chapters, endpoints)

		u, ok := s.RESTURL("https://x.test/ch-1")
		require.True(t, ok)
		assert.Equal(t, "https://api.test/pages/p1.json", u)

		_, ok = s.RESTURL("https://x.test/about")
		assert.False(t, ok)

		_, ok = s.RESTURL("https://x.test/unknown")
		assert.False(t, ok)
		assert.Equal(t, 2, s.Endpoints())
	})

	t.Run("nil session resolves nothing", func(t *testing.T) {
		t.Parallel()

		var s *wixbook.Session

		_, ok := s.RESTURL("https://x.test/ch-1")
		assert.False(t, ok)
		assert.Empty(t, s.Title("https://x.test/ch-1"))
		assert.Empty(t, s.Chapters())
		assert.Zero(t, s.Len())
		assert.Zero(t, s.Endpoints())
	})

	t.Run("titles come from the chapter list", func(t *testing.T) {
		t.Parallel()

		s := wixbook.NewSession(chapters, endpoints)

		assert.Equal(t, "Chapter 2", s.Title("https://x.test/ch-2"))
		assert.Equal(t, "About", s.Title("https://x.test/about"))
		assert.Empty(t, s.Title("https://x.test/unknown"))
	})

	t.Run("later duplicate title wins", func(t *testing.T) {
		t.Parallel()

		s := wixbook.NewSession([]wixbook.Chapter{
			{SourceURL: "https://x.test/ch-1", Title: "Start"},
			{SourceURL: "https://x.test/ch-1", Title: "Chapter One"},
		}, nil)

		assert.Equal(t, "Chapter One", s.Title("https://x.test/ch-1"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("is isolated from caller mutations", func(t *testing.T) {
		t.Parallel()

		in := []wixbook.Chapter{{SourceURL: "https://x.test/a", Title: "A"}}
		ep := map[string]string{"https://x.test/a": "https://api.test/a.json"}
		s := wixbook.NewSession(in, ep)

		in[0].Title = "changed"
		ep["https://x.test/a"] = "https://evil.test"
		out := s.Chapters()
		out[0].SourceURL = "changed"

		assert.Equal(t, "A", s.Chapters()[0].Title)
		assert.Equal(t, "https://x.test/a", s.Chapters()[0].SourceURL)
		u, _ := s.RESTURL("https://x.test/a")
		assert.Equal(t, "https://api.test/a.json", u)
	})

	t.Run("supports concurrent reads", func(t *testing.T) {
		t.Parallel()

		s := wixbook.NewSession(chapters, endpoints)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for _, ch := range s.Chapters() {
					_ = s.Title(ch.SourceURL)
					_, _ = s.RESTURL(ch.SourceURL)
				}
			}()
		}
		wg.Wait()
	})
}
