package generic_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/wixbook"
	"github.com/fwojciec/wixbook/generic"
	"github.com/fwojciec/wixbook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractor(result *wixbook.ExtractResult, err error) *mock.Extractor {
	return &mock.Extractor{ExtractFn: func(string) (*wixbook.ExtractResult, error) { return result, err }}
}

func TestFallbackExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty result", func(t *testing.T) {
		t.Parallel()

		e := generic.NewFallbackExtractor(
			extractor(&wixbook.ExtractResult{Title: "A", ContentHTML: "<p>a</p>"}, nil),
			extractor(&wixbook.ExtractResult{Title: "B", ContentHTML: "<p>b</p>"}, nil),
		)

		result, err := e.Extract("<html/>")

		require.NoError(t, err)
		assert.Equal(t, "<p>a</p>", result.ContentHTML)
	})

	t.Run("falls through empty content and keeps earlier title", func(t *testing.T) {
		t.Parallel()

		e := generic.NewFallbackExtractor(
			extractor(&wixbook.ExtractResult{Title: "From Meta", ContentHTML: "  "}, nil),
			extractor(&wixbook.ExtractResult{ContentHTML: "<p>b</p>"}, nil),
		)

		result, err := e.Extract("<html/>")

		require.NoError(t, err)
		assert.Equal(t, "From Meta", result.Title)
		assert.Equal(t, "<p>b</p>", result.ContentHTML)
	})

	t.Run("falls through errors", func(t *testing.T) {
		t.Parallel()

		e := generic.NewFallbackExtractor(
			extractor(nil, errors.New("boom")),
			extractor(&wixbook.ExtractResult{ContentHTML: "<p>b</p>"}, nil),
		)

		result, err := e.Extract("<html/>")

		require.NoError(t, err)
		assert.Equal(t, "<p>b</p>", result.ContentHTML)
	})

	t.Run("returns first error when all fail", func(t *testing.T) {
		t.Parallel()

		first := errors.New("first")
		e := generic.NewFallbackExtractor(extractor(nil, first), extractor(nil, errors.New("second")))

		_, err := e.Extract("<html/>")

		assert.ErrorIs(t, err, first)
	})

	t.Run("stops on invalid input", func(t *testing.T) {
		t.Parallel()

		called := false
		e := generic.NewFallbackExtractor(
			extractor(nil, wixbook.Errorf(wixbook.EINVALID, "empty HTML input")),
			&mock.Extractor{ExtractFn: func(string) (*wixbook.ExtractResult, error) {
				called = true
				return nil, nil
			}},
		)

		_, err := e.Extract("")

		assert.Equal(t, wixbook.EINVALID, wixbook.ErrorCode(err))
		assert.False(t, called)
	})
}
