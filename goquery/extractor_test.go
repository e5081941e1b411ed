package goquery_test

import (
	"testing"

	"github.com/fwojciec/unitext"
	"github.com/fwojciec/unitext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure SelectorExtractor implements unitext.ContentExtractor at compile time.
var _ unitext.ContentExtractor = (*goquery.SelectorExtractor)(nil)

const page = `<!DOCTYPE html>
<html>
<head>
<title>Plain Title</title>
</head>
<body>
<nav><a href="/">Home</a></nav>
<main>
<section class="entry"><h2>First</h2>
<p>Alpha   text
spread over lines.</p><script>var tracking = 1;</script></section>
<section class="entry"><h2>Second</h2>
<p>Beta text.</p></section>
</main>
<footer>Footer</footer>
</body>
</html>`

func TestSelectorExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns matching elements in document order", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewSelectorExtractor("section.entry").Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "First Alpha text spread over lines.\n\nSecond Beta text.", result.ContentText)
		assert.Contains(t, result.ContentHTML, `<section class="entry"><h2>First</h2>`)
		assert.Contains(t, result.ContentHTML, "<h2>Second</h2>")
		assert.NotContains(t, result.ContentHTML, "Footer")
	})

	t.Run("drops scripts inside the selection", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewSelectorExtractor("main").Extract(page)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentText, "tracking")
		assert.NotContains(t, result.ContentHTML, "<script>")
	})

	t.Run("uses the document title", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewSelectorExtractor("main").Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Plain Title", result.Title)
	})

	t.Run("prefers the Open Graph title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Plain</title><meta property="og:title" content="Social Title"></head><body><p>x</p></body></html>`

		result, err := goquery.NewSelectorExtractor("p").Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Social Title", result.Title)
	})

	t.Run("no match yields empty content", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewSelectorExtractor("article").Extract(page)

		require.NoError(t, err)
		assert.Empty(t, result.ContentText)
		assert.Empty(t, result.ContentHTML)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSelectorExtractor("main").Extract(" ")

		require.Error(t, err)
		assert.Equal(t, unitext.EINVALID, unitext.ErrorCode(err))
	})

	t.Run("rejects empty selector", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSelectorExtractor("").Extract(page)

		require.Error(t, err)
		assert.Equal(t, unitext.EINVALID, unitext.ErrorCode(err))
	})
}
