package htmltomarkdown_test

import (
	"testing"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements importer.Converter at compile time.
var _ importer.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><h2>Subtitle</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Visit <a href="https://example.com">Example</a> now.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("strips span tags before conversion", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><span style="color:red">Alarm</span> systems</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Alarm systems")
		assert.NotContains(t, md, "span")
	})

	t.Run("decodes currency entities", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>From &pound;599.00</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "£599.00")
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, importer.EINVALID, importer.ErrorCode(err))
	})
}
