package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/markdown"
)

func TestExtractMainContent(t *testing.T) {
	t.Parallel()

	t.Run("starts at first heading", func(t *testing.T) {
		t.Parallel()

		input := "menu line\nanother menu line\n# About Us\n\nWe install alarms."
		got := markdown.ExtractMainContent(input, importer.TypePage)

		assert.Equal(t, "# About Us\n\nWe install alarms.", got)
	})

	t.Run("stops at contact form fields", func(t *testing.T) {
		t.Parallel()

		input := "# Contact\n\nGet in touch.\n\n**Name: \\*** required\n\n**Message:**"
		got := markdown.ExtractMainContent(input, importer.TypePage)

		assert.Equal(t, "# Contact\n\nGet in touch.", got)
	})

	t.Run("stops at footer", func(t *testing.T) {
		t.Parallel()

		input := "# Page\n\nBody text.\n\nfooter section\nCopyright"
		got := markdown.ExtractMainContent(input, importer.TypePage)

		assert.Equal(t, "# Page\n\nBody text.", got)
	})

	t.Run("suppresses reviews section up to prices heading", func(t *testing.T) {
		t.Parallel()

		input := "# Widget 500\n\nIntro.\n\n## Our Reviews!\n\nGreat product - Dave\n\n## Our Prices!\n\nFrom £99."
		got := markdown.ExtractMainContent(input, importer.TypeProduct)

		assert.NotContains(t, got, "Great product")
		assert.Contains(t, got, "Our Prices!")
		assert.Contains(t, got, "From £99.")
	})

	t.Run("blog content may start at posted by line", func(t *testing.T) {
		t.Parallel()

		input := "nav stuff\nPosted By: Admin\n\nBody paragraph."
		got := markdown.ExtractMainContent(input, importer.TypeBlog)

		require.NotEmpty(t, got)
		assert.Contains(t, got, "Body paragraph.")
	})

	t.Run("skips line after navbar marker", func(t *testing.T) {
		t.Parallel()

		input := "# Title\n\nnavbar wrapper\nHome | Products | Contact\nReal body."
		got := markdown.ExtractMainContent(input, importer.TypePage)

		assert.NotContains(t, got, "Home | Products")
		assert.Contains(t, got, "Real body.")
	})
}

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("removes posted by lines", func(t *testing.T) {
		t.Parallel()

		got := markdown.Clean("Posted By: Admin\nReal content.", importer.TypeBlog)

		assert.Equal(t, "Real content.", got)
	})

	t.Run("removes attribute blocks and pandoc divs", func(t *testing.T) {
		t.Parallel()

		input := "::: {.container}\nSome **text**{.bold} here.\n:::"
		got := markdown.Clean(input, importer.TypePage)

		assert.Equal(t, "Some **text** here.", got)
	})

	t.Run("collapses emphasis runs", func(t *testing.T) {
		t.Parallel()

		got := markdown.Clean("****Bold****", importer.TypePage)

		assert.Equal(t, "**Bold**", got)
	})

	t.Run("rewrites relative product links", func(t *testing.T) {
		t.Parallel()

		got := markdown.Clean("See [the alarm](../products/alarm-1.php.html) today.", importer.TypePage)

		assert.Equal(t, "See [the alarm](/products/alarm-1/) today.", got)
	})

	t.Run("drops broken cloudinary image lines", func(t *testing.T) {
		t.Parallel()

		input := "Before.\n![](https://res.cloudinary.com/kbs/image/upload/)\nAfter."
		got := markdown.Clean(input, importer.TypePage)

		assert.NotContains(t, got, "cloudinary")
		assert.Contains(t, got, "Before.")
		assert.Contains(t, got, "After.")
	})

	t.Run("collapses blank line runs", func(t *testing.T) {
		t.Parallel()

		got := markdown.Clean("One.\n\n\n\nTwo.", importer.TypePage)

		assert.Equal(t, "One.\n\nTwo.", got)
	})

	t.Run("category pages lose the results grid", func(t *testing.T) {
		t.Parallel()

		input := "# Alarms\n\nIntro text.\n\n#### Showing 12 results\n\nproduct card\nproduct card"
		got := markdown.Clean(input, importer.TypeCategory)

		assert.Equal(t, "# Alarms\n\nIntro text.", got)
	})

	t.Run("blog posts lose level four headings", func(t *testing.T) {
		t.Parallel()

		input := "# Post\n\n#### Home / Blog / Post\n\nBody."
		got := markdown.Clean(input, importer.TypeBlog)

		assert.NotContains(t, got, "Home / Blog")
		assert.Contains(t, got, "Body.")
	})
}

func TestProcess(t *testing.T) {
	t.Parallel()

	t.Run("splices specification table into product content", func(t *testing.T) {
		t.Parallel()

		html := `<div class="menu-heading px-2">Product Specifications!</div><table>
			<tr><td>Colour</td><td>White</td></tr>
			<tr><td>Warranty</td><td>2 years</td></tr>
		</table>`
		md := "# Widget 500\n\nIntro.\n\nProduct Specifications! placeholder text\n\nOur Prices! more placeholder\n\n-----\n\nOutro."

		got := markdown.Process(md, importer.TypeProduct, html)

		assert.Contains(t, got, "**Colour** White")
		assert.Contains(t, got, "**Warranty** 2 years")
		assert.NotContains(t, got, "placeholder")
		assert.Contains(t, got, "Outro.")
	})

	t.Run("matches placeholder headings case-insensitively", func(t *testing.T) {
		t.Parallel()

		html := `<div class="menu-heading px-2">Product Specifications!</div><table>
			<tr><td>Colour</td><td>White</td></tr>
		</table>`
		md := "# Widget 500\n\nIntro.\n\nPRODUCT SPECIFICATIONS! placeholder text\n\nour prices! more placeholder\n\n-----\n\nOutro."

		got := markdown.Process(md, importer.TypeProduct, html)

		assert.Contains(t, got, "**Colour** White")
		assert.NotContains(t, got, "placeholder")
		assert.Contains(t, got, "Outro.")
	})

	t.Run("non-product content passes through untouched by splicing", func(t *testing.T) {
		t.Parallel()

		md := "# Page\n\nProduct Specifications! is mentioned in passing."
		got := markdown.Process(md, importer.TypePage, "<table></table>")

		assert.Contains(t, got, "mentioned in passing")
	})
}
