package goquery_test

import (
	"testing"

	importer "github.com/chobbledotcom/site-importer"
	gq "github.com/chobbledotcom/site-importer/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	t.Parallel()

	t.Run("extracts from price table row", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Our Price:</th><td>&pound;599.00</td></tr></table>`
		assert.Equal(t, "£599.00", gq.Price(html))
	})

	t.Run("keeps thousand separators untouched", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Our Price:</th><td>&pound;1,549.00</td></tr></table>`
		assert.Equal(t, "£1,549.00", gq.Price(html))
	})

	t.Run("falls back to structured data", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">{"@type":"Product","name":"Basic System","offers":{"price":"539.00"}}</script>`
		assert.Equal(t, "£539.00", gq.Price(html))
	})

	t.Run("absent price yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, gq.Price(`<p>no price here</p>`))
	})

	t.Run("ignores unrelated table rows", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Installation:</th><td>&pound;100.00</td></tr></table>`
		assert.Empty(t, gq.Price(html))
	})
}

func TestProductName(t *testing.T) {
	t.Parallel()

	t.Run("prefers structured data name", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">{"@type":"Product","name":"Basic System &pound;539"}</script>
			<li class="breadcrumb-item active">Something Else</li>`
		assert.Equal(t, "Basic System £539", gq.ProductName(html))
	})

	t.Run("falls back to breadcrumb", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li class="breadcrumb-item active">Pet Package</li></ol>`
		assert.Equal(t, "Pet Package", gq.ProductName(html))
	})

	t.Run("absent name yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, gq.ProductName(`<p>nothing</p>`))
	})
}

func reviewTable(rows string) string {
	return `<div class="menu-heading px-2">Our Reviews!</div><table class="table table-striped">` + rows + `</table>`
}

func TestReviews(t *testing.T) {
	t.Parallel()

	t.Run("extracts name and whitespace-collapsed body", func(t *testing.T) {
		t.Parallel()

		html := reviewTable(`<tr><td><strong>Jane Smith</strong>
			<div class="diblock" itemprop="description">
				Fantastic   service
				and a great system.
			</div></td></tr>`)

		reviews := gq.Reviews(html)

		require.Len(t, reviews, 1)
		assert.Equal(t, importer.Review{
			Name: "Jane Smith",
			Body: "Fantastic service and a great system.",
		}, reviews[0])
	})

	t.Run("skips rows missing name or body", func(t *testing.T) {
		t.Parallel()

		html := reviewTable(`
			<tr><td><div class="diblock" itemprop="description">No name here.</div></td></tr>
			<tr><td><strong>Bob</strong></td></tr>
			<tr><td><strong>Carol</strong><div class="diblock" itemprop="description">Kept.</div></td></tr>`)

		reviews := gq.Reviews(html)

		require.Len(t, reviews, 1)
		assert.Equal(t, "Carol", reviews[0].Name)
	})

	t.Run("absent table yields empty non-nil slice", func(t *testing.T) {
		t.Parallel()

		reviews := gq.Reviews(`<p>no reviews</p>`)
		require.NotNil(t, reviews)
		assert.Empty(t, reviews)
	})
}

func TestProductImages(t *testing.T) {
	t.Parallel()

	t.Run("extracts og:image as header and gallery", func(t *testing.T) {
		t.Parallel()

		html := `<meta property="og:image" content="https://res.cloudinary.com/kbs/image/upload/v1/basic.webp">`
		images := gq.ProductImages(html)

		assert.Equal(t, "https://res.cloudinary.com/kbs/image/upload/v1/basic.webp", images.HeaderImage)
		assert.Equal(t, []string{"https://res.cloudinary.com/kbs/image/upload/v1/basic.webp"}, images.Gallery)
	})

	t.Run("absent tag yields zero value", func(t *testing.T) {
		t.Parallel()

		images := gq.ProductImages(`<p>none</p>`)
		assert.Empty(t, images.HeaderImage)
		assert.Empty(t, images.Gallery)
	})
}
