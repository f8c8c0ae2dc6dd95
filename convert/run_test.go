package convert_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/convert"
	"github.com/chobbledotcom/site-importer/mock"
)

// buildSite lays out a minimal mirrored site: a page, a contact page, a blog
// post, two products listed by one category, and a reviews page.
func buildSite(t *testing.T) string {
	t.Helper()
	siteDir := t.TempDir()

	writeFile(t, siteDir, "index.html",
		`<html><head><title>MyAlarm Security | Home</title><meta name="description" content="Alarms."></head><body></body></html>`)
	writeFile(t, siteDir, "contact.php.html",
		`<html><head><title>Contact Us</title></head><body><h1>Contact Us</h1></body></html>`)
	writeFile(t, siteDir, "reviews.php.html",
		`<html><head><title>Reviews</title></head><body><h1>Reviews</h1></body></html>`)

	writeFile(t, filepath.Join(siteDir, "pages"), "about-us.php.html",
		`<html><head><title>About Us</title></head><body><h1>About Us</h1></body></html>`)

	writeFile(t, filepath.Join(siteDir, "blog"), "new-alarm-launch.php.html",
		`<html><head><title>New Alarm Launch</title></head><body><h1>New Alarm Launch</h1></body></html>`)

	productPage := func(name string) string {
		return `<html><head><title>` + name + `</title></head><body>
<ol><li class="breadcrumb-item active">` + name + `</li></ol>
<h1>` + name + `</h1>
<table><tr><th>Our Price:</th><td>&pound;599.00</td></tr></table>
<div class="menu-heading">Our Reviews!</div>
<table><tr><td><strong>Jane Smith</strong><div itemprop="description">Great kit.</div></td></tr></table>
</body></html>`
	}
	writeFile(t, filepath.Join(siteDir, "products"), "widget-500.php.html", productPage("Widget 500"))
	writeFile(t, filepath.Join(siteDir, "products"), "widget-900.php.html", productPage("Widget 900"))

	writeFile(t, filepath.Join(siteDir, "categories"), "alarms.php.html",
		`<html><head><title>Alarms</title></head><body>
<ol><li class="breadcrumb-item active">Alarms</li></ol>
<h1>Alarms</h1>
<a href="/products/widget-500.php">More Details</a>
<a href="/products/widget-900.php">More Details</a>
</body></html>`)

	return siteDir
}

func TestRun(t *testing.T) {
	t.Parallel()

	converter := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return "# Converted\n\nBody text.", nil
		},
	}
	runner := newRunner(t, converter)
	siteDir := buildSite(t)
	faviconDir := filepath.Join(t.TempDir(), "favicon")

	tracker, err := convert.Run(context.Background(), runner, convert.RunConfig{
		SiteDir:     siteDir,
		FaviconDir:  faviconDir,
		DefaultDate: "2020-01-01",
	})
	require.NoError(t, err)
	assert.Zero(t, tracker.TotalFailed())

	export := runner.Export

	// about-us, contact, 5 special pages, blog index, reviews page.
	assert.Len(t, export.Pages, 9)
	assert.Len(t, export.News, 1)
	assert.Len(t, export.Products, 2)
	assert.Len(t, export.Categories, 1)

	// One reviewer across both products collapses to one review record.
	require.Len(t, export.Reviews, 1)
	review := export.Reviews[0]
	assert.Equal(t, "jane-smith", review.Slug)
	assert.Contains(t, review.Frontmatter, "products: [\"products/widget-500.md\", \"products/widget-900.md\"]")

	// Products carry their category and listing order.
	var widget900 *importer.ContentItem
	for _, p := range export.Products {
		if p.Slug == "widget-900" {
			widget900 = p
		}
	}
	require.NotNil(t, widget900)
	assert.Contains(t, widget900.Frontmatter, "categories: [\"categories/alarms.md\"]")
	assert.Contains(t, widget900.Frontmatter, "order: 2")

	// Blog posts get the default date when the post has none.
	assert.Equal(t, "2020-01-01-new-alarm-launch.md", export.News[0].Filename)
	assert.Contains(t, export.News[0].Frontmatter, "date: 2020-01-01")

	// Every item can be validated and no filename repeats per collection.
	for _, collection := range export.Collections() {
		seen := map[string]bool{}
		for _, item := range collection.Items {
			require.NoError(t, item.Validate())
			assert.False(t, seen[item.Filename], "duplicate filename %s in %s", item.Filename, collection.Name)
			seen[item.Filename] = true
		}
	}
}

func TestRun_MissingSections(t *testing.T) {
	t.Parallel()

	// A site with no blog, products, or categories still produces the
	// fixed pages.
	siteDir := t.TempDir()
	writeFile(t, siteDir, "index.html",
		`<html><head><title>Home</title></head><body></body></html>`)

	converter := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return "# Converted", nil
		},
	}
	runner := newRunner(t, converter)

	tracker, err := convert.Run(context.Background(), runner, convert.RunConfig{
		SiteDir:     siteDir,
		DefaultDate: "2020-01-01",
	})
	require.NoError(t, err)
	assert.Zero(t, tracker.TotalFailed())

	// 5 special pages, blog index, reviews fallback.
	assert.Len(t, runner.Export.Pages, 7)
	assert.Empty(t, runner.Export.Products)

	var filenames []string
	for _, p := range runner.Export.Pages {
		filenames = append(filenames, p.Filename)
	}
	assert.Contains(t, filenames, "blog.md")
	assert.Contains(t, filenames, "reviews.md")
}
