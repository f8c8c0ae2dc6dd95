package convert

import (
	"os"
	"path/filepath"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/goquery"
)

const (
	defaultHomeTitle       = "MyAlarm Security | Burglar Alarms & CCTV Systems"
	defaultHomeDescription = "Professional burglar alarm and CCTV installation across South East London and Kent."
)

// SpecialPages generates the fixed pages the new site needs that have no
// one-to-one source page: the home page, listing indexes, and utility pages.
// The home page pulls its metadata from the mirrored index.html when present.
func SpecialPages(export *importer.Export, siteDir string, categoriesInNav bool) Result {
	pages := []struct {
		name     string
		generate func() *importer.ContentItem
	}{
		{"home.md", func() *importer.ContentItem { return homePage(siteDir) }},
		{"products.md", func() *importer.ContentItem { return productsPage(categoriesInNav) }},
		{"service-areas.md", func() *importer.ContentItem { return serviceAreasPage(categoriesInNav) }},
		{"not-found.md", notFoundPage},
		{"thank-you.md", thankYouPage},
	}

	result := Result{Total: len(pages)}
	for _, page := range pages {
		item := page.generate()
		item.Filename = page.name
		item.Slug = importer.SlugFromFilename(page.name)
		export.Add(importer.TypePage, item)
		result.Successful++
	}
	return result
}

func homePage(siteDir string) *importer.ContentItem {
	title := defaultHomeTitle
	description := defaultHomeDescription

	if data, err := os.ReadFile(filepath.Join(siteDir, "index.html")); err == nil {
		meta := goquery.Metadata(string(data))
		if meta.Title != "" {
			title = meta.Title
		}
		if meta.MetaDescription != "" {
			description = meta.MetaDescription
		}
	}

	return &importer.ContentItem{
		Frontmatter: "---\n" +
			"meta_title: \"" + title + "\"\n" +
			"meta_description: \"" + description + "\"\n" +
			"permalink: \"/\"\n" +
			"layout: \"home.html\"\n" +
			"eleventyNavigation:\n" +
			"  key: Home\n" +
			"  order: 1\n" +
			"---",
		Content: "# " + title,
	}
}

func productsPage(categoriesInNav bool) *importer.ContentItem {
	fm := "---\n" +
		"meta_title: \"Security Packages | Burglar Alarms & CCTV | MyAlarm Security\"\n" +
		"meta_description: \"Browse our complete range of security packages: burglar alarms, CCTV systems, and combined packages. Professional installation across South East London and Kent.\"\n" +
		"permalink: \"/products/\"\n" +
		"layout: products"
	if !categoriesInNav {
		fm += "\neleventyNavigation:\n  key: Products\n  order: 3"
	}
	fm += "\n---"

	return &importer.ContentItem{
		Frontmatter: fm,
		Content: "# Our Security Packages\n\n" +
			"We offer a comprehensive range of security packages designed to protect your home or business.",
	}
}

func serviceAreasPage(categoriesInNav bool) *importer.ContentItem {
	fm := "---\n" +
		"meta_title: \"Service Areas | Security Installation Across South East London & Kent\"\n" +
		"meta_description: \"We provide professional burglar alarm and CCTV installation across South East London and Kent including Bexley, Dartford, Bromley, Orpington, Greenwich and surrounding areas.\"\n" +
		"permalink: \"/service-areas/\"\n" +
		"layout: service-areas.html"
	if !categoriesInNav {
		fm += "\neleventyNavigation:\n  key: Service Areas\n  order: 4"
	}
	fm += "\n---"

	return &importer.ContentItem{
		Frontmatter: fm,
		Content: "# Service Areas\n\n" +
			"We provide professional security installation and maintenance services across South East London and Kent.",
	}
}

func notFoundPage() *importer.ContentItem {
	return &importer.ContentItem{
		Frontmatter: "---\n" +
			"meta_description:\n" +
			"meta_title: Not Found\n" +
			"no_index: true\n" +
			"permalink: /not_found.html\n" +
			"---",
		Content: "# Not Found\n\n" +
			"## Page Not Found\n\n" +
			"Whoops! It looks like you followed an invalid link - **[click here to go back to the homepage](/)**.",
	}
}

func thankYouPage() *importer.ContentItem {
	return &importer.ContentItem{
		Frontmatter: "---\n" +
			"meta_description:\n" +
			"meta_title: Thank You\n" +
			"navigationParent: Contact\n" +
			"no_index: true\n" +
			"---",
		Content: "# Thank You\n\n" +
			"## Thank You\n\n" +
			"Your message has been sent - we will be in touch.",
	}
}

// BlogIndex adds the blog listing page. Posts are rendered by the archive
// layout, so the body is only a short introduction.
func BlogIndex(export *importer.Export) Result {
	item := &importer.ContentItem{
		Slug:     "blog",
		Filename: "blog.md",
		Frontmatter: "---\n" +
			"meta_title: \"Latest Blog Posts | MyAlarm Security\"\n" +
			"meta_description: \"All of the latest news from MyAlarm Security about home security, burglar alarms, and CCTV systems.\"\n" +
			"permalink: \"/blog/\"\n" +
			"layout: news-archive.html\n" +
			"eleventyNavigation:\n" +
			"  key: News\n" +
			"  order: 5\n" +
			"---",
		Content: "# Latest Blog Posts\n\n" +
			"All of the latest news from MyAlarm Security and you can also find more news on our [Facebook Page](https://www.facebook.com/MyAlarm)!",
	}
	export.Add(importer.TypePage, item)
	return Result{Successful: 1, Total: 1}
}

// ReviewsIndexFallback adds a minimal reviews page for sites whose mirror
// has no reviews page to convert.
func ReviewsIndexFallback(export *importer.Export) Result {
	item := &importer.ContentItem{
		Slug:     "reviews",
		Filename: "reviews.md",
		Frontmatter: "---\n" +
			"meta_description:\n" +
			"meta_title: Reviews\n" +
			"permalink: /reviews/\n" +
			"layout: reviews\n" +
			"---",
		Content: "# Reviews",
	}
	export.Add(importer.TypePage, item)
	return Result{Successful: 1, Total: 1}
}
