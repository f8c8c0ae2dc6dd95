// Package frontmatter synthesizes per-type YAML frontmatter blocks for
// imported content. Field order and quoting are fixed so output is stable
// across runs.
package frontmatter

import (
	"fmt"
	"strings"

	importer "github.com/chobbledotcom/site-importer"
)

type navEntry struct {
	Key   string
	Order int
}

type pageConfig struct {
	Layout string
	Nav    *navEntry
}

// pageConfigs carries per-page layout and navigation overrides keyed by
// slug. Pages not listed get the default page layout and no navigation.
var pageConfigs = map[string]pageConfig{
	"about-us": {Nav: &navEntry{Key: "About", Order: 2}},
	"contact":  {Layout: "contact.html", Nav: &navEntry{Key: "Contact", Order: 99}},
	"reviews":  {Layout: "reviews.html", Nav: &navEntry{Key: "Reviews", Order: 98}},
}

// rootPages are published at the site root instead of under /pages/.
var rootPages = map[string]bool{
	"contact": true,
	"reviews": true,
}

// productOrders pins the display order of known products. Anything not
// listed falls back to its category scan rank, then to DefaultProductOrder.
var productOrders = map[string]int{
	"basic-system-539":    1,
	"standard-system-599": 2,
	"pet-package-849":     3,
	"cctv-package-1-999":  4,
	"cctv-package-2-1199-24hr-colour-cctv":                             5,
	"ultimate-package-cctv-intruder-alarm-system-1549":                 6,
	"supreme-package-24hr-colour-cctv-plus-intruder-alarm-system-1749": 7,
	"servicing-and-repairs":                                            99,
}

// DefaultProductOrder is used when a product has no pinned order and never
// appeared in a category listing.
const DefaultProductOrder = 50

// ProductOrder resolves a product's display order: the pinned table wins,
// then the category scan rank, then the default.
func ProductOrder(slug string, scanRank int, scanned bool) int {
	if order, ok := productOrders[slug]; ok {
		return order
	}
	if scanned {
		return scanRank
	}
	return DefaultProductOrder
}

// PagePermalink returns the published URL path for a page slug.
func PagePermalink(slug string) string {
	if rootPages[slug] {
		return "/" + slug + "/"
	}
	return "/pages/" + slug + "/"
}

// Page builds frontmatter for a static page.
func Page(meta importer.Metadata, slug string) string {
	config := pageConfigs[slug]
	layout := config.Layout
	if layout == "" {
		layout = "page"
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "meta_title: %q\n", meta.Title)
	fmt.Fprintf(&b, "meta_description: %q\n", meta.MetaDescription)
	fmt.Fprintf(&b, "permalink: %q\n", PagePermalink(slug))
	fmt.Fprintf(&b, "layout: %s", layout)
	if config.Nav != nil {
		writeNav(&b, config.Nav.Key, config.Nav.Order)
	}
	b.WriteString("\n---")
	return b.String()
}

// Blog builds frontmatter for a news post. localImage, when non-empty, is
// the relocated header image and becomes the post's gallery.
func Blog(meta importer.Metadata, slug, date, localImage string) string {
	title := meta.HeaderText
	if title == "" {
		title = strings.ReplaceAll(slug, "-", " ")
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "date: %s\n", date)
	fmt.Fprintf(&b, "meta_title: %q\n", meta.Title)
	fmt.Fprintf(&b, "meta_description: %q\n", meta.MetaDescription)
	fmt.Fprintf(&b, "permalink: %q", "/blog/"+slug+"/")
	if localImage != "" {
		fmt.Fprintf(&b, "\ngallery:\n  - %q", localImage)
	}
	b.WriteString("\n---")
	return b.String()
}

// Product builds frontmatter for a product page.
func Product(meta importer.Metadata, slug, price, name string, categories []string, headerImage string, order int) string {
	title := name
	if title == "" {
		title = meta.Title
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "price: %q\n", price)
	fmt.Fprintf(&b, "order: %d\n", order)
	fmt.Fprintf(&b, "meta_title: %q\n", meta.Title)
	fmt.Fprintf(&b, "meta_description: %q\n", meta.MetaDescription)
	fmt.Fprintf(&b, "permalink: %q\n", "/products/"+slug+"/")
	fmt.Fprintf(&b, "categories: %s\n", quotedList(categories))
	b.WriteString("features: []")
	if headerImage != "" {
		fmt.Fprintf(&b, "\ngallery: [%q]", headerImage)
	}
	b.WriteString("\n---")
	return b.String()
}

// Category builds frontmatter for a category page. When inNav is true the
// category joins site navigation after the fixed entries, ordered by its
// position in the run.
func Category(meta importer.Metadata, slug string, index int, inNav bool) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", meta.Title)
	fmt.Fprintf(&b, "meta_title: %q\n", meta.Title)
	fmt.Fprintf(&b, "meta_description: %q\n", meta.MetaDescription)
	fmt.Fprintf(&b, "permalink: %q\n", "/categories/"+slug+"/")
	b.WriteString("featured: false")
	if inNav {
		writeNav(&b, meta.Title, 20+index)
	}
	b.WriteString("\n---")
	return b.String()
}

// Review builds frontmatter for an accumulated review record.
func Review(record *importer.ReviewRecord) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "name: %q\n", record.Name)
	fmt.Fprintf(&b, "products: %s\n", quotedList(record.Products))
	b.WriteString("rating: 5\n---")
	return b.String()
}

func writeNav(b *strings.Builder, key string, order int) {
	fmt.Fprintf(b, "\neleventyNavigation:\n  key: %s\n  order: %d", key, order)
}

func quotedList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
