package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// productLinkRe matches the template's product-detail links as they appear
// on category pages, in both relative-path forms the mirror produces.
var productLinkRe = regexp.MustCompile(`^(?:\.\.)?/products/(.+?)\.php(?:\.html)?$`)

// CategoryName returns the category's display name from the active
// breadcrumb, or "".
func CategoryName(html string) string {
	return BreadcrumbText(html)
}

// CategoryProductLinks returns the product slugs linked from a category
// page, in first-seen order. Each product typically appears twice (an image
// link and a button link); duplicates within the page are dropped.
func CategoryProductLinks(html string) []string {
	var slugs []string

	doc := parse(html)
	if doc == nil {
		return slugs
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		m := productLinkRe.FindStringSubmatch(s.AttrOr("href", ""))
		if m == nil || seen[m[1]] {
			return
		}
		seen[m[1]] = true
		slugs = append(slugs, m[1])
	})

	return slugs
}
