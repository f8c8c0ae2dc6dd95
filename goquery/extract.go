// Package goquery implements the template-specific field extractors for the
// site's fixed family of page templates.
//
// Extractors never return errors: a missing pattern is a normal outcome and
// yields an empty sentinel. All template-specific selectors and patterns live
// in this package so that template drift touches one place.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	importer "github.com/chobbledotcom/site-importer"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	canonicalRe  = regexp.MustCompile(`/([^/]+)\.php`)
)

// collapse normalizes whitespace runs (including newlines) to single spaces.
func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// parse returns a parsed document, or nil if the HTML cannot be parsed.
// Extraction against a nil document yields empty sentinels downstream.
func parse(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}

// menuHeading locates the section heading div with the given label, used to
// anchor review, specification, and price tables.
func menuHeading(doc *goquery.Document, label string) *goquery.Selection {
	sel := doc.Find("div.menu-heading").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), label)
	}).First()
	if sel.Length() == 0 {
		return nil
	}
	return sel
}

// Metadata extracts the generic per-document fields: title, meta
// description, canonical-derived permalink, and header text. Header text
// prefers the active breadcrumb item over the social title, since
// breadcrumbs carry cleaner human-authored labels.
func Metadata(html string) importer.Metadata {
	var meta importer.Metadata
	doc := parse(html)
	if doc == nil {
		return meta
	}

	meta.Title = collapse(doc.Find("title").First().Text())
	meta.MetaDescription = collapse(doc.Find(`meta[name="description"]`).AttrOr("content", ""))

	if canonical := doc.Find(`link[rel="canonical"]`).AttrOr("href", ""); canonical != "" {
		if m := canonicalRe.FindStringSubmatch(canonical); m != nil {
			meta.Permalink = "/" + m[1] + "/"
		}
	}

	if crumb := breadcrumbText(doc); crumb != "" {
		meta.HeaderText = crumb
	} else {
		meta.HeaderText = collapse(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	}

	return meta
}

func breadcrumbText(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("li.breadcrumb-item.active").First().Text())
}

// BreadcrumbText returns the active breadcrumb item's text, or "".
func BreadcrumbText(html string) string {
	doc := parse(html)
	if doc == nil {
		return ""
	}
	return breadcrumbText(doc)
}

// ContentHeading returns the first h1's text with entities decoded and
// whitespace collapsed, or "".
func ContentHeading(html string) string {
	doc := parse(html)
	if doc == nil {
		return ""
	}
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return ""
	}
	return collapse(strings.ReplaceAll(h1.Text(), " ", " "))
}

// FaviconLinks returns every favicon-related link tag (rel containing
// "icon" or "apple-touch") from the page head.
func FaviconLinks(html string) []importer.FaviconLink {
	var links []importer.FaviconLink
	doc := parse(html)
	if doc == nil {
		return links
	}

	doc.Find("link[rel]").Each(func(_ int, s *goquery.Selection) {
		rel := strings.ToLower(s.AttrOr("rel", ""))
		if !strings.Contains(rel, "icon") && !strings.Contains(rel, "apple-touch") {
			return
		}
		href := s.AttrOr("href", "")
		if href == "" {
			return
		}
		links = append(links, importer.FaviconLink{
			Rel:   rel,
			Href:  href,
			Sizes: s.AttrOr("sizes", ""),
			Type:  s.AttrOr("type", ""),
		})
	})

	return links
}
