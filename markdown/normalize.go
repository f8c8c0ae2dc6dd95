// Package markdown post-processes converter output: it truncates documents
// to their main content region, strips conversion artifacts, and splices
// HTML-derived table blocks back into product pages.
package markdown

import (
	"regexp"
	"strings"

	importer "github.com/chobbledotcom/site-importer"
	gq "github.com/chobbledotcom/site-importer/goquery"
)

// Form field labels that mark the start of the contact form. Retention stops
// at the first of these; the form itself belongs to the new site's layout.
var formFieldMarkers = []string{
	"**Name: \\*",
	"**Phone: \\*",
	"**Email: \\*",
	"**Product Enquiry:",
	"**Your Postcode:",
	"**Message:",
	"**Captcha:",
}

var headingStartRe = regexp.MustCompile(`^# [A-Z]`)

// ExtractMainContent walks converted markdown line by line and keeps only
// the main content region: retention starts at the first type-appropriate
// marker (a heading, or for blog posts also a "Posted By:" line) and stops
// at contact-form labels or footer/widget markers. The reviews sub-section
// is suppressed entirely since reviews are handled separately and must not
// duplicate into body text.
func ExtractMainContent(markdown string, contentType importer.ContentType) string {
	var content []string
	inMain := false
	skipNext := false
	inReviews := false

	for _, line := range strings.Split(markdown, "\n") {
		// Navigation and header fragments.
		if strings.Contains(line, "navbar") || strings.Contains(line, "drawer") || strings.Contains(line, "breadcrumb") {
			skipNext = true
			continue
		}

		if isFormField(line) {
			break
		}

		if strings.Contains(line, "Our Reviews!") {
			inReviews = true
			continue
		}
		// The prices heading ends the reviews section and is kept.
		if inReviews && (strings.Contains(line, "Our Prices!") || headingStartRe.MatchString(line)) {
			inReviews = false
		}
		if inReviews {
			continue
		}

		if strings.Contains(line, "footer") || strings.Contains(line, "widget_section") {
			break
		}

		if contentType == importer.TypeBlog && (strings.Contains(line, "# ") || strings.Contains(line, "Posted By:")) {
			inMain = true
		} else if contentType != importer.TypeBlog && strings.Contains(line, "# ") {
			inMain = true
		}

		if inMain && !skipNext {
			content = append(content, line)
		}
		skipNext = false
	}

	return strings.TrimSpace(strings.Join(content, "\n"))
}

func isFormField(line string) bool {
	for _, marker := range formFieldMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

var (
	resultsGridRe    = regexp.MustCompile(`(?i)####\s+Showing\s+\d+\s+results[\s\S]*$`)
	productListingRe = regexp.MustCompile(`\[]\([^)]*/products/[^)]+\.php\.html[^)]*\)[\s\S]*?\[More Details]\([^)]+\)`)
	blogH4Re         = regexp.MustCompile(`(?m)^####\s+.+$`)

	postedByRe        = regexp.MustCompile(`Posted By:[^\n]*\n`)
	backToRe          = regexp.MustCompile(`(?m)^\[\s*Back [Tt]o\s+[^\]]+\]\([^)]+\)(\{[^}]+\})?\s*$`)
	pandocDivRe       = regexp.MustCompile(`(?m)^:::\s*.*$`)
	attrBlockRe       = regexp.MustCompile(`\{[^}]*\}`)
	emptyCheckboxRe   = regexp.MustCompile(`\[ \]`)
	brokenImageRe     = regexp.MustCompile(`(?m)^!\[.*?\]\(https://res\.cloudinary\.com/kbs/image/upload/\)\s*$`)
	emphasisRunRe     = regexp.MustCompile(`\*{3,}`)
	emptyEmphasisRe   = regexp.MustCompile(`\*\*[ \t\x{00A0}]+\*\*`)
	emphasisLineEndRe = regexp.MustCompile(`(?m)[ \t\x{00A0}]+\*\*[ \t\x{00A0}]*$`)
	trailingSlashRe   = regexp.MustCompile(`(?m)\\[ \t]*$`)
	relativeLinkRe    = regexp.MustCompile(`\(\.\./([^)]+)\.php\.html\)`)
	blankRunRe        = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// Clean strips conversion artifacts and residual structure from extracted
// content. Category pages additionally lose their product results grid and
// blog posts their fourth-level breadcrumb headings.
func Clean(content string, contentType importer.ContentType) string {
	if contentType == importer.TypeCategory {
		content = resultsGridRe.ReplaceAllString(content, "")
		content = productListingRe.ReplaceAllString(content, "")
	}
	if contentType == importer.TypeBlog {
		content = blogH4Re.ReplaceAllString(content, "")
	}

	content = strings.TrimSpace(content)
	content = postedByRe.ReplaceAllString(content, "")
	content = backToRe.ReplaceAllString(content, "")
	content = pandocDivRe.ReplaceAllString(content, "")
	content = attrBlockRe.ReplaceAllString(content, "")
	content = emptyCheckboxRe.ReplaceAllString(content, "")
	content = brokenImageRe.ReplaceAllString(content, "")
	content = emphasisRunRe.ReplaceAllString(content, "**")
	content = emptyEmphasisRe.ReplaceAllString(content, "**")
	content = emphasisLineEndRe.ReplaceAllString(content, "**")
	content = trailingSlashRe.ReplaceAllString(content, "")
	content = relativeLinkRe.ReplaceAllString(content, "(/$1/)")
	content = blankRunRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// Process extracts and cleans the main content from converted markdown. For
// product pages the specification and price placeholder regions are replaced
// with table markdown rebuilt from the original HTML, since table structure
// does not survive conversion reliably.
func Process(markdown string, contentType importer.ContentType, html string) string {
	content := Clean(ExtractMainContent(markdown, contentType), contentType)

	if contentType == importer.TypeProduct && html != "" {
		content = spliceProductTables(content, html)
	}

	return content
}

// hrRunRe matches the long horizontal-rule run that terminates the prices
// placeholder region.
var hrRunRe = regexp.MustCompile(`\n\n-{5,}`)

// Placeholder headings are matched case-insensitively; the template family
// is not consistent about capitalisation.
var (
	specPlaceholderRe  = regexp.MustCompile(`(?i)Product Specifications!`)
	pricePlaceholderRe = regexp.MustCompile(`(?i)Our Prices!`)
)

// spliceProductTables replaces the placeholder text runs left by the
// generic section headings with structured markdown extracted straight from
// the source HTML.
func spliceProductTables(content, html string) string {
	specs := gq.SpecificationTable(html)
	prices := gq.PriceTable(html)

	// "Product Specifications!" up to "Our Prices!" (or end of content).
	if loc := specPlaceholderRe.FindStringIndex(content); loc != nil {
		start := loc[0]
		end := len(content)
		if i := pricePlaceholderRe.FindStringIndex(content[start:]); i != nil {
			end = start + i[0]
		}
		content = content[:start] + specs + "\n\n" + content[end:]
	}

	// "Our Prices!" up to a horizontal-rule run (or end of content).
	if loc := pricePlaceholderRe.FindStringIndex(content); loc != nil {
		start := loc[0]
		end := len(content)
		if hr := hrRunRe.FindStringIndex(content[start:]); hr != nil {
			end = start + hr[0]
		}
		content = content[:start] + prices + content[end:]
	}

	return content
}
