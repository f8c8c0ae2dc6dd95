package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	importer "github.com/chobbledotcom/site-importer"
)

var (
	priceValueRe  = regexp.MustCompile(`^[\d,]+\.?\d*`)
	schemaPriceRe = regexp.MustCompile(`(?i)"price":"([\d,]+\.?\d*)"`)
	schemaNameRe  = regexp.MustCompile(`(?i)"@type":"Product","name":"([^"]+)"`)
)

// Price extracts the product price. The "Our Price:" table row is
// authoritative; the structured-data price field is the fallback. The result
// is the currency symbol concatenated with the matched numerals, with no
// normalization of thousand separators. Absence yields "".
func Price(html string) string {
	if doc := parse(html); doc != nil {
		price := ""
		doc.Find("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
			if strings.TrimSpace(th.Text()) != "Our Price:" {
				return true
			}
			value := strings.TrimSpace(th.Next().Text())
			rest, ok := strings.CutPrefix(value, "£")
			if !ok {
				return true
			}
			if m := priceValueRe.FindString(rest); m != "" {
				price = "£" + m
				return false
			}
			return true
		})
		if price != "" {
			return price
		}
	}

	if m := schemaPriceRe.FindStringSubmatch(html); m != nil {
		return "£" + m[1]
	}

	return ""
}

// ProductName extracts the product name, preferring the structured-data
// name field over the breadcrumb. Both paths decode the pound entity, which
// survives raw inside JSON-LD script blocks.
func ProductName(html string) string {
	if m := schemaNameRe.FindStringSubmatch(html); m != nil {
		return strings.ReplaceAll(m[1], "&pound;", "£")
	}

	if crumb := BreadcrumbText(html); crumb != "" {
		return strings.ReplaceAll(crumb, "&pound;", "£")
	}

	return ""
}

// Reviews extracts the product review table. Rows missing either a bolded
// reviewer name or a description block are silently skipped. Returns an
// empty slice, never nil, when the table is absent.
func Reviews(html string) []importer.Review {
	reviews := []importer.Review{}

	doc := parse(html)
	if doc == nil {
		return reviews
	}
	heading := menuHeading(doc, "Our Reviews!")
	if heading == nil {
		return reviews
	}
	table := heading.NextAllFiltered("table").First()
	if table.Length() == 0 {
		return reviews
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find("strong").First().Text())
		body := collapse(row.Find(`div[itemprop="description"]`).First().Text())
		if name == "" || body == "" {
			return
		}
		reviews = append(reviews, importer.Review{Name: name, Body: body})
	})

	return reviews
}

// ProductImages extracts the header/hero image from the social-metadata
// image tag. Embedded content images are discovered later in the converted
// markdown body, not here.
func ProductImages(html string) importer.ProductImages {
	var images importer.ProductImages
	doc := parse(html)
	if doc == nil {
		return images
	}

	if url := doc.Find(`meta[property="og:image"]`).AttrOr("content", ""); url != "" {
		images.HeaderImage = url
		images.Gallery = append(images.Gallery, url)
	}

	return images
}
