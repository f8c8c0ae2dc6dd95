package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// specGroup is one labelled specification with one or more values. Rows with
// an empty first cell continue the current group, which is how the template
// spreads list-style specs across consecutive table rows.
type specGroup struct {
	label  string
	values []string
}

// SpecificationTable rebuilds the "Product Specifications!" table as
// markdown straight from the source HTML: a bold label followed by an inline
// value, or a bullet list when a group holds multiple values. Returns ""
// when the table is absent. Table structure does not survive HTML→markdown
// conversion reliably, so this always operates on the original markup.
func SpecificationTable(html string) string {
	doc := parse(html)
	if doc == nil {
		return ""
	}
	heading := menuHeading(doc, "Product Specifications!")
	if heading == nil {
		return ""
	}
	table := heading.NextAllFiltered("table").First()
	if table.Length() == 0 {
		return ""
	}

	var groups []specGroup
	var current *specGroup
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() != 2 {
			return
		}
		label := collapse(cells.Eq(0).Text())
		value := collapse(cells.Eq(1).Text())

		switch {
		case label != "":
			if current != nil && len(current.values) > 0 {
				groups = append(groups, *current)
			}
			current = &specGroup{label: label}
			if value != "" {
				current.values = []string{value}
			}
		case value != "" && current != nil:
			current.values = append(current.values, value)
		}
	})
	if current != nil && len(current.values) > 0 {
		groups = append(groups, *current)
	}

	var lines []string
	for _, g := range groups {
		lines = append(lines, "")
		if len(g.values) > 1 {
			lines = append(lines, "**"+g.label+"**", "")
			for _, v := range g.values {
				lines = append(lines, "- "+v)
			}
		} else {
			lines = append(lines, "**"+g.label+"** "+g.values[0])
		}
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// PriceTable rebuilds the "Our Prices!" table as markdown: every two-cell
// row becomes a bold colon-suffixed label line. Returns "" when the table
// is absent.
func PriceTable(html string) string {
	doc := parse(html)
	if doc == nil {
		return ""
	}
	heading := menuHeading(doc, "Our Prices!")
	if heading == nil {
		return ""
	}
	table := heading.NextAllFiltered("table").First()
	if table.Length() == 0 {
		return ""
	}

	var lines []string
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th,td")
		if cells.Length() != 2 {
			return
		}
		label := strings.TrimSuffix(collapse(cells.Eq(0).Text()), ":")
		value := collapse(cells.Eq(1).Text())
		lines = append(lines, "", "**"+label+":** "+value)
	})
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
