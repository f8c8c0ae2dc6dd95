package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var months = map[string]string{
	"january":   "01",
	"february":  "02",
	"march":     "03",
	"april":     "04",
	"may":       "05",
	"june":      "06",
	"july":      "07",
	"august":    "08",
	"september": "09",
	"october":   "10",
	"november":  "11",
	"december":  "12",
}

var (
	postedDateRe = regexp.MustCompile(`Posted Date:\s*(?:[A-Za-z]+,\s*)?([^\n\\]+)`)
	dateRe       = regexp.MustCompile(`([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})`)
	blogImageRe  = regexp.MustCompile(`!\[.*?\]\((https?://[^)\s]+)`)
)

// BlogDate finds the "Posted Date:" line in converted blog markdown and
// returns the date as YYYY-MM-DD. Posts with no recognizable date get
// defaultDate so they sort deterministically.
func BlogDate(markdown, defaultDate string) string {
	m := postedDateRe.FindStringSubmatch(markdown)
	if m == nil {
		return defaultDate
	}
	d := dateRe.FindStringSubmatch(m[1])
	if d == nil {
		return defaultDate
	}
	month, ok := months[strings.ToLower(d[1])]
	if !ok {
		return defaultDate
	}
	day, err := strconv.Atoi(d[2])
	if err != nil {
		return defaultDate
	}
	return fmt.Sprintf("%s-%s-%02d", d[3], month, day)
}

// BlogImage returns the URL of the first image reference in converted blog
// markdown, or "" when the post has none. The header image is the first
// image the post embeds.
func BlogImage(markdown string) string {
	m := blogImageRe.FindStringSubmatch(markdown)
	if m == nil {
		return ""
	}
	return m[1]
}
