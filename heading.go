package importer

import (
	"regexp"
	"strings"
)

var leadingHeadingRe = regexp.MustCompile(`^#\s+`)

// HasLeadingHeading reports whether content begins with a top-level
// markdown heading.
func HasLeadingHeading(content string) bool {
	return leadingHeadingRe.MatchString(strings.TrimSpace(content))
}

// EnsureHeading prepends a top-level heading when content does not already
// begin with one. No document is ever emitted without a leading heading.
// An empty heading leaves the content unchanged.
func EnsureHeading(content, heading string) string {
	if HasLeadingHeading(content) || heading == "" {
		return content
	}
	if strings.TrimSpace(content) == "" {
		return "# " + heading
	}
	return "# " + heading + "\n\n" + content
}
