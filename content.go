package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ContentType identifies one of the site's template families. Each type has
// its own extraction and frontmatter rules.
type ContentType string

// Supported content types.
const (
	TypePage     ContentType = "page"
	TypeBlog     ContentType = "blog"
	TypeProduct  ContentType = "product"
	TypeCategory ContentType = "category"
)

// Metadata holds the generic fields extracted once per document from the
// title tag, meta description, canonical link, and breadcrumb/social-title
// fallback chain. Immutable after extraction.
type Metadata struct {
	Title           string
	MetaDescription string
	HeaderText      string
	Permalink       string
}

// Review is a single product review as it appears on a product page.
type Review struct {
	Name string
	Body string
}

// ProductImages holds image URLs extracted from a product page.
type ProductImages struct {
	HeaderImage string
	Gallery     []string
}

// FaviconLink is one favicon-related link tag from a page head.
type FaviconLink struct {
	Rel   string
	Href  string
	Sizes string
	Type  string
}

// ContentItem is the final output unit for one converted document.
type ContentItem struct {
	Slug        string            `json:"slug"`
	Filename    string            `json:"filename"`
	Frontmatter string            `json:"frontmatter"`
	Content     string            `json:"content"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	ContentHash string            `json:"content_hash,omitempty"`
}

// Validate returns an error if the item is missing required fields.
func (c *ContentItem) Validate() error {
	if c.Slug == "" {
		return Errorf(EINVALID, "content item slug required")
	}
	if c.Filename == "" {
		return Errorf(EINVALID, "content item filename required")
	}
	if !strings.HasSuffix(c.Filename, ".md") {
		return Errorf(EINVALID, "content item filename %q must end with .md", c.Filename)
	}
	return nil
}

// Document returns the full output document: the frontmatter block, a blank
// line, and the body, newline terminated.
func (c *ContentItem) Document() string {
	return c.Frontmatter + "\n\n" + c.Content + "\n"
}

// Hash returns a stable hash of the item's body content.
func (c *ContentItem) Hash() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(c.Content))
}

// SlugFromFilename derives the stable content key from a source filename by
// stripping the mirrored-site suffix (or a markdown extension).
func SlugFromFilename(filename string) string {
	s := strings.TrimSuffix(filename, ".md")
	s = strings.TrimSuffix(s, ".php.html")
	return strings.TrimSuffix(s, ".html")
}

// MarkdownFilename converts a mirrored HTML filename to its default output
// filename. Types may override this (blog posts prefix the publish date).
func MarkdownFilename(htmlFilename string) string {
	return SlugFromFilename(htmlFilename) + ".md"
}

var slugifyRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a display name and replaces runs of anything outside
// [a-z0-9] with a single hyphen. Used to key review records by reviewer
// name and to derive image filenames.
func Slugify(name string) string {
	slug := slugifyRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
