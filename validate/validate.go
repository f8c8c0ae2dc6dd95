// Package validate checks a finished import for structural problems before
// anyone builds a site from it: malformed frontmatter, missing files,
// duplicate slugs, and references to images that were never downloaded.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"

	importer "github.com/chobbledotcom/site-importer"
)

// Issue is one problem found during validation.
type Issue struct {
	Collection string
	File       string
	Message    string
}

func (i Issue) String() string {
	if i.File == "" {
		return i.Message
	}
	return fmt.Sprintf("%s/%s: %s", i.Collection, i.File, i.Message)
}

var filenameRe = regexp.MustCompile(`^[a-z0-9-]+\.md$`)

// requiredFields lists the frontmatter keys every item of a collection must
// carry.
var requiredFields = map[string][]string{
	"pages":      {"meta_title"},
	"news":       {"title", "date", "permalink"},
	"products":   {"title", "price", "order", "permalink", "categories"},
	"categories": {"title", "permalink", "featured"},
	"reviews":    {"name", "products", "rating"},
}

// Export checks the in-memory export for structural problems.
func Export(export *importer.Export) []Issue {
	var issues []Issue

	if export.Meta.RunID == "" {
		issues = append(issues, Issue{Message: "export missing run id"})
	}
	if export.Meta.FormatVersion != importer.FormatVersion {
		issues = append(issues, Issue{Message: fmt.Sprintf("unexpected format version %q", export.Meta.FormatVersion)})
	}
	if export.Meta.ExportedAt.IsZero() {
		issues = append(issues, Issue{Message: "export missing timestamp"})
	}
	if export.Total() == 0 {
		issues = append(issues, Issue{Message: "export contains no items"})
		return issues
	}

	// Filenames must be unique across the whole export, not just within one
	// collection, so a page and a category can never both claim alarms.md.
	seenFiles := map[string]bool{}

	for _, collection := range export.Collections() {
		seenSlugs := map[string]bool{}

		for _, item := range collection.Items {
			issue := func(format string, args ...any) {
				issues = append(issues, Issue{
					Collection: collection.Name,
					File:       item.Filename,
					Message:    fmt.Sprintf(format, args...),
				})
			}

			if err := item.Validate(); err != nil {
				issue("%s", importer.ErrorMessage(err))
				continue
			}
			if !filenameRe.MatchString(item.Filename) {
				issue("filename %q is not a clean slug", item.Filename)
			}
			if seenSlugs[item.Slug] {
				issue("duplicate slug %q", item.Slug)
			}
			seenSlugs[item.Slug] = true
			if seenFiles[item.Filename] {
				issue("duplicate filename across collections")
			}
			seenFiles[item.Filename] = true

			fields, err := parseFrontmatter(item.Document())
			if err != nil {
				issue("frontmatter does not parse: %v", err)
				continue
			}
			for _, field := range requiredFields[collection.Name] {
				if _, ok := fields[field]; !ok {
					issue("frontmatter missing %q", field)
				}
			}

			// Review bodies are the reviewer's own words with no heading;
			// the heading guarantee applies to the page-like collections.
			if collection.Name != "reviews" && !importer.HasLeadingHeading(item.Content) {
				issue("body does not start with a heading")
			}
		}
	}

	return issues
}

func parseFrontmatter(doc string) (map[string]any, error) {
	var fields map[string]any
	if _, err := frontmatter.MustParse(strings.NewReader(doc), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

var imageRefRe = regexp.MustCompile(`/images/[a-zA-Z0-9._/-]+`)

// Output checks the written markdown tree against the export: every item
// must exist on disk and every local image reference must resolve to a
// downloaded file under imagesDir.
func Output(export *importer.Export, outputDir, imagesDir string) []Issue {
	var issues []Issue

	for _, collection := range export.Collections() {
		for _, item := range collection.Items {
			path := filepath.Join(outputDir, collection.Name, item.Filename)
			if _, err := os.Stat(path); err != nil {
				issues = append(issues, Issue{
					Collection: collection.Name,
					File:       item.Filename,
					Message:    "missing from output directory",
				})
				continue
			}

			for _, ref := range imageRefRe.FindAllString(item.Document(), -1) {
				rel := strings.TrimPrefix(ref, "/images/")
				if _, err := os.Stat(filepath.Join(imagesDir, filepath.FromSlash(rel))); err != nil {
					issues = append(issues, Issue{
						Collection: collection.Name,
						File:       item.Filename,
						Message:    fmt.Sprintf("image %s not downloaded", ref),
					})
				}
			}
		}
	}

	return issues
}
