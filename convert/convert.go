// Package convert orchestrates the import pipeline: it reads mirrored HTML
// pages, converts them to markdown, extracts type-specific fields, and
// collects the results into an export.
package convert

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/goquery"
	"github.com/chobbledotcom/site-importer/images"
	"github.com/chobbledotcom/site-importer/markdown"
)

// Fields holds everything a type's extractors pull from a single page
// beyond the shared metadata.
type Fields struct {
	Heading      string
	Price        string
	ProductName  string
	Reviews      []importer.Review
	Images       importer.ProductImages
	Date         string
	BlogImage    string
	CategoryName string

	// LocalImage is set by BeforeWrite once the header image has been
	// relocated, and feeds the gallery field of the frontmatter.
	LocalImage string
}

// BatchContext carries state shared across the files of a batch.
type BatchContext struct {
	// Reviews accumulates review records across all products in the run.
	Reviews *importer.ReviewSet
	// Catalog maps products to the categories that list them.
	Catalog *importer.CategoryIndex
	// Index is the zero-based position of the current file in its batch.
	Index int
	// InNav controls whether categories join site navigation.
	InNav bool
}

// Type describes how one content type is converted. Extract runs before
// content processing, BeforeWrite after the body is final but before
// frontmatter synthesis, and AfterConvert once the item is collected.
type Type struct {
	Content   importer.ContentType
	Namespace string

	Extract      func(html, md string) Fields
	Synthesize   func(meta importer.Metadata, slug string, fields *Fields, bctx *BatchContext) (frontmatter, filename string)
	BeforeWrite  func(ctx context.Context, r *Runner, content string, fields *Fields, slug string) string
	AfterConvert func(fields *Fields, slug string, bctx *BatchContext)
}

// Runner converts mirrored pages and collects them into an export.
type Runner struct {
	Converter importer.Converter
	Images    *images.Relocator
	Export    *importer.Export
	Logger    *slog.Logger
}

// Result counts the outcome of a batch.
type Result struct {
	Successful int
	Failed     int
	Total      int
}

// Add merges another result into this one.
func (r *Result) Add(other Result) {
	r.Successful += other.Successful
	r.Failed += other.Failed
	r.Total += other.Total
}

// File converts a single mirrored HTML file and adds the result to the
// export.
func (r *Runner) File(ctx context.Context, t *Type, dir, file string, bctx *BatchContext) error {
	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return importer.Errorf(importer.ENOTFOUND, "read %s: %v", file, err)
	}
	html := string(data)

	meta := goquery.Metadata(html)

	md, err := r.Converter.Convert(html)
	if err != nil {
		// A page that fails conversion still gets exported with whatever
		// the extractors can pull from the raw HTML.
		r.Logger.Warn("conversion failed, continuing with empty body", "file", file, "error", err)
		md = ""
	}

	slug := importer.SlugFromFilename(file)

	var fields Fields
	if t.Extract != nil {
		fields = t.Extract(html, md)
	}

	content := markdown.Process(md, t.Content, html)

	if !importer.HasLeadingHeading(content) {
		heading := fields.Heading
		if heading == "" {
			heading = meta.HeaderText
		}
		if heading == "" {
			heading = meta.Title
		}
		content = importer.EnsureHeading(content, heading)
	}

	if t.BeforeWrite != nil {
		content = t.BeforeWrite(ctx, r, content, &fields, slug)
	}

	frontmatter, filename := t.Synthesize(meta, slug, &fields, bctx)
	if filename == "" {
		filename = importer.MarkdownFilename(file)
	}

	item := &importer.ContentItem{
		Slug:        slug,
		Filename:    filename,
		Frontmatter: frontmatter,
		Content:     content,
		Metadata: map[string]string{
			"title":            meta.Title,
			"meta_description": meta.MetaDescription,
		},
	}
	if err := item.Validate(); err != nil {
		return err
	}
	r.Export.Add(t.Content, item)

	if t.AfterConvert != nil {
		t.AfterConvert(&fields, slug, bctx)
	}

	return nil
}

// Batch converts a list of files from one directory, continuing past
// individual failures.
func (r *Runner) Batch(ctx context.Context, t *Type, dir string, files []string, bctx *BatchContext) Result {
	result := Result{Total: len(files)}
	for i, file := range files {
		bctx.Index = i
		if err := r.File(ctx, t, dir, file, bctx); err != nil {
			r.Logger.Error("conversion failed", "file", file, "error", err)
			result.Failed++
			continue
		}
		result.Successful++
	}
	return result
}
