package convert

import (
	"context"
	"strings"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/frontmatter"
)

// reviewsPageCutoff marks where the source reviews page stops being content:
// everything from the leave-a-review link onward duplicates individual
// reviews and the contact form.
const reviewsPageCutoff = "[Click Here To Leave A Review!]"

// ReviewsPage returns the converter for the site's reviews page. It is a
// regular page whose body is truncated at the leave-a-review link.
func ReviewsPage() *Type {
	t := Page()
	base := t.BeforeWrite
	t.BeforeWrite = func(ctx context.Context, r *Runner, content string, fields *Fields, slug string) string {
		if i := strings.Index(content, reviewsPageCutoff); i != -1 {
			content = strings.TrimSpace(content[:i])
		}
		return base(ctx, r, content, fields, slug)
	}
	return t
}

// FlushReviews turns the accumulated review records into review items on
// the export, one per reviewer.
func FlushReviews(export *importer.Export, reviews *importer.ReviewSet) {
	reviews.Each(func(slug string, rec *importer.ReviewRecord) {
		export.AddReview(&importer.ContentItem{
			Slug:        slug,
			Filename:    slug + ".md",
			Frontmatter: frontmatter.Review(rec),
			Content:     rec.Body,
		})
	})
}
