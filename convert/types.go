package convert

import (
	"context"
	"fmt"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/frontmatter"
	"github.com/chobbledotcom/site-importer/goquery"
	"github.com/chobbledotcom/site-importer/markdown"
)

// Page returns the converter for static pages.
func Page() *Type {
	return &Type{
		Content:   importer.TypePage,
		Namespace: "pages",
		Extract: func(html, md string) Fields {
			return Fields{Heading: goquery.ContentHeading(html)}
		},
		Synthesize: func(meta importer.Metadata, slug string, fields *Fields, bctx *BatchContext) (string, string) {
			return frontmatter.Page(meta, slug), ""
		},
		BeforeWrite: func(ctx context.Context, r *Runner, content string, fields *Fields, slug string) string {
			return r.Images.RelocateEmbedded(ctx, content, "pages", slug)
		},
	}
}

// Blog returns the converter for blog posts. Posts without a recognizable
// publish date get defaultDate.
func Blog(defaultDate string) *Type {
	return &Type{
		Content:   importer.TypeBlog,
		Namespace: "news",
		Extract: func(html, md string) Fields {
			return Fields{
				Heading:   goquery.ContentHeading(html),
				Date:      markdown.BlogDate(md, defaultDate),
				BlogImage: markdown.BlogImage(md),
			}
		},
		Synthesize: func(meta importer.Metadata, slug string, fields *Fields, bctx *BatchContext) (string, string) {
			fm := frontmatter.Blog(meta, slug, fields.Date, fields.LocalImage)
			return fm, fmt.Sprintf("%s-%s.md", fields.Date, slug)
		},
		BeforeWrite: func(ctx context.Context, r *Runner, content string, fields *Fields, slug string) string {
			if fields.BlogImage != "" {
				fields.LocalImage = r.Images.Relocate(ctx, fields.BlogImage, "news", slug)
			}
			return r.Images.RelocateEmbedded(ctx, content, "news", slug)
		},
	}
}

// Product returns the converter for product pages. Reviews found on product
// pages accumulate into the batch context rather than the page body.
func Product() *Type {
	return &Type{
		Content:   importer.TypeProduct,
		Namespace: "products",
		Extract: func(html, md string) Fields {
			return Fields{
				Heading:     goquery.ContentHeading(html),
				Price:       goquery.Price(html),
				ProductName: goquery.ProductName(html),
				Reviews:     goquery.Reviews(html),
				Images:      goquery.ProductImages(html),
			}
		},
		Synthesize: func(meta importer.Metadata, slug string, fields *Fields, bctx *BatchContext) (string, string) {
			var categories []string
			rank, scanned := 0, false
			if bctx.Catalog != nil {
				categories = bctx.Catalog.Categories(slug)
				rank, scanned = bctx.Catalog.Order(slug)
			}
			order := frontmatter.ProductOrder(slug, rank, scanned)
			fm := frontmatter.Product(meta, slug, fields.Price, fields.ProductName, categories, fields.LocalImage, order)
			return fm, ""
		},
		BeforeWrite: func(ctx context.Context, r *Runner, content string, fields *Fields, slug string) string {
			fields.LocalImage = r.Images.RelocateProductHeader(ctx, fields.Images.HeaderImage, slug)
			return r.Images.RelocateEmbedded(ctx, content, "products", slug)
		},
		AfterConvert: func(fields *Fields, slug string, bctx *BatchContext) {
			if bctx.Reviews == nil {
				return
			}
			for _, review := range fields.Reviews {
				bctx.Reviews.Add(review, fmt.Sprintf("products/%s.md", slug))
			}
		},
	}
}

// Category returns the converter for category pages.
func Category() *Type {
	return &Type{
		Content:   importer.TypeCategory,
		Namespace: "categories",
		Extract: func(html, md string) Fields {
			return Fields{
				Heading:      goquery.ContentHeading(html),
				CategoryName: goquery.CategoryName(html),
			}
		},
		Synthesize: func(meta importer.Metadata, slug string, fields *Fields, bctx *BatchContext) (string, string) {
			if fields.CategoryName != "" {
				meta.Title = fields.CategoryName
			}
			return frontmatter.Category(meta, slug, bctx.Index, bctx.InNav), ""
		},
		BeforeWrite: func(ctx context.Context, r *Runner, content string, fields *Fields, slug string) string {
			return r.Images.RelocateEmbedded(ctx, content, "categories", slug)
		},
	}
}
