package convert

import (
	"context"
	"os"
	"path/filepath"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/fs"
)

// RunConfig configures a full conversion run.
type RunConfig struct {
	// SiteDir is the root of the mirrored site.
	SiteDir string
	// FaviconDir receives the site's favicon files. Empty skips the step.
	FaviconDir string
	// DefaultDate is assigned to blog posts without a recognizable date.
	DefaultDate string
	// CategoriesInNav places categories in site navigation instead of the
	// fixed Products/Service Areas/News entries.
	CategoriesInNav bool
}

// Run executes the whole conversion pipeline against a mirrored site,
// collecting everything into the runner's export. Individual page failures
// are tracked, not fatal; only setup errors abort the run.
func Run(ctx context.Context, r *Runner, cfg RunConfig) (*Tracker, error) {
	tracker := NewTracker()

	// Categories are scanned before any conversion so product frontmatter
	// can name its categories and inherit listing order.
	catalog, err := ScanCategories(cfg.SiteDir)
	if err != nil {
		return nil, err
	}

	bctx := &BatchContext{
		Reviews: importer.NewReviewSet(),
		Catalog: catalog,
		InNav:   cfg.CategoriesInNav,
	}

	if cfg.FaviconDir != "" {
		tracker.Add("Favicons", CopyFavicons(cfg.SiteDir, cfg.FaviconDir, r.Logger))
	}

	pages, err := r.pagesStage(ctx, cfg.SiteDir, bctx)
	if err != nil {
		return nil, err
	}
	tracker.Add("Pages", pages)

	tracker.Add("Special Pages", SpecialPages(r.Export, cfg.SiteDir, cfg.CategoriesInNav))

	blog, err := r.dirStage(ctx, Blog(cfg.DefaultDate), filepath.Join(cfg.SiteDir, "blog"), bctx)
	if err != nil {
		return nil, err
	}
	tracker.Add("Blog Posts", blog)

	products, err := r.dirStage(ctx, Product(), filepath.Join(cfg.SiteDir, "products"), bctx)
	if err != nil {
		return nil, err
	}
	tracker.Add("Products", products)
	FlushReviews(r.Export, bctx.Reviews)

	categories, err := r.dirStage(ctx, Category(), filepath.Join(cfg.SiteDir, "categories"), bctx)
	if err != nil {
		return nil, err
	}
	tracker.Add("Categories", categories)

	tracker.Add("Blog Index", BlogIndex(r.Export))

	tracker.Add("Reviews Index", r.reviewsStage(ctx, cfg.SiteDir, bctx))

	return tracker, nil
}

// pagesStage converts the pages directory plus the root-level pages that
// live outside it.
func (r *Runner) pagesStage(ctx context.Context, siteDir string, bctx *BatchContext) (Result, error) {
	t := Page()

	pagesDir := filepath.Join(siteDir, "pages")
	files, err := fs.ListHTMLFiles(pagesDir)
	if err != nil {
		return Result{}, err
	}
	result := r.Batch(ctx, t, pagesDir, files, bctx)

	for _, file := range []string{"contact.php.html"} {
		if _, err := os.Stat(filepath.Join(siteDir, file)); err != nil {
			continue
		}
		result.Add(r.Batch(ctx, t, siteDir, []string{file}, bctx))
	}

	return result, nil
}

// reviewsStage converts the site's reviews page, falling back to a
// generated stub when the mirror has none.
func (r *Runner) reviewsStage(ctx context.Context, siteDir string, bctx *BatchContext) Result {
	if _, err := os.Stat(filepath.Join(siteDir, "reviews.php.html")); err != nil {
		return ReviewsIndexFallback(r.Export)
	}
	return r.Batch(ctx, ReviewsPage(), siteDir, []string{"reviews.php.html"}, bctx)
}

// dirStage converts every HTML file in one directory.
func (r *Runner) dirStage(ctx context.Context, t *Type, dir string, bctx *BatchContext) (Result, error) {
	files, err := fs.ListHTMLFiles(dir)
	if err != nil {
		return Result{}, err
	}
	return r.Batch(ctx, t, dir, files, bctx), nil
}
