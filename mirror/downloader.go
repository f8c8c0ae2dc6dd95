package mirror

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	importer "github.com/chobbledotcom/site-importer"
)

// assetExtensions are saved under their own names; anything else is assumed
// to be a rendered page and gets an .html suffix, matching the layout the
// conversion pipeline reads.
var assetExtensions = map[string]bool{
	".html": true, ".css": true, ".js": true, ".xml": true, ".txt": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	".svg": true, ".ico": true, ".woff": true, ".woff2": true, ".pdf": true,
}

// Downloader mirrors a site over HTTP, breadth first, staying on the
// starting host.
type Downloader struct {
	fetcher importer.Fetcher
	limiter *rate.Limiter
	logger  *slog.Logger
	workers int
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithWorkers sets the number of concurrent downloads. Defaults to 4.
func WithWorkers(n int) Option {
	return func(d *Downloader) {
		d.workers = n
	}
}

// WithRateLimit caps requests per second. Defaults to 10.
func WithRateLimit(perSecond float64) Option {
	return func(d *Downloader) {
		d.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewDownloader creates a Downloader using the given fetcher.
func NewDownloader(fetcher importer.Fetcher, logger *slog.Logger, opts ...Option) *Downloader {
	d := &Downloader{
		fetcher: fetcher,
		limiter: rate.NewLimiter(rate.Limit(10), 1),
		logger:  logger,
		workers: 4,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mirror downloads siteURL and every same-host page reachable from it into
// destDir. The sitemap seeds the frontier when present. Returns the number
// of files saved.
func (d *Downloader) Mirror(ctx context.Context, siteURL, destDir string) (int, error) {
	base, err := url.Parse(siteURL)
	if err != nil || base.Host == "" {
		return 0, importer.Errorf(importer.EINVALID, "invalid site URL %q", siteURL)
	}

	frontier := NewFrontier(10000, 0.001)
	frontier.Push(base.String())

	if urls, err := SitemapURLs(ctx, d.fetcher, base.Scheme+"://"+base.Host+"/sitemap.xml"); err == nil {
		for _, u := range urls {
			d.pushSameHost(frontier, base, u)
		}
	} else {
		d.logger.Info("no sitemap, crawling from root", "site", siteURL)
	}

	saved := 0
	for frontier.Len() > 0 {
		batch := frontier.Drain()

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(d.workers)
		results := make([]int, len(batch))

		for i, pageURL := range batch {
			g.Go(func() error {
				n, err := d.download(gctx, frontier, base, pageURL, destDir)
				if err != nil {
					// A dead link is normal on old sites; keep going.
					d.logger.Warn("download failed", "url", pageURL, "error", err)
					return nil
				}
				results[i] = n
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return saved, err
		}
		for _, n := range results {
			saved += n
		}
	}

	return saved, nil
}

func (d *Downloader) download(ctx context.Context, frontier *Frontier, base *url.URL, pageURL, destDir string) (int, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	body, err := d.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return 0, err
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return 0, err
	}
	local := LocalPath(u)

	dest := filepath.Join(destDir, filepath.FromSlash(local))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(dest, body, 0o644); err != nil {
		return 0, err
	}

	if strings.HasSuffix(local, ".html") {
		d.extractLinks(frontier, base, u, string(body))
	}

	return 1, nil
}

// extractLinks pushes every same-host link and asset reference in the page.
func (d *Downloader) extractLinks(frontier *Frontier, base, pageURL *url.URL, html string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return
	}

	push := func(ref string) {
		if ref == "" || strings.HasPrefix(ref, "mailto:") || strings.HasPrefix(ref, "tel:") ||
			strings.HasPrefix(ref, "javascript:") || strings.HasPrefix(ref, "#") {
			return
		}
		resolved, err := pageURL.Parse(ref)
		if err != nil {
			return
		}
		d.pushSameHost(frontier, base, resolved.String())
	}

	doc.Find("a[href], link[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		push(href)
	})
	doc.Find("img[src], script[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		push(src)
	})
}

func (d *Downloader) pushSameHost(frontier *Frontier, base *url.URL, rawURL string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	if u.Host != base.Host || (u.Scheme != "http" && u.Scheme != "https") {
		return
	}
	u.Fragment = ""
	frontier.Push(u.String())
}

// LocalPath maps a URL to its path inside the mirror directory. Directory
// URLs become index.html files and rendered pages get an .html suffix, so
// /products/widget.php lands at products/widget.php.html.
func LocalPath(u *url.URL) string {
	p := u.EscapedPath()
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index.html"
	}
	if !assetExtensions[strings.ToLower(path.Ext(p))] {
		p += ".html"
	}
	return strings.TrimPrefix(p, "/")
}
