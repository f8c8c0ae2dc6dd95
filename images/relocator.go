// Package images downloads remote images referenced by imported content and
// rewrites references to local paths under the site's image root.
package images

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/time/rate"

	importer "github.com/chobbledotcom/site-importer"
)

// Relocator downloads remote images into a local directory tree and returns
// the site-relative paths content should reference instead.
type Relocator struct {
	fetcher importer.Fetcher
	limiter *rate.Limiter
	baseDir string
	logger  *slog.Logger
}

// NewRelocator creates a Relocator writing under baseDir. Downloads are
// rate limited to avoid hammering the image CDN.
func NewRelocator(fetcher importer.Fetcher, baseDir string, limiter *rate.Limiter, logger *slog.Logger) *Relocator {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(10), 1)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Relocator{
		fetcher: fetcher,
		limiter: limiter,
		baseDir: baseDir,
		logger:  logger,
	}
}

// RemoveTransformations strips the CDN transformation segment from an image
// URL so the original asset is downloaded rather than a derived rendition.
func RemoveTransformations(url string) string {
	return strings.ReplaceAll(url, "/f_auto,q_auto/", "/")
}

// Filename derives a local filename for a remote image, namespaced by
// content type and slug so images from different pages cannot collide.
// Extensionless URLs are assumed to be webp.
func Filename(url, namespace, slug string) string {
	base := path.Base(url)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".webp"
	}
	return fmt.Sprintf("%s-%s-%s%s", namespace, importer.Slugify(slug), importer.Slugify(stem), ext)
}

// Relocate downloads a remote image and returns its site-relative path.
// Failures are logged and reported as an empty path so a missing image never
// aborts an import run.
func (r *Relocator) Relocate(ctx context.Context, url, namespace, slug string) string {
	if url == "" {
		return ""
	}
	return r.download(ctx, url, namespace, Filename(url, namespace, slug))
}

// RelocateProductHeader downloads a product's header image as
// products/<slug>.webp, the fixed location product layouts expect.
func (r *Relocator) RelocateProductHeader(ctx context.Context, url, slug string) string {
	if url == "" {
		return ""
	}
	return r.download(ctx, url, "products", importer.Slugify(slug)+".webp")
}

func (r *Relocator) download(ctx context.Context, url, namespace, filename string) string {
	if err := r.limiter.Wait(ctx); err != nil {
		return ""
	}

	url = RemoveTransformations(url)

	data, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		r.logger.Warn("image download failed", "url", url, "error", err)
		return ""
	}

	dir := filepath.Join(r.baseDir, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.logger.Warn("image directory creation failed", "dir", dir, "error", err)
		return ""
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		r.logger.Warn("image write failed", "file", filename, "error", err)
		return ""
	}

	return "/images/" + namespace + "/" + filename
}

var embeddedImageRe = regexp.MustCompile(`!\[([^\]]*)\]\((https://res\.cloudinary\.com/[^)\s]+)(?:\s+"[^"]*")?\)`)

// RelocateEmbedded rewrites every CDN image reference in markdown content to
// a relocated local path. References with empty alt text are decorative
// leftovers from the source templates and are removed outright.
func (r *Relocator) RelocateEmbedded(ctx context.Context, content, namespace, slug string) string {
	return embeddedImageRe.ReplaceAllStringFunc(content, func(match string) string {
		m := embeddedImageRe.FindStringSubmatch(match)
		alt, url := m[1], m[2]
		if strings.TrimSpace(alt) == "" {
			return ""
		}
		local := r.Relocate(ctx, url, namespace, slug)
		if local == "" {
			return ""
		}
		return fmt.Sprintf("![%s](%s)", alt, local)
	})
}
