package mirror

import (
	"bytes"
	"context"
	"strings"

	"github.com/beevik/etree"

	importer "github.com/chobbledotcom/site-importer"
)

// SitemapURLs fetches and parses a sitemap, following nested sitemap
// indexes, and returns every page URL it lists.
func SitemapURLs(ctx context.Context, fetcher importer.Fetcher, sitemapURL string) ([]string, error) {
	return sitemapURLs(ctx, fetcher, sitemapURL, map[string]bool{})
}

func sitemapURLs(ctx context.Context, fetcher importer.Fetcher, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(bytes.NewReader(body)); err != nil {
		return nil, importer.Errorf(importer.EINVALID, "parse sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, importer.Errorf(importer.EINVALID, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, sitemap := range root.SelectElements("sitemap") {
			loc := locText(sitemap)
			if loc == "" {
				continue
			}
			nested, err := sitemapURLs(ctx, fetcher, loc, seen)
			if err != nil {
				return nil, err
			}
			urls = append(urls, nested...)
		}
		return urls, nil
	}

	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		if loc := locText(urlEl); loc != "" {
			urls = append(urls, loc)
		}
	}
	return urls, nil
}

func locText(el *etree.Element) string {
	loc := el.SelectElement("loc")
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(loc.Text())
}
