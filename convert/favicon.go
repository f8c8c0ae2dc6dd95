package convert

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chobbledotcom/site-importer/fs"
	"github.com/chobbledotcom/site-importer/goquery"
)

// CopyFavicons finds the favicon links declared by the mirrored site and
// copies the referenced files into destDir. Any root HTML page will declare
// the same set, so only the first one is inspected.
func CopyFavicons(siteDir, destDir string, logger *slog.Logger) Result {
	var result Result

	entries, err := os.ReadDir(siteDir)
	if err != nil {
		logger.Warn("favicon scan failed", "dir", siteDir, "error", err)
		return result
	}

	var htmlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			htmlFiles = append(htmlFiles, entry.Name())
		}
	}
	if len(htmlFiles) == 0 {
		return result
	}
	sort.Strings(htmlFiles)

	data, err := os.ReadFile(filepath.Join(siteDir, htmlFiles[0]))
	if err != nil {
		logger.Warn("favicon scan failed", "file", htmlFiles[0], "error", err)
		return result
	}

	links := goquery.FaviconLinks(string(data))
	if len(links) == 0 {
		return result
	}

	if err := fs.CleanDir(destDir); err != nil {
		logger.Warn("favicon directory preparation failed", "dir", destDir, "error", err)
		return result
	}

	for _, link := range links {
		if strings.HasPrefix(link.Href, "http://") || strings.HasPrefix(link.Href, "https://") {
			continue
		}
		result.Total++

		src := filepath.Join(siteDir, filepath.FromSlash(strings.TrimPrefix(link.Href, "/")))
		dest := filepath.Join(destDir, path.Base(link.Href))

		if err := copyFile(src, dest); err != nil {
			logger.Warn("favicon copy failed", "href", link.Href, "error", err)
			result.Failed++
			continue
		}
		result.Successful++
	}

	return result
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}
