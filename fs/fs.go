// Package fs writes import output to disk: markdown collection trees and
// JSON exports.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	importer "github.com/chobbledotcom/site-importer"
)

// EnsureDir creates a directory and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// CleanDir removes a directory tree and recreates it empty. Re-runs start
// from a clean slate so stale output from renamed pages cannot linger.
func CleanDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// ListHTMLFiles returns the sorted .html filenames directly inside dir.
// A missing directory is not an error; sites without a blog or product
// section simply yield nothing.
func ListHTMLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".html") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// WriteCollections writes every collection of the export as a directory of
// markdown documents under outputDir.
func WriteCollections(export *importer.Export, outputDir string) error {
	for _, collection := range export.Collections() {
		dir := filepath.Join(outputDir, collection.Name)
		if err := EnsureDir(dir); err != nil {
			return err
		}
		for _, item := range collection.Items {
			path := filepath.Join(dir, item.Filename)
			if err := os.WriteFile(path, []byte(item.Document()), 0o644); err != nil {
				return importer.Errorf(importer.EINTERNAL, "write %s: %v", path, err)
			}
		}
	}
	return nil
}

// WriteJSON writes the whole export as a single indented JSON document.
func WriteJSON(export *importer.Export, path string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return importer.Errorf(importer.EINTERNAL, "marshal export: %v", err)
	}
	return os.WriteFile(path, data, 0o644)
}
