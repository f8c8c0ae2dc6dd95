package convert

import (
	"os"
	"path/filepath"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/fs"
	"github.com/chobbledotcom/site-importer/goquery"
)

// ScanCategories reads every category page under siteDir and builds the
// product-to-category index. This runs before product conversion so product
// frontmatter can reference categories and inherit listing order.
func ScanCategories(siteDir string) (*importer.CategoryIndex, error) {
	index := importer.NewCategoryIndex()

	categoriesDir := filepath.Join(siteDir, "categories")
	files, err := fs.ListHTMLFiles(categoriesDir)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(categoriesDir, file))
		if err != nil {
			return nil, importer.Errorf(importer.ENOTFOUND, "read %s: %v", file, err)
		}

		categoryRef := "categories/" + importer.SlugFromFilename(file) + ".md"
		for i, productSlug := range goquery.CategoryProductLinks(string(data)) {
			index.Add(productSlug, categoryRef, i+1)
		}
	}

	return index, nil
}
