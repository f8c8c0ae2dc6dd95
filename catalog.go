package importer

// CategoryIndex maps product slugs to the category documents that list them,
// plus each product's first-seen position across category listings. Built by
// a one-time scan of all category documents before product conversion.
type CategoryIndex struct {
	categories map[string][]string
	order      map[string]int
}

// NewCategoryIndex returns an empty CategoryIndex.
func NewCategoryIndex() *CategoryIndex {
	return &CategoryIndex{
		categories: make(map[string][]string),
		order:      make(map[string]int),
	}
}

// Add records that a category document (e.g. "categories/alarms.md") lists a
// product at the given 1-based position within that category. Duplicate
// category references are ignored; the order rank keeps its first-seen value.
func (ix *CategoryIndex) Add(productSlug, categoryRef string, position int) {
	for _, ref := range ix.categories[productSlug] {
		if ref == categoryRef {
			return
		}
	}
	ix.categories[productSlug] = append(ix.categories[productSlug], categoryRef)
	if _, ok := ix.order[productSlug]; !ok {
		ix.order[productSlug] = position
	}
}

// Categories returns the category references for a product, or nil.
func (ix *CategoryIndex) Categories(productSlug string) []string {
	return ix.categories[productSlug]
}

// Order returns the product's first-seen rank across category listings.
func (ix *CategoryIndex) Order(productSlug string) (int, bool) {
	rank, ok := ix.order[productSlug]
	return rank, ok
}

// Len returns the number of indexed products.
func (ix *CategoryIndex) Len() int {
	return len(ix.categories)
}
