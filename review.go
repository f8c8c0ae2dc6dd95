package importer

// ReviewRecord aggregates one reviewer's reviews across all product
// documents. The same reviewer mentioned on multiple products accumulates
// multiple product references in one record.
type ReviewRecord struct {
	Name     string
	Body     string
	Products []string
}

// ReviewSet accumulates review records across a product batch, keyed by a
// slug derived from the reviewer's name. Insertion order is preserved so the
// flushed reviews collection is deterministic.
type ReviewSet struct {
	order   []string
	records map[string]*ReviewRecord
}

// NewReviewSet returns an empty ReviewSet.
func NewReviewSet() *ReviewSet {
	return &ReviewSet{records: make(map[string]*ReviewRecord)}
}

// Add records a review against a product reference (e.g. "products/slug.md").
// A reviewer seen before gains the product reference instead of a duplicate
// record; duplicate references on one record are ignored.
func (s *ReviewSet) Add(review Review, productRef string) {
	slug := Slugify(review.Name)
	rec, ok := s.records[slug]
	if !ok {
		s.records[slug] = &ReviewRecord{
			Name:     review.Name,
			Body:     review.Body,
			Products: []string{productRef},
		}
		s.order = append(s.order, slug)
		return
	}
	for _, p := range rec.Products {
		if p == productRef {
			return
		}
	}
	rec.Products = append(rec.Products, productRef)
}

// Len returns the number of distinct reviewers.
func (s *ReviewSet) Len() int {
	return len(s.order)
}

// Each calls fn for every record in insertion order.
func (s *ReviewSet) Each(fn func(slug string, rec *ReviewRecord)) {
	for _, slug := range s.order {
		fn(slug, s.records[slug])
	}
}

// Get returns the record for a reviewer slug, or nil.
func (s *ReviewSet) Get(slug string) *ReviewRecord {
	return s.records[slug]
}
