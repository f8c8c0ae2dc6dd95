package importer

import (
	"time"

	"github.com/google/uuid"
)

// FormatVersion identifies the export document format.
const FormatVersion = "1.0"

// ExportMeta is the metadata stamp on an export.
type ExportMeta struct {
	ExportedAt    time.Time `json:"exported_at"`
	FormatVersion string    `json:"format_version"`
	RunID         string    `json:"run_id"`
}

// Export aggregates all content items produced by a run. It is constructed
// once at the top of a run and passed explicitly to every collection and
// writer step; there is no ambient global state.
type Export struct {
	Pages      []*ContentItem `json:"pages"`
	News       []*ContentItem `json:"news"`
	Products   []*ContentItem `json:"products"`
	Categories []*ContentItem `json:"categories"`
	Reviews    []*ContentItem `json:"reviews"`
	Meta       ExportMeta     `json:"metadata"`
}

// NewExport returns an Export with empty (non-nil) collections and a fresh
// metadata stamp.
func NewExport() *Export {
	return &Export{
		Pages:      []*ContentItem{},
		News:       []*ContentItem{},
		Products:   []*ContentItem{},
		Categories: []*ContentItem{},
		Reviews:    []*ContentItem{},
		Meta: ExportMeta{
			ExportedAt:    time.Now().UTC(),
			FormatVersion: FormatVersion,
			RunID:         uuid.NewString(),
		},
	}
}

// Add appends an item to the collection for the given content type, stamping
// its content hash.
func (e *Export) Add(t ContentType, item *ContentItem) {
	item.ContentHash = item.Hash()
	switch t {
	case TypePage:
		e.Pages = append(e.Pages, item)
	case TypeBlog:
		e.News = append(e.News, item)
	case TypeProduct:
		e.Products = append(e.Products, item)
	case TypeCategory:
		e.Categories = append(e.Categories, item)
	}
}

// AddReview appends an item to the reviews collection.
func (e *Export) AddReview(item *ContentItem) {
	item.ContentHash = item.Hash()
	e.Reviews = append(e.Reviews, item)
}

// Collection names the output subdirectory for each collection.
type Collection struct {
	Name  string
	Items []*ContentItem
}

// Collections returns all collections with their output directory names, in
// write order.
func (e *Export) Collections() []Collection {
	return []Collection{
		{Name: "pages", Items: e.Pages},
		{Name: "news", Items: e.News},
		{Name: "products", Items: e.Products},
		{Name: "categories", Items: e.Categories},
		{Name: "reviews", Items: e.Reviews},
	}
}

// Total returns the number of items across all collections.
func (e *Export) Total() int {
	n := 0
	for _, c := range e.Collections() {
		n += len(c.Items)
	}
	return n
}
