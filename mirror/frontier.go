// Package mirror downloads a static site into a local directory tree laid
// out the way the conversion pipeline expects it.
package mirror

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier is an in-memory URL queue with Bloom filter deduplication.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push queues a URL. Returns false if the URL has already been seen.
// Fragments are stripped first, so URLs differing only by fragment are
// duplicates.
func (f *Frontier) Push(url string) bool {
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)
	f.queue = append(f.queue, url)
	return true
}

// Drain removes and returns everything currently queued.
func (f *Frontier) Drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	batch := f.queue
	f.queue = nil
	return batch
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
