// Package mock provides function-field mocks of the root package interfaces
// for use in tests.
package mock

import (
	"context"

	importer "github.com/chobbledotcom/site-importer"
)

var _ importer.Converter = (*Converter)(nil)

// Converter is a mock implementation of importer.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ importer.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of importer.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}
