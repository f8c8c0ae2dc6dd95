package importer

import "context"

// Fetcher retrieves remote resources over HTTP.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// A non-200 status is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
