package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	importer "github.com/chobbledotcom/site-importer"
	importerhttp "github.com/chobbledotcom/site-importer/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := importerhttp.NewFetcher()

		body, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(body))
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		fetcher := importerhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL+"/missing")
		require.Error(t, err)
		assert.Equal(t, importer.EUNAVAILABLE, importer.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := importerhttp.NewFetcher()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("invalid URL is an error", func(t *testing.T) {
		t.Parallel()

		fetcher := importerhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), "://not-a-url")
		require.Error(t, err)
	})
}
