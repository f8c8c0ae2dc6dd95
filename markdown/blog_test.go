package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chobbledotcom/site-importer/markdown"
)

func TestBlogDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "month day year",
			markdown: "Posted By: Admin\n\nPosted Date: June 10, 2024\n\nBody.",
			want:     "2024-06-10",
		},
		{
			name:     "weekday prefix",
			markdown: "Posted Date: Monday, March 3 2025",
			want:     "2025-03-03",
		},
		{
			name:     "single digit day zero padded",
			markdown: "Posted Date: December 5, 2023",
			want:     "2023-12-05",
		},
		{
			name:     "missing date falls back to default",
			markdown: "# A post with no date line",
			want:     "2020-01-01",
		},
		{
			name:     "unparseable date falls back to default",
			markdown: "Posted Date: sometime last year",
			want:     "2020-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, markdown.BlogDate(tt.markdown, "2020-01-01"))
		})
	}
}

func TestBlogImage(t *testing.T) {
	t.Parallel()

	t.Run("returns first image url", func(t *testing.T) {
		t.Parallel()

		md := "# Post\n\n![Alarm photo](https://res.cloudinary.com/kbs/image/upload/alarm.webp)\n\n![Second](https://example.com/other.webp)"
		assert.Equal(t, "https://res.cloudinary.com/kbs/image/upload/alarm.webp", markdown.BlogImage(md))
	})

	t.Run("empty when no images", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, markdown.BlogImage("# Post\n\nJust text."))
	})
}
