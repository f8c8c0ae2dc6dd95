// Package htmltomarkdown converts the mirrored site's HTML to markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	importer "github.com/chobbledotcom/site-importer"
)

// Ensure Converter implements importer.Converter at compile time.
var _ importer.Converter = (*Converter)(nil)

// spanRe matches opening and closing span tags. The site's templates wrap
// inline styling in spans, which convert to noisy bracketed attribute
// blocks; stripping them first produces much cleaner markdown.
var spanRe = regexp.MustCompile(`(?i)</?span[^>]*>`)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Span tags are stripped
// before conversion.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", importer.Errorf(importer.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(spanRe.ReplaceAllString(html, ""))
	if err != nil {
		return "", err
	}

	return result, nil
}
