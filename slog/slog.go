// Package slog provides logging decorators for the root package interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	importer "github.com/chobbledotcom/site-importer"
)

// Ensure LoggingConverter implements importer.Converter.
var _ importer.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   importer.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next importer.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(html string) (md string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("convert",
			"input_bytes", len(html),
			"output_bytes", len(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(html)
}

// Ensure LoggingFetcher implements importer.Fetcher.
var _ importer.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   importer.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next importer.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
