// Command site-importer downloads a static site and converts it into
// markdown collections or a JSON export ready for a new site generator.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	importer "github.com/chobbledotcom/site-importer"
	"github.com/chobbledotcom/site-importer/convert"
	"github.com/chobbledotcom/site-importer/fs"
	"github.com/chobbledotcom/site-importer/htmltomarkdown"
	importerhttp "github.com/chobbledotcom/site-importer/http"
	"github.com/chobbledotcom/site-importer/images"
	"github.com/chobbledotcom/site-importer/mirror"
	importerslog "github.com/chobbledotcom/site-importer/slog"
	"github.com/chobbledotcom/site-importer/validate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run() for
	// end-to-end testing.
	Fetcher importer.Fetcher

	// Converter overrides the HTML-to-markdown converter.
	Converter importer.Converter

	// Export holds the run's collected content after Run() returns.
	Export *importer.Export
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("site-importer"),
		kong.Description("Import a static site into markdown or JSON content."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 || args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		if len(args) == 0 {
			return fmt.Errorf("no URL specified. Run 'site-importer --help' for usage")
		}
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	opts, err := loadOptions(cli.Options)
	if err != nil {
		return fmt.Errorf("options file %q: %w", cli.Options, err)
	}
	replacements := opts.apply(cli)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = importerslog.NewLoggingFetcher(
			importerhttp.NewFetcher(importerhttp.WithTimeout(cli.Timeout)), logger)
	}

	converter := m.Converter
	if converter == nil {
		converter = importerslog.NewLoggingConverter(htmltomarkdown.NewConverter(), logger)
	}

	if !cli.SkipDownload {
		if err := fs.CleanDir(cli.SiteDir); err != nil {
			return err
		}
		downloader := mirror.NewDownloader(fetcher, logger, mirror.WithWorkers(cli.Concurrency))
		saved, err := downloader.Mirror(ctx, cli.URL, cli.SiteDir)
		if err != nil {
			return err
		}
		logger.Info("site mirrored", "files", saved, "dir", cli.SiteDir)
	}

	for _, dir := range []string{cli.OutputDir, cli.ImagesDir} {
		if err := fs.CleanDir(dir); err != nil {
			return err
		}
	}

	m.Export = importer.NewExport()
	runner := &convert.Runner{
		Converter: converter,
		Images:    images.NewRelocator(fetcher, cli.ImagesDir, nil, logger),
		Export:    m.Export,
		Logger:    logger,
	}

	tracker, err := convert.Run(ctx, runner, convert.RunConfig{
		SiteDir:         cli.SiteDir,
		FaviconDir:      filepath.Join(cli.OutputDir, "assets", "favicon"),
		DefaultDate:     cli.DefaultDate,
		CategoriesInNav: cli.CategoriesInNavigation,
	})
	if err != nil {
		return err
	}

	issues := validate.Export(m.Export)

	switch cli.Format {
	case "markdown":
		if err := fs.WriteCollections(m.Export, cli.OutputDir); err != nil {
			return err
		}
		if err := fs.ApplyToDir(cli.OutputDir, replacements); err != nil {
			return err
		}
		issues = append(issues, validate.Output(m.Export, cli.OutputDir, cli.ImagesDir)...)
	case "json":
		if err := fs.WriteJSON(m.Export, filepath.Join(cli.OutputDir, "export.json")); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, tracker.Summary())
	fmt.Fprintf(stdout, "Total items exported: %d\n", m.Export.Total())

	if len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(stderr, "validation: %s\n", issue)
		}
		return fmt.Errorf("validation found %d issues", len(issues))
	}
	if failed := tracker.TotalFailed(); failed > 0 {
		return fmt.Errorf("%d pages failed to convert", failed)
	}

	return nil
}
