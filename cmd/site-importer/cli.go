package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL string `arg:"" help:"Base URL of the site to import"`

	Format string `required:"" enum:"markdown,json" help:"Output format: markdown collections or a single JSON export"`

	SiteDir   string `default:"old_site" help:"Directory holding (or receiving) the mirrored site"`
	OutputDir string `default:"output" help:"Directory for the generated output"`
	ImagesDir string `default:"images" help:"Directory for downloaded images"`

	SkipDownload           bool   `help:"Convert an existing mirror without downloading"`
	CategoriesInNavigation bool   `help:"Put categories in site navigation instead of the fixed entries"`
	DefaultDate            string `default:"2020-01-01" help:"Date assigned to blog posts without one"`

	Options string `default:"importer-options.yml" help:"Optional YAML file with site-specific import settings"`

	Timeout     time.Duration `default:"30s" help:"HTTP request timeout"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent download limit"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}
