package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chobbledotcom/site-importer/fs"
)

// Options is the optional site-specific configuration file. Values present
// in the file override CLI defaults, so a site can pin its import settings
// next to its content.
type Options struct {
	CategoriesInNavigation *bool            `yaml:"categories_in_navigation"`
	DefaultDate            *string          `yaml:"default_date"`
	FindReplaces           []fs.Replacement `yaml:"find_replaces"`
}

// loadOptions reads the options file at path. A missing file is not an
// error; the CLI defaults apply.
func loadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Options{}, nil
		}
		return nil, err
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// apply overlays the file's settings onto parsed CLI values and returns the
// full replacement list for the find/replace pass.
func (o *Options) apply(cli *CLI) []fs.Replacement {
	if o.CategoriesInNavigation != nil {
		cli.CategoriesInNavigation = *o.CategoriesInNavigation
	}
	if o.DefaultDate != nil {
		cli.DefaultDate = *o.DefaultDate
	}
	return append(fs.DefaultReplacements, o.FindReplaces...)
}
