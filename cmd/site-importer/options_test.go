package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chobbledotcom/site-importer/fs"
)

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty options", func(t *testing.T) {
		t.Parallel()

		opts, err := loadOptions(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)

		cli := &CLI{DefaultDate: "2020-01-01"}
		replacements := opts.apply(cli)
		assert.Equal(t, "2020-01-01", cli.DefaultDate)
		assert.Equal(t, fs.DefaultReplacements, replacements)
	})

	t.Run("file settings override cli defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "importer-options.yml")
		require.NoError(t, os.WriteFile(path, []byte(`categories_in_navigation: true
default_date: "2019-06-01"
find_replaces:
  - find: "Old Name"
    replace: "New Name"
`), 0o644))

		opts, err := loadOptions(path)
		require.NoError(t, err)

		cli := &CLI{DefaultDate: "2020-01-01"}
		replacements := opts.apply(cli)

		assert.True(t, cli.CategoriesInNavigation)
		assert.Equal(t, "2019-06-01", cli.DefaultDate)
		assert.Equal(t, fs.Replacement{Find: "Old Name", Replace: "New Name"}, replacements[len(replacements)-1])
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "importer-options.yml")
		require.NoError(t, os.WriteFile(path, []byte("::not yaml::"), 0o644))

		_, err := loadOptions(path)
		require.Error(t, err)
	})
}
