package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// Replacement is a literal find/replace pair applied to written markdown.
type Replacement struct {
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
}

// DefaultReplacements fixes artifacts that survive every earlier pass:
// residual mirrored-page links and casing the source site got wrong.
// Ordered, since later pairs may see the output of earlier ones.
var DefaultReplacements = []Replacement{
	{Find: ".php.html", Replace: "/"},
	{Find: "Cctv", Replace: "CCTV"},
	{Find: "My Alarm Security", Replace: "MyAlarm Security"},
}

// Apply runs every replacement pair over content in order.
func Apply(content string, replacements []Replacement) string {
	for _, r := range replacements {
		content = strings.ReplaceAll(content, r.Find, r.Replace)
	}
	return content
}

// ApplyToDir rewrites every .md file under root with the replacement pairs
// applied. Files whose content does not change are left untouched.
func ApplyToDir(root string, replacements []Replacement) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		updated := Apply(string(data), replacements)
		if updated == string(data) {
			return nil
		}
		return os.WriteFile(path, []byte(updated), 0o644)
	})
}
