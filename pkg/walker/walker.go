// Package walker collects the file paths dupefind should analyze: it walks
// one or more roots, applies an ignore.Matcher, and filters by extension
// glob, handing the core detector an already-filtered []string.
package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dupefind/dupefind/pkg/ignore"
)

// DefaultIncludeGlobs covers the languages the original region detector
// targeted: indentation-sensitive, comment-heavy source.
var DefaultIncludeGlobs = []string{
	"*.py", "*.go", "*.js", "*.ts", "*.jsx", "*.tsx",
	"*.java", "*.c", "*.h", "*.cpp", "*.hpp", "*.rb",
}

// Config configures a directory walk.
type Config struct {
	// Roots are the directories (or individual files) to scan.
	Roots []string
	// Ignore filters excluded paths. If nil, ignore.NewFromDefaults() is used.
	Ignore *ignore.Matcher
	// IncludeGlobs restricts the walk to files whose basename matches one
	// of these doublestar patterns (default DefaultIncludeGlobs).
	IncludeGlobs []string
	// MaxFileSize skips files larger than this many bytes (0 disables).
	MaxFileSize int64
}

// Collect walks cfg.Roots and returns the sorted-by-discovery-order list
// of file paths that pass both the ignore matcher and the include globs.
func Collect(cfg Config) ([]string, error) {
	ig := cfg.Ignore
	if ig == nil {
		ig = ignore.NewFromDefaults()
	}
	globs := cfg.IncludeGlobs
	if globs == nil {
		globs = DefaultIncludeGlobs
	}

	var files []string
	for _, root := range cfg.Roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolve root %s: %w", root, err)
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil
			}

			rel, err := filepath.Rel(absRoot, mustAbs(path))
			if err != nil {
				rel = path
			}

			if ig.ShouldIgnore(rel, d.IsDir()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}

			if !matchesAny(globs, filepath.Base(path)) {
				return nil
			}

			if cfg.MaxFileSize > 0 {
				info, err := d.Info()
				if err == nil && info.Size() > cfg.MaxFileSize {
					return nil
				}
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return files, nil
}

func matchesAny(globs []string, name string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, name); ok {
			return true
		}
	}
	return false
}

func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
