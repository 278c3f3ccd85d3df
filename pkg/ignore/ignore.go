// Package ignore provides gitignore-compatible path exclusion for dupefind.
//
// It loads patterns from a project's .dupefindignore file (if present),
// merges them with built-in defaults for generated code, build artifacts,
// and common non-source directories, and exposes a single ShouldIgnore
// method used by the walker before a file ever reaches normalization.
//
// Pattern syntax is standard gitignore, parsed and matched by
// go-git's plumbing/format/gitignore package rather than a hand-rolled
// matcher:
//
//	# comment
//	*.pb.go          — match files by extension
//	vendor/          — match directories by name (trailing slash)
//	**/test/         — match at any depth
//	!important.go    — negate a previous pattern
//	/rootonly        — anchored to project root (leading slash)
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// BuiltinDefaults are patterns applied even when no .dupefindignore file
// exists. They cover the usual non-source noise that would otherwise
// dominate similarity results with boilerplate duplication.
var BuiltinDefaults = []string{
	// ── Version control ──────────────────────────────────────────────
	".git/",
	".svn/",
	".hg/",

	// ── dupefind internal ─────────────────────────────────────────────
	".dupefind/",

	// ── Node / JavaScript / TypeScript ───────────────────────────────
	"node_modules/",
	"dist/",
	".next/",
	".nuxt/",
	"coverage/",
	".cache/",

	// ── Python ───────────────────────────────────────────────────────
	"__pycache__/",
	".venv/",
	"venv/",
	".tox/",
	".mypy_cache/",
	".pytest_cache/",
	"*.egg-info/",
	"site-packages/",

	// ── Go ───────────────────────────────────────────────────────────
	"vendor/",

	// ── Rust ─────────────────────────────────────────────────────────
	"target/",

	// ── Java / Kotlin / Gradle ───────────────────────────────────────
	"build/",
	".gradle/",
	"out/",

	// ── IDE / Editor ─────────────────────────────────────────────────
	".idea/",
	".vscode/",

	// ── OS artefacts ─────────────────────────────────────────────────
	".DS_Store",

	// ── Generated code (noise that inflates similarity counts) ───────
	"*.pb.go",
	"*_generated.go",
	"*.gen.go",

	// ── Test fixtures and golden files ────────────────────────────────
	"**/testdata/",
	"**/fixtures/",

	// ── Lock / binary / archive ────────────────────────────────────────
	"*.lock",
}

// Matcher tests whether a path should be excluded from a scan.
type Matcher struct {
	m gitignore.Matcher
}

// New builds a Matcher from BuiltinDefaults plus an optional
// .dupefindignore file at <projectRoot>/.dupefindignore. A missing file is
// not an error — the Matcher still works from built-in defaults alone.
func New(projectRoot string) (*Matcher, error) {
	patterns := parseAll(BuiltinDefaults)

	userPatterns, err := readIgnoreFile(filepath.Join(projectRoot, ".dupefindignore"))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	patterns = append(patterns, parseAll(userPatterns)...)

	return &Matcher{m: gitignore.NewMatcher(patterns)}, nil
}

// NewFromDefaults builds a Matcher using only built-in defaults.
func NewFromDefaults() *Matcher {
	return &Matcher{m: gitignore.NewMatcher(parseAll(BuiltinDefaults))}
}

// NewEmpty builds a Matcher with no rules — nothing is ignored. Used by
// tests that need to scan paths normally excluded by defaults (testdata/
// fixtures in particular).
func NewEmpty() *Matcher {
	return &Matcher{m: gitignore.NewMatcher(nil)}
}

// ShouldIgnore reports whether path (relative to the project root, forward
// slash separated) should be excluded from the scan. isDir must be true
// when path refers to a directory.
func (m *Matcher) ShouldIgnore(path string, isDir bool) bool {
	path = filepath.ToSlash(strings.TrimSuffix(filepath.ToSlash(path), "/"))
	if path == "" || path == "." {
		return false
	}
	return m.m.Match(strings.Split(path, "/"), isDir)
}

func parseAll(lines []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}

func readIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
